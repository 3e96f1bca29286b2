package tui

import (
	"fmt"
	"strings"

	"budgetmate/internal/cli"
	"budgetmate/internal/engine"
	"budgetmate/internal/tui/components"
	"budgetmate/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderIncomeTab() string {
	t := theme.Active
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	b.WriteString(headerStyle.Render("  Income sources in funding order"))
	b.WriteString("\n\n")

	if len(a.incomes) == 0 {
		b.WriteString(mutedStyle.Render("  No income sources. Run `budgetmate setup`."))
		b.WriteString("\n")
		return b.String()
	}

	summaries := engine.Summarize(a.envelopes, a.incomes, a.cycle)
	summaryIdx := make(map[string]int, len(summaries))
	for i, s := range summaries {
		summaryIdx[s.SourceID] = i
	}

	for _, src := range a.incomes {
		role := "secondary"
		if src.Rank == 0 {
			role = "primary"
		}

		line := fmt.Sprintf("  %-16s %-9s %s%s",
			truncate(src.Name, 16), role,
			cli.FormatMoney(src.Amount), cli.FormatCycle(string(src.Frequency)))
		if !src.Active {
			b.WriteString(dimStyle.Render(line + "  (inactive)"))
			b.WriteString("\n")
			continue
		}
		b.WriteString(mutedStyle.Render(line))
		b.WriteString("\n")

		if i, ok := summaryIdx[src.ID]; ok {
			s := summaries[i]
			pct := 0.0
			if s.Capacity > 0 {
				pct = s.Allocated / s.Capacity
			}
			b.WriteString("    " + components.CapacityBar("", pct, 0, 34))
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %s of %s",
				cli.FormatMoney(s.Allocated), cli.FormatMoney(s.Capacity))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
