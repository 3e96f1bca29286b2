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

func (a App) renderPlanTab() string {
	t := theme.Active
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)

	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-20s %-13s %12s %12s  %-9s",
		"Envelope", "Priority", "Required", "Allocated", "Funded By")))
	b.WriteString("\n")

	for _, env := range a.plan.Envelopes {
		if env.IsTracking() {
			continue
		}
		required := engine.RequiredPerPay(env, a.cycle)
		allocated := env.AllocatedTotal()

		style := rowStyle
		if allocated < required-engine.Epsilon {
			style = warnStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("  %-20s %-13s %12s %12s  %-9s",
			truncate(env.Name, 20),
			env.Priority,
			cli.FormatMoney(required),
			cli.FormatMoney(allocated),
			engine.Classify(env, a.incomes))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, src := range a.plan.Sources {
		pct := 0.0
		if src.Capacity > 0 {
			pct = src.Allocated / src.Capacity
		}
		b.WriteString("  " + components.CapacityBar(truncate(src.Name, 14), pct, 14, 30))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if a.validation.HasWarnings() {
		for _, w := range a.validation.Warnings {
			b.WriteString(warnStyle.Render("  ! " + w))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(mutedStyle.Render("  No validation warnings."))
		b.WriteString("\n")
	}

	tot := a.validation.Totals
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  Income %s  Allocated %s  Surplus %s  Unfunded %s",
		cli.FormatMoney(tot.TotalIncome), cli.FormatMoney(tot.TotalAllocated),
		cli.FormatMoney(tot.TotalSurplus), cli.FormatMoney(tot.TotalUnfunded))))
	b.WriteString("\n")

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
