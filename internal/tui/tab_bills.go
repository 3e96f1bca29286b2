package tui

import (
	"fmt"
	"strings"
	"time"

	"budgetmate/internal/cli"
	"budgetmate/internal/engine"
	"budgetmate/internal/model"
	"budgetmate/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBillsTab() string {
	t := theme.Active
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-3s %-20s %12s  %s", "", "Bill", "Per Pay", "Due")))
	b.WriteString("\n")

	today := time.Now()
	bills := 0
	for _, env := range a.envelopes {
		if env.Subtype != model.Bill {
			continue
		}
		bills++

		required := engine.RequiredPerPay(env, a.cycle)
		funded := required > 0 && env.AllocatedTotal() >= required-engine.Epsilon
		due := engine.PaysUntilDue(env, a.schedule, funded, today)

		mark := "  "
		if funded {
			mark = lipgloss.NewStyle().Foreground(t.Green).Render("✓ ")
		}

		b.WriteString(fmt.Sprintf("  %s %-20s %12s  %s\n",
			mark,
			truncate(env.Name, 20),
			cli.FormatMoney(required),
			urgencyBadge(due)))
	}

	if bills == 0 {
		b.WriteString(mutedStyle.Render("  No bill envelopes."))
		b.WriteString("\n")
	}

	return b.String()
}

func urgencyBadge(status model.DueStatus) string {
	t := theme.Active
	var color lipgloss.Color
	switch status.Urgency {
	case model.UrgencyOverdue:
		color = t.Red
	case model.UrgencyDueNow:
		color = t.Orange
	case model.UrgencyDueSoon:
		color = t.Yellow
	case model.UrgencyOnTrack:
		color = t.Green
	default:
		color = t.TextDim
	}
	return lipgloss.NewStyle().Foreground(color).Render(status.DisplayText)
}
