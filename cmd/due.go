package cmd

import (
	"fmt"
	"time"

	"budgetmate/internal/cli"
	"budgetmate/internal/engine"
	"budgetmate/internal/model"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Due-date urgency for bill envelopes",
	RunE:  runDue,
}

func init() {
	rootCmd.AddCommand(dueCmd)
}

func runDue(_ *cobra.Command, _ []string) error {
	b, err := loadBudget()
	if err != nil {
		return err
	}
	defer b.Close()

	sched := b.paySchedule()
	if !sched.Resolvable() {
		fmt.Println("\n  No active income source, so no pay schedule to count against.")
		return nil
	}

	today := time.Now()
	printed := 0

	fmt.Println()
	fmt.Println(cli.RenderTitle("UPCOMING BILLS"))
	fmt.Println()

	for _, env := range b.envelopes {
		if env.Subtype != model.Bill {
			continue
		}
		required := engine.RequiredPerPay(env, b.cycle)
		funded := required > 0 && env.AllocatedTotal() >= required-engine.Epsilon
		due := engine.PaysUntilDue(env, sched, funded, today)

		fundedMark := " "
		if funded {
			fundedMark = "✓"
		}
		fmt.Printf("  %s %-20s %-14s %s\n", fundedMark, env.Name,
			cli.FormatMoney(required), cli.UrgencyBadge(due))
		printed++
	}

	if printed == 0 {
		fmt.Println("  No bill envelopes.")
	}
	fmt.Println()

	return nil
}
