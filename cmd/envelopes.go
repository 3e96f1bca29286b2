package cmd

import (
	"fmt"

	"budgetmate/internal/cli"
	"budgetmate/internal/engine"

	"github.com/spf13/cobra"
)

var envelopesCmd = &cobra.Command{
	Use:   "envelopes",
	Short: "List envelopes with per-pay and annual amounts",
	RunE:  runEnvelopes,
}

func init() {
	rootCmd.AddCommand(envelopesCmd)
}

func runEnvelopes(_ *cobra.Command, _ []string) error {
	b, err := loadBudget()
	if err != nil {
		return err
	}
	defer b.Close()

	if len(b.envelopes) == 0 {
		fmt.Println("\n  No envelopes yet. Run `budgetmate setup` to get started.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ENVELOPES"))
	fmt.Println()

	rows := make([][]string, 0, len(b.envelopes))
	for _, env := range b.envelopes {
		target := cli.FormatMoney(env.TargetAmount) + cli.FormatCycle(string(env.Frequency))
		perPay := cli.FormatMoney(engine.RequiredPerPay(env, b.cycle))
		annual := cli.FormatMoney(engine.AnnualRequirement(env))
		if env.IsTracking() {
			perPay, annual = "—", "—"
		}
		rows = append(rows, []string{
			env.Name,
			string(env.Subtype),
			string(env.Priority),
			target,
			perPay,
			annual,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Type", "Priority", "Target", "Per Pay", "Annual"},
		Rows:    rows,
	}))

	return nil
}
