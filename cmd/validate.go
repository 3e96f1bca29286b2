package cmd

import (
	"fmt"

	"budgetmate/internal/cli"
	"budgetmate/internal/engine"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the saved plan for problems",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	b, err := loadBudget()
	if err != nil {
		return err
	}
	defer b.Close()

	result := engine.Validate(b.envelopes, b.incomes, b.cycle, b.cfg.Validation.SurplusFloorUSD)

	fmt.Println()
	if !result.HasWarnings() {
		fmt.Println("  Plan looks good.")
	}
	for _, w := range result.Warnings {
		fmt.Println(cli.RenderWarning(w))
	}

	tot := result.Totals
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Total", "Amount"},
		Rows: [][]string{
			{"Income", cli.FormatMoney(tot.TotalIncome)},
			{"Allocated", cli.FormatMoney(tot.TotalAllocated)},
			{"Surplus", cli.FormatMoney(tot.TotalSurplus)},
			{"Unfunded", cli.FormatMoney(tot.TotalUnfunded)},
		},
	}))

	return nil
}
