package cmd

import (
	"fmt"

	"budgetmate/internal/cli"
	"budgetmate/internal/engine"

	"github.com/spf13/cobra"
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "List income sources and their utilization",
	RunE:  runIncome,
}

func init() {
	rootCmd.AddCommand(incomeCmd)
}

func runIncome(_ *cobra.Command, _ []string) error {
	b, err := loadBudget()
	if err != nil {
		return err
	}
	defer b.Close()

	if len(b.incomes) == 0 {
		fmt.Println("\n  No income sources yet. Run `budgetmate setup` to get started.")
		return nil
	}

	summaries := engine.Summarize(b.envelopes, b.incomes, b.cycle)
	summaryBySource := make(map[string]int, len(summaries))
	for i, s := range summaries {
		summaryBySource[s.SourceID] = i
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("INCOME SOURCES"))
	fmt.Println()

	rows := make([][]string, 0, len(b.incomes))
	for _, src := range b.incomes {
		role := "secondary"
		if src.Rank == 0 {
			role = "primary"
		}
		status := "active"
		if !src.Active {
			status = "inactive"
		}

		allocated, percent := "—", "—"
		if i, ok := summaryBySource[src.ID]; ok {
			allocated = cli.FormatMoney(summaries[i].Allocated)
			percent = cli.FormatPercent(summaries[i].PercentUsed)
		}

		rows = append(rows, []string{
			src.Name,
			role,
			status,
			cli.FormatMoney(src.Amount) + cli.FormatCycle(string(src.Frequency)),
			cli.FormatMoney(engine.Annualize(src.Amount, src.Frequency)),
			allocated,
			percent,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Role", "Status", "Amount", "Annual", "Allocated", "Used"},
		Rows:    rows,
	}))

	return nil
}
