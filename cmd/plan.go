package cmd

import (
	"fmt"
	"time"

	"budgetmate/internal/cli"
	"budgetmate/internal/engine"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview the waterfall allocation plan",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	b, err := loadBudget()
	if err != nil {
		return err
	}
	defer b.Close()

	if len(b.envelopes) == 0 {
		fmt.Println("\n  No envelopes yet. Run `budgetmate setup` to get started.")
		return nil
	}

	plan := engine.BuildPlan(b.envelopes, b.incomes, b.cycle)
	result := engine.Validate(plan.Envelopes, b.incomes, b.cycle, b.cfg.Validation.SurplusFloorUSD)
	sched := b.paySchedule()
	today := time.Now()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ALLOCATION PLAN  %s", b.cycle)))
	fmt.Println()

	rows := make([][]string, 0, len(plan.Envelopes))
	for _, env := range plan.Envelopes {
		if env.IsTracking() {
			continue
		}
		required := engine.RequiredPerPay(env, b.cycle)
		funded := env.AllocatedTotal() >= required-engine.Epsilon
		due := engine.PaysUntilDue(env, sched, funded, today)

		rows = append(rows, []string{
			env.Name,
			string(env.Priority),
			cli.FormatMoney(required),
			cli.FormatMoney(env.AllocatedTotal()),
			string(engine.Classify(env, b.incomes)),
			due.DisplayText,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Envelope", "Priority", "Required", "Allocated", "Funded By", "Due"},
		Rows:    rows,
	}))

	fmt.Println()
	for _, src := range plan.Sources {
		fmt.Printf("  %-16s %s\n", src.Name, cli.RenderCapacityBar(src.Allocated, src.Capacity, 30))
	}

	fmt.Println()
	for _, w := range result.Warnings {
		fmt.Println(cli.RenderWarning(w))
	}
	tot := result.Totals
	fmt.Printf("  Income %s  Allocated %s  Surplus %s  Unfunded %s\n",
		cli.FormatMoney(tot.TotalIncome), cli.FormatMoney(tot.TotalAllocated),
		cli.FormatMoney(tot.TotalSurplus), cli.FormatMoney(tot.TotalUnfunded))
	fmt.Println()
	fmt.Println("  Preview only. Run `budgetmate allocate` to save this plan.")

	return nil
}
