package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"budgetmate/internal/cli"
	"budgetmate/internal/engine"

	"github.com/spf13/cobra"
)

var fundCmd = &cobra.Command{
	Use:   "fund <envelope> <source>=<amount> [<source>=<amount>...]",
	Short: "Manually set one envelope's funding split",
	Long: `Replace a single envelope's allocations without running the waterfall,
e.g. fund a bill from the secondary income or split it across sources:

  budgetmate fund Rent salary=700 side=200

Capacity is not checked at write time; run "budgetmate validate" to see
whether the manual split over-commits an income source.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runFund,
}

func init() {
	rootCmd.AddCommand(fundCmd)
}

func runFund(_ *cobra.Command, args []string) error {
	b, err := loadBudget()
	if err != nil {
		return err
	}
	defer b.Close()

	env, ok := b.envelopeByName(args[0])
	if !ok {
		return fmt.Errorf("no envelope named %q", args[0])
	}

	allocations := make(map[string]float64)
	for _, arg := range args[1:] {
		name, amountStr, found := strings.Cut(arg, "=")
		if !found {
			return fmt.Errorf("expected <source>=<amount>, got %q", arg)
		}
		src, ok := b.incomeByName(name)
		if !ok {
			return fmt.Errorf("no income source named %q", name)
		}
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			return fmt.Errorf("bad amount %q: %w", amountStr, err)
		}
		if amount < 0 {
			return fmt.Errorf("amount for %s must not be negative", src.Name)
		}
		allocations[src.ID] = amount
	}

	if err := b.store.ReplaceAllocations(env.ID, allocations); err != nil {
		return err
	}

	// Re-read and re-validate so the user sees the consequences immediately.
	envelopes, err := b.store.LoadEnvelopes()
	if err != nil {
		return err
	}
	result := engine.Validate(envelopes, b.incomes, b.cycle, b.cfg.Validation.SurplusFloorUSD)

	var total float64
	for _, amt := range allocations {
		total += amt
	}
	fmt.Printf("\n  %s now funded with %s across %d source(s).\n",
		env.Name, cli.FormatMoney(total), len(allocations))
	for _, w := range result.Warnings {
		fmt.Println(cli.RenderWarning(w))
	}

	return nil
}
