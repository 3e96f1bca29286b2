package cmd

import (
	"fmt"
	"os"

	"budgetmate/internal/engine"
	"budgetmate/internal/export"
	"budgetmate/internal/model"

	"github.com/spf13/cobra"
)

var flagOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current plan as a CSV funding statement",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	b, err := loadBudget()
	if err != nil {
		return err
	}
	defer b.Close()

	// Export the saved allocations as-is, not a fresh waterfall run.
	plan := planFromSaved(b)

	out := os.Stdout
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := export.WriteStatement(out, plan, b.incomes); err != nil {
		return err
	}
	if flagOut != "" && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote statement to %s\n", flagOut)
	}
	return nil
}

// planFromSaved bundles the stored allocations into a plan without
// re-running the waterfall.
func planFromSaved(b *budget) model.AllocationPlan {
	return model.AllocationPlan{
		TargetCycle: b.cycle,
		Envelopes:   b.envelopes,
		Sources:     engine.Summarize(b.envelopes, b.incomes, b.cycle),
	}
}
