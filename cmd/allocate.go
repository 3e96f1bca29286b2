package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"budgetmate/internal/cli"
	"budgetmate/internal/engine"

	"github.com/spf13/cobra"
)

var flagDryRun bool

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Run the waterfall and save the resulting allocations",
	RunE:  runAllocate,
}

func init() {
	allocateCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Compute but do not save")
	rootCmd.AddCommand(allocateCmd)
}

func runAllocate(_ *cobra.Command, _ []string) error {
	b, err := loadBudget()
	if err != nil {
		return err
	}
	defer b.Close()

	if len(b.envelopes) == 0 {
		fmt.Println("\n  No envelopes yet. Run `budgetmate setup` to get started.")
		return nil
	}

	allocated := engine.Allocate(b.envelopes, b.incomes, b.cycle)
	result := engine.Validate(allocated, b.incomes, b.cycle, b.cfg.Validation.SurplusFloorUSD)

	fmt.Println()
	for _, env := range allocated {
		if env.IsTracking() || engine.RequiredPerPay(env, b.cycle) == 0 {
			continue
		}
		fmt.Printf("  %-20s %s  (%s)\n", env.Name,
			cli.FormatMoney(env.AllocatedTotal()),
			engine.Classify(env, b.incomes))
	}
	fmt.Println()

	for _, w := range result.Warnings {
		fmt.Println(cli.RenderWarning(w))
	}

	if flagDryRun {
		fmt.Println("\n  Dry run, nothing saved.")
		return nil
	}

	// Warnings are advisory: require an explicit go-ahead before writing.
	if result.HasWarnings() && !flagYes {
		fmt.Print("\n  Save anyway? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
			fmt.Println("  Not saved.")
			return nil
		}
	}

	if err := b.store.SaveAllocations(allocated); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("\n  Saved allocations for %d envelopes.\n", len(allocated))
	}
	return nil
}
