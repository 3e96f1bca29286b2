package cmd

import (
	"fmt"

	"budgetmate/internal/config"
	"budgetmate/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Budget]")
	fmt.Printf("    Pay cycle: %s\n", cfg.Budget.PayCycle)
	fmt.Printf("    Database:  %s\n", store.DefaultPath(config.DataDir(cfg)))
	fmt.Println()

	fmt.Println("  [Validation]")
	fmt.Printf("    Surplus floor: $%.2f\n", cfg.Validation.SurplusFloorUSD)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `budgetmate setup` to reconfigure.")
	return nil
}
