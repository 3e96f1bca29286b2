package cmd

import (
	"fmt"

	"budgetmate/internal/config"
	"budgetmate/internal/model"
	"budgetmate/internal/store"
	"budgetmate/internal/tui"
	"budgetmate/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive budget dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	dbPath := flagDB
	if dbPath == "" {
		dbPath = store.DefaultPath(config.DataDir(cfg))
	}

	cycle := model.ParseFrequency(cfg.Budget.PayCycle)
	if flagCycle != "" {
		cycle = model.ParseFrequency(flagCycle)
	}

	p := tea.NewProgram(tui.NewApp(dbPath, cfg, cycle), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
