// Package cmd implements the budgetmate CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"budgetmate/internal/config"
	"budgetmate/internal/model"
	"budgetmate/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagCycle string
	flagDB    string
	flagQuiet bool
	flagYes   bool
)

var rootCmd = &cobra.Command{
	Use:   "budgetmate",
	Short: "Envelope budgeting from the terminal",
	Long:  "Fund labelled envelopes from recurring income on your pay cycle: waterfall allocation, plan validation, and due-date tracking.",
	RunE:  runPlan,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagCycle, "cycle", "c", "", "Pay cycle override (weekly|fortnightly|monthly|quarterly|annually)")
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Budget database path")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip save-anyway confirmations")
}

// budget bundles everything a command needs: config, the open store, and a
// snapshot of its contents. Callers must Close it.
type budget struct {
	cfg       config.Config
	store     *store.Store
	envelopes []model.Envelope
	incomes   []model.IncomeSource
	cycle     model.Frequency
}

func (b *budget) Close() {
	_ = b.store.Close()
}

// loadBudget is the shared data loading path used by all commands.
func loadBudget() (*budget, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = store.DefaultPath(config.DataDir(cfg))
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	envelopes, err := s.LoadEnvelopes()
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("loading envelopes: %w", err)
	}
	incomes, err := s.LoadIncomeSources()
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("loading income sources: %w", err)
	}

	cycle := model.ParseFrequency(cfg.Budget.PayCycle)
	if flagCycle != "" {
		cycle = model.ParseFrequency(flagCycle)
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loaded %d envelopes, %d income sources (%s cycle)\n",
			len(envelopes), len(incomes), cycle)
	}

	return &budget{
		cfg:       cfg,
		store:     s,
		envelopes: envelopes,
		incomes:   incomes,
		cycle:     cycle,
	}, nil
}

// paySchedule derives the active schedule from the primary income source.
func (b *budget) paySchedule() model.PaySchedule {
	for _, src := range b.incomes {
		if src.Active && src.Rank == 0 {
			return model.PaySchedule{Cadence: b.cycle, AnchorDate: src.NextPayDate}
		}
	}
	if len(b.incomes) > 0 {
		return model.PaySchedule{Cadence: b.cycle}
	}
	return model.PaySchedule{}
}

// envelopeByName finds an envelope by ID or case-insensitive name.
func (b *budget) envelopeByName(key string) (model.Envelope, bool) {
	for _, env := range b.envelopes {
		if env.ID == key || strings.EqualFold(env.Name, key) {
			return env, true
		}
	}
	return model.Envelope{}, false
}

// incomeByName finds an income source by ID or case-insensitive name.
func (b *budget) incomeByName(key string) (model.IncomeSource, bool) {
	for _, src := range b.incomes {
		if src.ID == key || strings.EqualFold(src.Name, key) {
			return src, true
		}
	}
	return model.IncomeSource{}, false
}
