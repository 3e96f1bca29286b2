package cmd

import (
	"fmt"
	"strconv"

	"budgetmate/internal/config"
	"budgetmate/internal/model"
	"budgetmate/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	var (
		payCycle     = cfg.Budget.PayCycle
		theme        = cfg.Appearance.Theme
		incomeName   = "Salary"
		incomeAmount = "2000"
		seedDemo     bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pay cycle").
				Description("The cadence your budget is normalized to.").
				Options(
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Fortnightly", "fortnightly"),
					huh.NewOption("Monthly", "monthly"),
				).
				Value(&payCycle),
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&theme),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Primary income name").
				Value(&incomeName),
			huh.NewInput().
				Title(fmt.Sprintf("Amount per %s cycle", payCycle)).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v < 0 {
						return fmt.Errorf("enter a non-negative number")
					}
					return nil
				}).
				Value(&incomeAmount),
			huh.NewConfirm().
				Title("Seed a few example envelopes?").
				Value(&seedDemo),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	cfg.Budget.PayCycle = payCycle
	cfg.Appearance.Theme = theme
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = store.DefaultPath(config.DataDir(cfg))
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	cycle := model.ParseFrequency(payCycle)
	amount, _ := strconv.ParseFloat(incomeAmount, 64)
	if err := s.SaveIncomeSource(model.IncomeSource{
		ID:        "income-primary",
		Name:      incomeName,
		Amount:    amount,
		Frequency: cycle,
		Active:    true,
		Rank:      0,
	}); err != nil {
		return fmt.Errorf("saving income source: %w", err)
	}

	if seedDemo {
		if err := seedEnvelopes(s, cycle); err != nil {
			return fmt.Errorf("seeding envelopes: %w", err)
		}
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `budgetmate plan` to see your first allocation.")
	fmt.Println()

	return nil
}

func seedEnvelopes(s *store.Store, cycle model.Frequency) error {
	seeds := []model.Envelope{
		{ID: "env-rent", Name: "Rent", TargetAmount: 800, Frequency: cycle,
			Priority: model.Essential, Subtype: model.Bill, DueDate: "1"},
		{ID: "env-power", Name: "Power", TargetAmount: 120, Frequency: model.Monthly,
			Priority: model.Essential, Subtype: model.Bill, DueDate: "20"},
		{ID: "env-groceries", Name: "Groceries", TargetAmount: 350, Frequency: cycle,
			Priority: model.Essential, Subtype: model.Spending},
		{ID: "env-car", Name: "Car Insurance", TargetAmount: 900, Frequency: model.Annually,
			Priority: model.Important, Subtype: model.Bill, DueDate: "2027-02-01"},
		{ID: "env-fun", Name: "Fun Money", TargetAmount: 150, Frequency: cycle,
			Priority: model.Discretionary, Subtype: model.Spending},
		{ID: "env-holiday", Name: "Holiday Fund", TargetAmount: 2000, Frequency: model.Annually,
			Priority: model.Discretionary, Subtype: model.Goal},
	}
	for _, env := range seeds {
		if err := s.SaveEnvelope(env); err != nil {
			return err
		}
	}
	return nil
}
