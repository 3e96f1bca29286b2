// Package tui provides the interactive Bubble Tea dashboard for budgetmate.
package tui

import (
	"fmt"

	"budgetmate/internal/config"
	"budgetmate/internal/engine"
	"budgetmate/internal/model"
	"budgetmate/internal/store"
	"budgetmate/internal/tui/components"
	"budgetmate/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the budget store has been read.
type DataLoadedMsg struct {
	Envelopes []model.Envelope
	Incomes   []model.IncomeSource
}

// LoadErrMsg is sent when reading the store fails.
type LoadErrMsg struct {
	Err error
}

// App is the root Bubble Tea model.
type App struct {
	dbPath string
	cfg    config.Config
	cycle  model.Frequency

	// Data snapshot
	envelopes []model.Envelope
	incomes   []model.IncomeSource
	loaded    bool
	loadErr   error

	// Derived on every load; the engine recomputes wholesale, never patches.
	plan       model.AllocationPlan
	validation model.ValidationResult
	schedule   model.PaySchedule

	// UI state
	width     int
	height    int
	activeTab int
	spinner   spinner.Model
}

const minTerminalWidth = 60

// NewApp builds the dashboard model.
func NewApp(dbPath string, cfg config.Config, cycle model.Frequency) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		dbPath:  dbPath,
		cfg:     cfg,
		cycle:   cycle,
		spinner: sp,
	}
}

// Init starts the spinner and kicks off the data load.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, loadData(a.dbPath))
}

// loadData reads the store in a command so the UI stays responsive.
func loadData(dbPath string) tea.Cmd {
	return func() tea.Msg {
		s, err := store.Open(dbPath)
		if err != nil {
			return LoadErrMsg{Err: err}
		}
		defer s.Close()

		envelopes, err := s.LoadEnvelopes()
		if err != nil {
			return LoadErrMsg{Err: err}
		}
		incomes, err := s.LoadIncomeSources()
		if err != nil {
			return LoadErrMsg{Err: err}
		}
		return DataLoadedMsg{Envelopes: envelopes, Incomes: incomes}
	}
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case DataLoadedMsg:
		a.envelopes = msg.Envelopes
		a.incomes = msg.Incomes
		a.loaded = true
		a.loadErr = nil
		a.recompute()
		return a, nil

	case LoadErrMsg:
		a.loaded = true
		a.loadErr = msg.Err
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "r":
			a.loaded = false
			return a, tea.Batch(a.spinner.Tick, loadData(a.dbPath))
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		}
		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	return a, nil
}

// recompute rebuilds the derived plan from the loaded snapshot.
func (a *App) recompute() {
	a.plan = model.AllocationPlan{
		TargetCycle: a.cycle,
		Envelopes:   a.envelopes,
		Sources:     engine.Summarize(a.envelopes, a.incomes, a.cycle),
	}
	a.validation = engine.Validate(a.envelopes, a.incomes, a.cycle, a.cfg.Validation.SurplusFloorUSD)

	a.schedule = model.PaySchedule{}
	for _, src := range a.incomes {
		if src.Active && src.Rank == 0 {
			a.schedule = model.PaySchedule{Cadence: a.cycle, AnchorDate: src.NextPayDate}
			break
		}
	}
}

// View renders the dashboard.
func (a App) View() string {
	t := theme.Active

	if a.width > 0 && a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d).\n", a.width, minTerminalWidth)
	}

	if !a.loaded {
		return fmt.Sprintf("\n  %s Loading budget...\n", a.spinner.View())
	}
	if a.loadErr != nil {
		return lipgloss.NewStyle().Foreground(t.Red).
			Render(fmt.Sprintf("\n  Failed to load budget: %v\n\n  [q]uit", a.loadErr))
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.TextPrimary).
		Render(fmt.Sprintf(" BUDGETMATE  %s cycle", a.cycle))

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderPlanTab()
	case 1:
		content = a.renderBillsTab()
	case 2:
		content = a.renderIncomeTab()
	}

	status := components.RenderStatusBar(a.width,
		fmt.Sprintf("%d envelopes", len(a.envelopes)))

	return title + "\n" +
		components.RenderTabBar(a.activeTab) + "\n\n" +
		content + "\n" +
		status
}
