package store

import (
	"path/filepath"
	"testing"
	"time"

	"budgetmate/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestIncomeSourceRoundTrip(t *testing.T) {
	s := openTestStore(t)

	src := model.IncomeSource{
		ID:          "salary",
		Name:        "Salary",
		Amount:      2400,
		Frequency:   model.Fortnightly,
		Active:      true,
		Rank:        0,
		NextPayDate: time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
	}
	if err := s.SaveIncomeSource(src); err != nil {
		t.Fatalf("SaveIncomeSource() error: %v", err)
	}

	got, err := s.LoadIncomeSources()
	if err != nil {
		t.Fatalf("LoadIncomeSources() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d sources, want 1", len(got))
	}
	if got[0].Name != "Salary" || got[0].Amount != 2400 || got[0].Frequency != model.Fortnightly {
		t.Errorf("loaded source = %+v", got[0])
	}
	if got[0].NextPayDate.Format("2006-01-02") != "2026-04-03" {
		t.Errorf("NextPayDate = %v, want 2026-04-03", got[0].NextPayDate)
	}
}

func TestIncomeSources_RankOrder(t *testing.T) {
	s := openTestStore(t)

	for _, src := range []model.IncomeSource{
		{ID: "b", Name: "Second", Frequency: model.Fortnightly, Active: true, Rank: 1},
		{ID: "a", Name: "First", Frequency: model.Fortnightly, Active: true, Rank: 0},
	} {
		if err := s.SaveIncomeSource(src); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.LoadIncomeSources()
	if err != nil {
		t.Fatal(err)
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("order = [%s %s], want [a b]", got[0].ID, got[1].ID)
	}
}

func TestEnvelopeRoundTripWithAllocations(t *testing.T) {
	s := openTestStore(t)

	env := model.Envelope{
		ID:           "rent",
		Name:         "Rent",
		TargetAmount: 900,
		Frequency:    model.Fortnightly,
		Priority:     model.Essential,
		Subtype:      model.Bill,
		DueDate:      "15",
	}
	if err := s.SaveEnvelope(env); err != nil {
		t.Fatalf("SaveEnvelope() error: %v", err)
	}
	if err := s.ReplaceAllocations("rent", map[string]float64{"salary": 700, "side": 200}); err != nil {
		t.Fatalf("ReplaceAllocations() error: %v", err)
	}

	got, err := s.LoadEnvelopes()
	if err != nil {
		t.Fatalf("LoadEnvelopes() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d envelopes, want 1", len(got))
	}
	if got[0].Priority != model.Essential || got[0].Subtype != model.Bill || got[0].DueDate != "15" {
		t.Errorf("loaded envelope = %+v", got[0])
	}
	if got[0].Allocations["salary"] != 700 || got[0].Allocations["side"] != 200 {
		t.Errorf("allocations = %v", got[0].Allocations)
	}
}

func TestReplaceAllocations_ReplacesWholesale(t *testing.T) {
	s := openTestStore(t)

	env := model.Envelope{ID: "food", Name: "Food", Frequency: model.Fortnightly,
		Priority: model.Essential, Subtype: model.Spending}
	if err := s.SaveEnvelope(env); err != nil {
		t.Fatal(err)
	}
	if err := s.ReplaceAllocations("food", map[string]float64{"old": 300}); err != nil {
		t.Fatal(err)
	}
	if err := s.ReplaceAllocations("food", map[string]float64{"new": 150}); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadEnvelopes()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got[0].Allocations["old"]; ok {
		t.Error("stale allocation survived replace")
	}
	if got[0].Allocations["new"] != 150 {
		t.Errorf("allocations = %v, want new=150", got[0].Allocations)
	}
}

func TestReplaceAllocations_DropsZeroEntries(t *testing.T) {
	s := openTestStore(t)

	env := model.Envelope{ID: "e", Name: "E", Frequency: model.Fortnightly,
		Priority: model.Important, Subtype: model.Spending}
	if err := s.SaveEnvelope(env); err != nil {
		t.Fatal(err)
	}
	if err := s.ReplaceAllocations("e", map[string]float64{"a": 0, "b": 50}); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadEnvelopes()
	if err != nil {
		t.Fatal(err)
	}
	if len(got[0].Allocations) != 1 {
		t.Errorf("allocations = %v, want only the nonzero entry", got[0].Allocations)
	}
}

func TestEmpty(t *testing.T) {
	s := openTestStore(t)

	empty, err := s.Empty()
	if err != nil {
		t.Fatal(err)
	}
	if !empty {
		t.Error("fresh store should be empty")
	}

	if err := s.SaveEnvelope(model.Envelope{ID: "x", Name: "X",
		Frequency: model.Monthly, Priority: model.Important, Subtype: model.Spending}); err != nil {
		t.Fatal(err)
	}
	empty, err = s.Empty()
	if err != nil {
		t.Fatal(err)
	}
	if empty {
		t.Error("store with an envelope should not be empty")
	}
}

func TestUnknownEnumsDegradeGracefully(t *testing.T) {
	s := openTestStore(t)

	// Write raw junk enums straight into the table.
	_, err := s.db.Exec(`INSERT INTO envelopes (id, name, target_amount, frequency, priority, subtype)
		VALUES ('junk', 'Junk', 100, 'sometimes', 'urgent', 'mystery')`)
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadEnvelopes()
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Frequency != model.Monthly {
		t.Errorf("Frequency = %s, want monthly fallback", got[0].Frequency)
	}
	if got[0].Priority != model.Discretionary {
		t.Errorf("Priority = %s, want discretionary fallback", got[0].Priority)
	}
	if got[0].Subtype != model.Spending {
		t.Errorf("Subtype = %s, want spending fallback", got[0].Subtype)
	}
}
