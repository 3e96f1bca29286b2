package engine

import (
	"math"
	"testing"

	"budgetmate/internal/model"
)

// testEnvelope builds a fortnightly envelope for allocator tests.
func testEnvelope(id string, target float64, pri model.Priority) model.Envelope {
	return model.Envelope{
		ID:           id,
		Name:         id,
		TargetAmount: target,
		Frequency:    model.Fortnightly,
		Priority:     pri,
		Subtype:      model.Spending,
	}
}

// testIncome builds an active fortnightly income source.
func testIncome(id string, amount float64, rank int) model.IncomeSource {
	return model.IncomeSource{
		ID:        id,
		Name:      id,
		Amount:    amount,
		Frequency: model.Fortnightly,
		Active:    true,
		Rank:      rank,
	}
}

func TestAllocate_ScenarioSingleIncome(t *testing.T) {
	// $2,000/fortnight; a $500 essential bill and a $2,000 discretionary pot.
	envelopes := []model.Envelope{
		testEnvelope("discretionary", 2000, model.Discretionary),
		testEnvelope("bill", 500, model.Essential),
	}
	incomes := []model.IncomeSource{testIncome("pay", 2000, 0)}

	got := Allocate(envelopes, incomes, model.Fortnightly)

	if amt := got[1].Allocations["pay"]; math.Abs(amt-500) > Epsilon {
		t.Errorf("essential allocation = %.2f, want 500", amt)
	}
	if amt := got[0].Allocations["pay"]; math.Abs(amt-1500) > Epsilon {
		t.Errorf("discretionary allocation = %.2f, want 1500 (left $500 short)", amt)
	}

	result := Validate(got, incomes, model.Fortnightly, DefaultSurplusFloor)
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", result.Warnings)
	}
}

func TestAllocate_ScenarioSplitAcrossSources(t *testing.T) {
	// $1,200 essential against a $1,000 primary and a $500 secondary.
	envelopes := []model.Envelope{testEnvelope("rent", 1200, model.Essential)}
	incomes := []model.IncomeSource{
		testIncome("salary", 1000, 0),
		testIncome("side", 500, 1),
	}

	got := Allocate(envelopes, incomes, model.Fortnightly)

	if amt := got[0].Allocations["salary"]; math.Abs(amt-1000) > Epsilon {
		t.Errorf("primary allocation = %.2f, want 1000", amt)
	}
	if amt := got[0].Allocations["side"]; math.Abs(amt-200) > Epsilon {
		t.Errorf("secondary allocation = %.2f, want 200", amt)
	}
	if class := Classify(got[0], incomes); class != FundedSplit {
		t.Errorf("Classify = %s, want split", class)
	}
}

func TestAllocate_NeverOverAllocates(t *testing.T) {
	envelopes := []model.Envelope{
		testEnvelope("a", 800, model.Essential),
		testEnvelope("b", 900, model.Essential),
		testEnvelope("c", 700, model.Important),
		testEnvelope("d", 400, model.Discretionary),
	}
	incomes := []model.IncomeSource{
		testIncome("one", 1000, 0),
		testIncome("two", 600, 1),
	}

	got := Allocate(envelopes, incomes, model.Fortnightly)

	for _, src := range incomes {
		var total float64
		for _, env := range got {
			total += env.Allocations[src.ID]
		}
		if total > src.Amount+Epsilon {
			t.Errorf("source %s allocated %.2f, capacity %.2f", src.ID, total, src.Amount)
		}
	}
}

func TestAllocate_NoNegativeEntries(t *testing.T) {
	envelopes := []model.Envelope{
		testEnvelope("a", 500, model.Essential),
		{ID: "bad", Name: "bad", TargetAmount: -300, Frequency: model.Fortnightly, Priority: model.Essential, Subtype: model.Bill},
	}
	incomes := []model.IncomeSource{testIncome("pay", 400, 0)}

	got := Allocate(envelopes, incomes, model.Fortnightly)

	for _, env := range got {
		for id, amt := range env.Allocations {
			if amt < 0 {
				t.Errorf("envelope %s has negative allocation %.2f from %s", env.ID, amt, id)
			}
		}
	}
	if len(got[1].Allocations) != 0 {
		t.Errorf("negative-target envelope got allocations %v, want none", got[1].Allocations)
	}
}

func TestAllocate_Idempotent(t *testing.T) {
	envelopes := []model.Envelope{
		testEnvelope("a", 800, model.Important),
		testEnvelope("b", 900, model.Essential),
	}
	incomes := []model.IncomeSource{testIncome("pay", 1200, 0)}

	once := Allocate(envelopes, incomes, model.Fortnightly)
	twice := Allocate(once, incomes, model.Fortnightly)

	for i := range once {
		if len(once[i].Allocations) != len(twice[i].Allocations) {
			t.Fatalf("envelope %s allocation count changed on rerun", once[i].ID)
		}
		for id, amt := range once[i].Allocations {
			if math.Abs(twice[i].Allocations[id]-amt) > Epsilon {
				t.Errorf("envelope %s source %s: %.2f then %.2f", once[i].ID, id, amt, twice[i].Allocations[id])
			}
		}
	}
}

func TestAllocate_EssentialsServedFirst(t *testing.T) {
	// Discretionary listed first, but the essential must win the capacity.
	envelopes := []model.Envelope{
		testEnvelope("wants", 2000, model.Discretionary),
		testEnvelope("rent", 1500, model.Essential),
	}
	incomes := []model.IncomeSource{testIncome("pay", 1500, 0)}

	got := Allocate(envelopes, incomes, model.Fortnightly)

	if amt := got[1].Allocations["pay"]; math.Abs(amt-1500) > Epsilon {
		t.Errorf("essential allocation = %.2f, want full 1500", amt)
	}
	if len(got[0].Allocations) != 0 {
		t.Errorf("discretionary got %v with no capacity left", got[0].Allocations)
	}
}

func TestAllocate_SamePriorityKeepsInputOrder(t *testing.T) {
	envelopes := []model.Envelope{
		testEnvelope("first", 600, model.Important),
		testEnvelope("second", 600, model.Important),
	}
	incomes := []model.IncomeSource{testIncome("pay", 900, 0)}

	got := Allocate(envelopes, incomes, model.Fortnightly)

	if amt := got[0].Allocations["pay"]; math.Abs(amt-600) > Epsilon {
		t.Errorf("first envelope = %.2f, want 600", amt)
	}
	if amt := got[1].Allocations["pay"]; math.Abs(amt-300) > Epsilon {
		t.Errorf("second envelope = %.2f, want the remaining 300", amt)
	}
}

func TestAllocate_ReplacesManualAllocations(t *testing.T) {
	env := testEnvelope("bill", 500, model.Essential)
	env.Allocations = map[string]float64{"gone": 123}
	incomes := []model.IncomeSource{testIncome("pay", 2000, 0)}

	got := Allocate([]model.Envelope{env}, incomes, model.Fortnightly)

	if _, ok := got[0].Allocations["gone"]; ok {
		t.Error("stale manual allocation survived the waterfall")
	}
	if amt := got[0].Allocations["pay"]; math.Abs(amt-500) > Epsilon {
		t.Errorf("allocation = %.2f, want 500", amt)
	}
}

func TestAllocate_TrackingAndZeroTargetExcluded(t *testing.T) {
	tracking := testEnvelope("track", 999, model.Essential)
	tracking.TrackingOnly = true
	zero := testEnvelope("zero", 0, model.Essential)
	envelopes := []model.Envelope{tracking, zero}
	incomes := []model.IncomeSource{testIncome("pay", 2000, 0)}

	got := Allocate(envelopes, incomes, model.Fortnightly)

	if len(got[0].Allocations) != 0 || len(got[1].Allocations) != 0 {
		t.Errorf("excluded envelopes received allocations: %v %v", got[0].Allocations, got[1].Allocations)
	}
}

func TestAllocate_EmptyIncomes(t *testing.T) {
	envelopes := []model.Envelope{testEnvelope("a", 500, model.Essential)}

	got := Allocate(envelopes, nil, model.Fortnightly)

	if len(got[0].Allocations) != 0 {
		t.Errorf("allocations = %v, want empty with no income", got[0].Allocations)
	}
}

func TestAllocate_InactiveSourceContributesNothing(t *testing.T) {
	envelopes := []model.Envelope{testEnvelope("a", 500, model.Essential)}
	inactive := testIncome("old", 5000, 0)
	inactive.Active = false
	incomes := []model.IncomeSource{inactive, testIncome("pay", 300, 1)}

	got := Allocate(envelopes, incomes, model.Fortnightly)

	if _, ok := got[0].Allocations["old"]; ok {
		t.Error("inactive source funded an envelope")
	}
	if amt := got[0].Allocations["pay"]; math.Abs(amt-300) > Epsilon {
		t.Errorf("active source allocation = %.2f, want 300", amt)
	}
}

func TestAllocate_NormalizesMixedFrequencies(t *testing.T) {
	// Weekly income on a fortnightly budget doubles its capacity;
	// a monthly bill on a fortnightly budget costs 12/26ths of its target.
	env := testEnvelope("power", 260, model.Essential)
	env.Frequency = model.Monthly
	weekly := testIncome("wages", 500, 0)
	weekly.Frequency = model.Weekly

	got := Allocate([]model.Envelope{env}, []model.IncomeSource{weekly}, model.Fortnightly)

	want := 260.0 * 12 / 26
	if amt := got[0].Allocations["wages"]; math.Abs(amt-want) > Epsilon {
		t.Errorf("allocation = %.2f, want %.2f", amt, want)
	}
}

func TestSummarize(t *testing.T) {
	envelopes := []model.Envelope{
		testEnvelope("a", 500, model.Essential),
		testEnvelope("b", 700, model.Important),
	}
	incomes := []model.IncomeSource{testIncome("pay", 2000, 0)}

	allocated := Allocate(envelopes, incomes, model.Fortnightly)
	summaries := Summarize(allocated, incomes, model.Fortnightly)

	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	s := summaries[0]
	if math.Abs(s.Allocated-1200) > Epsilon {
		t.Errorf("Allocated = %.2f, want 1200", s.Allocated)
	}
	if math.Abs(s.Remaining-800) > Epsilon {
		t.Errorf("Remaining = %.2f, want 800", s.Remaining)
	}
	if math.Abs(s.PercentUsed-60) > Epsilon {
		t.Errorf("PercentUsed = %.2f, want 60", s.PercentUsed)
	}
}
