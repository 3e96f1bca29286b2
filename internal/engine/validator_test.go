package engine

import (
	"math"
	"strings"
	"testing"

	"budgetmate/internal/model"
)

func TestValidate_UnfundedEssential(t *testing.T) {
	env := testEnvelope("power", 300, model.Essential)
	env.Allocations = map[string]float64{"pay": 250}
	incomes := []model.IncomeSource{testIncome("pay", 1000, 0)}

	result := Validate([]model.Envelope{env}, incomes, model.Fortnightly, DefaultSurplusFloor)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "power") {
			found = true
		}
	}
	if !found {
		t.Fatalf("warnings = %v, want one naming the short envelope", result.Warnings)
	}
}

func TestValidate_ExactlyFundedEssentialIsClean(t *testing.T) {
	env := testEnvelope("power", 300, model.Essential)
	env.Allocations = map[string]float64{"pay": 300}
	incomes := []model.IncomeSource{testIncome("pay", 300, 0)}

	result := Validate([]model.Envelope{env}, incomes, model.Fortnightly, DefaultSurplusFloor)
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", result.Warnings)
	}
}

func TestValidate_WithinToleranceCountsAsFunded(t *testing.T) {
	env := testEnvelope("power", 300, model.Essential)
	env.Allocations = map[string]float64{"pay": 299.999}
	incomes := []model.IncomeSource{testIncome("pay", 300, 0)}

	result := Validate([]model.Envelope{env}, incomes, model.Fortnightly, DefaultSurplusFloor)
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v, want none within the one-cent band", result.Warnings)
	}
}

func TestValidate_OverAllocatedSource(t *testing.T) {
	env := testEnvelope("rent", 1500, model.Essential)
	env.Allocations = map[string]float64{"pay": 1500} // manual edit past capacity
	incomes := []model.IncomeSource{testIncome("pay", 1000, 0)}

	result := Validate([]model.Envelope{env}, incomes, model.Fortnightly, DefaultSurplusFloor)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "over-allocated by $500.00") {
			found = true
		}
	}
	if !found {
		t.Fatalf("warnings = %v, want over-allocation with 2dp overage", result.Warnings)
	}
}

func TestValidate_SurplusWithBacklog(t *testing.T) {
	env := testEnvelope("holiday", 400, model.Discretionary)
	env.Allocations = map[string]float64{"pay": 100}
	incomes := []model.IncomeSource{testIncome("pay", 1000, 0)}

	result := Validate([]model.Envelope{env}, incomes, model.Fortnightly, DefaultSurplusFloor)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "unallocated") {
			found = true
		}
	}
	if !found {
		t.Fatalf("warnings = %v, want surplus-vs-backlog flag", result.Warnings)
	}
}

func TestValidate_SmallSurplusStaysQuiet(t *testing.T) {
	env := testEnvelope("holiday", 105, model.Discretionary)
	env.Allocations = map[string]float64{"pay": 100}
	incomes := []model.IncomeSource{testIncome("pay", 105, 0)}

	result := Validate([]model.Envelope{env}, incomes, model.Fortnightly, DefaultSurplusFloor)
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v, want none below the $10 floor", result.Warnings)
	}
}

func TestValidate_EmptyIncomesStillFlagsEssentials(t *testing.T) {
	env := testEnvelope("rent", 900, model.Essential)

	result := Validate([]model.Envelope{env}, nil, model.Fortnightly, DefaultSurplusFloor)

	if len(result.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly the unfunded-essential flag", result.Warnings)
	}
	if result.Totals.TotalIncome != 0 {
		t.Errorf("TotalIncome = %.2f, want 0", result.Totals.TotalIncome)
	}
}

func TestValidate_Totals(t *testing.T) {
	a := testEnvelope("a", 500, model.Essential)
	a.Allocations = map[string]float64{"pay": 500}
	b := testEnvelope("b", 400, model.Important)
	b.Allocations = map[string]float64{"pay": 250}
	tracked := testEnvelope("net-worth", 9999, model.Discretionary)
	tracked.TrackingOnly = true
	incomes := []model.IncomeSource{testIncome("pay", 1000, 0)}

	result := Validate([]model.Envelope{a, b, tracked}, incomes, model.Fortnightly, DefaultSurplusFloor)

	tot := result.Totals
	if math.Abs(tot.TotalIncome-1000) > Epsilon {
		t.Errorf("TotalIncome = %.2f, want 1000", tot.TotalIncome)
	}
	if math.Abs(tot.TotalAllocated-750) > Epsilon {
		t.Errorf("TotalAllocated = %.2f, want 750", tot.TotalAllocated)
	}
	if math.Abs(tot.TotalSurplus-250) > Epsilon {
		t.Errorf("TotalSurplus = %.2f, want 250", tot.TotalSurplus)
	}
	if math.Abs(tot.TotalUnfunded-150) > Epsilon {
		t.Errorf("TotalUnfunded = %.2f, want 150", tot.TotalUnfunded)
	}
}

func TestValidate_CollectsEveryRule(t *testing.T) {
	short := testEnvelope("rent", 800, model.Essential)
	over := testEnvelope("food", 300, model.Essential)
	over.Allocations = map[string]float64{"side": 300}
	incomes := []model.IncomeSource{
		testIncome("pay", 1000, 0),
		testIncome("side", 100, 1),
	}

	result := Validate([]model.Envelope{short, over}, incomes, model.Fortnightly, DefaultSurplusFloor)

	if len(result.Warnings) != 3 {
		t.Fatalf("warnings = %v, want unfunded + over-allocated + surplus", result.Warnings)
	}
}
