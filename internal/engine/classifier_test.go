package engine

import (
	"testing"

	"budgetmate/internal/model"
)

func classifyIncomes() []model.IncomeSource {
	return []model.IncomeSource{
		testIncome("salary", 1000, 0),
		testIncome("side", 500, 1),
	}
}

func TestClassify_None(t *testing.T) {
	env := testEnvelope("e", 100, model.Important)
	if got := Classify(env, classifyIncomes()); got != FundedNone {
		t.Errorf("nil allocations = %s, want none", got)
	}

	env.Allocations = map[string]float64{"salary": 0}
	if got := Classify(env, classifyIncomes()); got != FundedNone {
		t.Errorf("all-zero allocations = %s, want none", got)
	}
}

func TestClassify_Primary(t *testing.T) {
	env := testEnvelope("e", 100, model.Important)
	env.Allocations = map[string]float64{"salary": 100}
	if got := Classify(env, classifyIncomes()); got != FundedPrimary {
		t.Errorf("Classify = %s, want primary", got)
	}
}

func TestClassify_Secondary(t *testing.T) {
	env := testEnvelope("e", 100, model.Important)
	env.Allocations = map[string]float64{"side": 100}
	if got := Classify(env, classifyIncomes()); got != FundedSecondary {
		t.Errorf("Classify = %s, want secondary", got)
	}
}

func TestClassify_Split(t *testing.T) {
	env := testEnvelope("e", 100, model.Important)
	env.Allocations = map[string]float64{"salary": 60, "side": 40}
	if got := Classify(env, classifyIncomes()); got != FundedSplit {
		t.Errorf("Classify = %s, want split", got)
	}
}

func TestClassify_ZeroEntryDoesNotMakeSplit(t *testing.T) {
	env := testEnvelope("e", 100, model.Important)
	env.Allocations = map[string]float64{"salary": 100, "side": 0}
	if got := Classify(env, classifyIncomes()); got != FundedPrimary {
		t.Errorf("Classify = %s, want primary (zero entry ignored)", got)
	}
}

func TestClassify_UnknownSourceIsSecondary(t *testing.T) {
	env := testEnvelope("e", 100, model.Important)
	env.Allocations = map[string]float64{"deleted": 100}
	if got := Classify(env, classifyIncomes()); got != FundedSecondary {
		t.Errorf("Classify = %s, want secondary for vanished source", got)
	}
}
