// Package export writes funding statements for a computed allocation plan.
// The engine works in float64; everything leaving the program goes through
// decimal rounding so statements are exact to the cent.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"budgetmate/internal/engine"
	"budgetmate/internal/model"

	"github.com/shopspring/decimal"
)

// cents rounds a float amount to an exact two-decimal string.
func cents(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

// WriteStatement writes the plan as CSV: one row per non-tracking envelope,
// then a per-income-source section.
func WriteStatement(w io.Writer, plan model.AllocationPlan, incomes []model.IncomeSource) error {
	cw := csv.NewWriter(w)

	header := []string{"envelope", "priority", "subtype", "required_per_pay", "allocated", "shortfall", "funded_by", "annual"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, env := range plan.Envelopes {
		if env.IsTracking() {
			continue
		}
		required := engine.RequiredPerPay(env, plan.TargetCycle)
		allocated := env.AllocatedTotal()
		shortfall := required - allocated
		if shortfall < 0 {
			shortfall = 0
		}

		row := []string{
			env.Name,
			string(env.Priority),
			string(env.Subtype),
			cents(required),
			cents(allocated),
			cents(shortfall),
			string(engine.Classify(env, incomes)),
			cents(engine.AnnualRequirement(env)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing envelope row: %w", err)
		}
	}

	if err := cw.Write([]string{}); err != nil {
		return err
	}
	if err := cw.Write([]string{"income_source", "capacity", "allocated", "remaining", "percent_used"}); err != nil {
		return err
	}
	for _, src := range plan.Sources {
		row := []string{
			src.Name,
			cents(src.Capacity),
			cents(src.Allocated),
			cents(src.Remaining),
			fmt.Sprintf("%.1f", src.PercentUsed),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing source row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
