package engine

import (
	"fmt"
	"strings"

	"budgetmate/internal/model"
)

// DefaultSurplusFloor is the unallocated-income threshold below which the
// surplus-vs-backlog warning stays quiet.
const DefaultSurplusFloor = 10.0

// Validate scans the full plan for problems a user should acknowledge before
// saving. Every rule is evaluated independently; warnings accumulate and
// nothing here blocks a write.
func Validate(envelopes []model.Envelope, incomes []model.IncomeSource, target model.Frequency, surplusFloor float64) model.ValidationResult {
	var result model.ValidationResult

	// Unfunded essentials, listed by name.
	var shortEssentials []string
	for _, env := range envelopes {
		if env.Priority != model.Essential {
			continue
		}
		required := RequiredPerPay(env, target)
		if required <= 0 {
			continue
		}
		if env.AllocatedTotal() < required-Epsilon {
			shortEssentials = append(shortEssentials, env.Name)
		}
	}
	if len(shortEssentials) > 0 {
		noun := "envelopes are"
		if len(shortEssentials) == 1 {
			noun = "envelope is"
		}
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"%d essential %s not fully funded: %s",
			len(shortEssentials), noun, strings.Join(shortEssentials, ", ")))
	}

	// Over-allocated income sources. Manual edits bypass capacity checks at
	// write time, so this is where they surface.
	for _, src := range incomes {
		capacity := Capacity(src, target)

		var allocated float64
		for _, env := range envelopes {
			allocated += env.Allocations[src.ID]
		}
		if allocated > capacity+Epsilon {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"%s is over-allocated by $%.2f", src.Name, allocated-capacity))
		}
	}

	// Totals over non-tracking envelopes.
	for _, src := range incomes {
		result.Totals.TotalIncome += Capacity(src, target)
	}
	for _, env := range envelopes {
		if env.IsTracking() {
			continue
		}
		allocated := env.AllocatedTotal()
		result.Totals.TotalAllocated += allocated
		if shortfall := RequiredPerPay(env, target) - allocated; shortfall > 0 {
			result.Totals.TotalUnfunded += shortfall
		}
	}
	result.Totals.TotalSurplus = result.Totals.TotalIncome - result.Totals.TotalAllocated

	// Surplus sitting idle while envelopes go unfunded.
	if result.Totals.TotalSurplus > surplusFloor && result.Totals.TotalUnfunded > Epsilon {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"$%.2f of income is unallocated while envelopes are short $%.2f",
			result.Totals.TotalSurplus, result.Totals.TotalUnfunded))
	}

	return result
}
