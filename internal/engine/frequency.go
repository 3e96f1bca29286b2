// Package engine implements the priority-waterfall allocation engine:
// frequency normalization, per-pay requirements, greedy waterfall funding,
// funded-by classification, plan validation, and pays-until-due urgency.
// Every function is a pure computation over immutable snapshots.
package engine

import (
	"math"

	"budgetmate/internal/model"
)

// Epsilon is the tolerance band for all dollar comparisons. The engine does
// float64 arithmetic, so anything within one cent counts as equal.
const Epsilon = 0.01

// clampAmount treats negative, NaN, and infinite amounts as zero.
func clampAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Normalize converts an amount on one cadence to its equivalent on another,
// preserving annual value. A $120 annual bill on a monthly cycle is $10.
func Normalize(amount float64, from, to model.Frequency) float64 {
	amount = clampAmount(amount)
	return amount * from.CyclesPerYear() / to.CyclesPerYear()
}

// Annualize returns the amount's yearly equivalent, used for "Annual"
// display columns.
func Annualize(amount float64, freq model.Frequency) float64 {
	return clampAmount(amount) * freq.CyclesPerYear()
}
