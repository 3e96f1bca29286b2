package engine

import "budgetmate/internal/model"

// RequiredPerPay returns the envelope's required contribution per pay cycle.
// Tracking envelopes and envelopes without a target need exactly 0.
func RequiredPerPay(env model.Envelope, target model.Frequency) float64 {
	if env.IsTracking() {
		return 0
	}
	amount := clampAmount(env.TargetAmount)
	if amount == 0 {
		return 0
	}
	return Normalize(amount, env.Frequency, target)
}

// AnnualRequirement returns the envelope's annualized target for display.
func AnnualRequirement(env model.Envelope) float64 {
	if env.IsTracking() {
		return 0
	}
	return Annualize(env.TargetAmount, env.Frequency)
}

// Capacity returns an income source's per-pay capacity on the target cycle.
// Inactive sources contribute nothing.
func Capacity(src model.IncomeSource, target model.Frequency) float64 {
	if !src.Active {
		return 0
	}
	return Normalize(src.Amount, src.Frequency, target)
}
