package engine

import "budgetmate/internal/model"

// Funding labels how an envelope is funded.
type Funding string

const (
	FundedNone      Funding = "none"
	FundedPrimary   Funding = "primary"
	FundedSecondary Funding = "secondary"
	FundedSplit     Funding = "split"
)

// Classify inspects an envelope's allocation map: no nonzero entries is
// none, more than one is split, and a single funding source is primary or
// secondary depending on its rank. It never re-derives amounts.
func Classify(env model.Envelope, incomes []model.IncomeSource) Funding {
	var fundingID string
	nonZero := 0
	for id, amt := range env.Allocations {
		if amt > 0 {
			nonZero++
			fundingID = id
		}
	}

	switch {
	case nonZero == 0:
		return FundedNone
	case nonZero > 1:
		return FundedSplit
	}

	for _, src := range incomes {
		if src.ID == fundingID {
			if src.Rank == 0 {
				return FundedPrimary
			}
			return FundedSecondary
		}
	}
	// Funding source no longer exists; it cannot be the primary.
	return FundedSecondary
}
