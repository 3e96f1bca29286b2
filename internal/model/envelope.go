// Package model defines domain types for budgetmate envelopes and income.
package model

// Frequency is a billing or pay cadence.
type Frequency string

// Supported cadences.
const (
	Weekly      Frequency = "weekly"
	Fortnightly Frequency = "fortnightly"
	Monthly     Frequency = "monthly"
	Quarterly   Frequency = "quarterly"
	Annually    Frequency = "annually"
)

// ParseFrequency maps a stored string to a Frequency.
// Unknown values degrade to Monthly rather than erroring.
func ParseFrequency(s string) Frequency {
	switch Frequency(s) {
	case Weekly, Fortnightly, Monthly, Quarterly, Annually:
		return Frequency(s)
	default:
		return Monthly
	}
}

// CyclesPerYear returns how many times this cadence occurs in a year.
// Unknown cadences are treated as monthly.
func (f Frequency) CyclesPerYear() float64 {
	switch f {
	case Weekly:
		return 52
	case Fortnightly:
		return 26
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case Annually:
		return 1
	default:
		return 12
	}
}

// Days returns the approximate cadence length in calendar days,
// used for pays-until-due conversion.
func (f Frequency) Days() int {
	switch f {
	case Weekly:
		return 7
	case Fortnightly:
		return 14
	case Monthly:
		return 30
	case Quarterly:
		return 91
	case Annually:
		return 365
	default:
		return 30
	}
}

// Priority is an envelope's funding tier. Essentials are funded first.
type Priority string

const (
	Essential     Priority = "essential"
	Important     Priority = "important"
	Discretionary Priority = "discretionary"
)

// ParsePriority maps a stored string to a Priority, defaulting to Discretionary.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case Essential, Important, Discretionary:
		return Priority(s)
	default:
		return Discretionary
	}
}

// Order returns the waterfall position for the priority (lower funds first).
func (p Priority) Order() int {
	switch p {
	case Essential:
		return 0
	case Important:
		return 1
	default:
		return 2
	}
}

// Subtype describes what kind of bucket an envelope is.
type Subtype string

const (
	Bill     Subtype = "bill"
	Spending Subtype = "spending"
	Savings  Subtype = "savings"
	Goal     Subtype = "goal"
	Tracking Subtype = "tracking"
)

// ParseSubtype maps a stored string to a Subtype, defaulting to Spending.
func ParseSubtype(s string) Subtype {
	switch Subtype(s) {
	case Bill, Spending, Savings, Goal, Tracking:
		return Subtype(s)
	default:
		return Spending
	}
}

// Envelope is a named budget bucket with a target amount, cadence, and
// priority tier. Allocations maps income source ID -> per-pay amount and is
// the only field the engine rewrites.
type Envelope struct {
	ID           string
	Name         string
	TargetAmount float64
	Frequency    Frequency
	Priority     Priority
	Subtype      Subtype
	DueDate      string // "2006-01-02" or a bare day-of-month like "15"
	TrackingOnly bool
	Allocations  map[string]float64
}

// IsTracking reports whether the envelope is excluded from waterfall
// distribution and validation.
func (e Envelope) IsTracking() bool {
	return e.TrackingOnly || e.Subtype == Tracking
}

// AllocatedTotal sums the envelope's current allocations.
func (e Envelope) AllocatedTotal() float64 {
	var total float64
	for _, amt := range e.Allocations {
		total += amt
	}
	return total
}
