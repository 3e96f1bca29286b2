package model

import "time"

// IncomeSource is a recurring inflow. Rank is its position in the funding
// order: 0 funds first ("primary"). The engine never mutates income sources.
type IncomeSource struct {
	ID          string
	Name        string
	Amount      float64
	Frequency   Frequency
	Active      bool
	Rank        int
	NextPayDate time.Time // zero if unknown
}

// PaySchedule is the household's active pay cadence, derived from the
// primary income source. Consumed by the due-date urgency calculator.
type PaySchedule struct {
	Cadence    Frequency
	AnchorDate time.Time
}

// Resolvable reports whether the schedule carries enough information to
// convert days into pay cycles.
func (s PaySchedule) Resolvable() bool {
	return s.Cadence != ""
}
