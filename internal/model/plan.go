package model

// SourceSummary holds per-income-source totals for a computed plan.
type SourceSummary struct {
	SourceID    string
	Name        string
	Capacity    float64 // per-pay capacity on the target cycle
	Allocated   float64
	Remaining   float64
	PercentUsed float64
}

// AllocationPlan is the derived full plan: envelopes with their current
// allocations plus per-source totals. It is recomputed wholesale on every
// input change, never patched incrementally.
type AllocationPlan struct {
	TargetCycle Frequency
	Envelopes   []Envelope
	Sources     []SourceSummary
}

// ValidationTotals are the aggregate figures returned alongside warnings.
type ValidationTotals struct {
	TotalIncome    float64
	TotalAllocated float64
	TotalSurplus   float64
	TotalUnfunded  float64
}

// ValidationResult is advisory: callers surface the warnings and ask for an
// explicit confirmation before saving, but nothing here blocks a write.
type ValidationResult struct {
	Warnings []string
	Totals   ValidationTotals
}

// HasWarnings reports whether the plan needs a "save anyway" confirmation.
func (r ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Urgency buckets how soon a bill needs attention.
type Urgency string

const (
	UrgencyNone    Urgency = "none" // no due date or no resolvable schedule
	UrgencyOverdue Urgency = "overdue"
	UrgencyDueNow  Urgency = "dueNow"
	UrgencyDueSoon Urgency = "dueSoon"
	UrgencyOnTrack Urgency = "onTrack"
)

// DueStatus is the badge descriptor for a bill envelope.
type DueStatus struct {
	Urgency         Urgency
	CyclesRemaining int
	DisplayText     string
	Funded          bool
}
