package engine

import (
	"math"
	"sort"

	"budgetmate/internal/model"
)

// Allocate runs the priority waterfall: envelopes sorted by priority tier
// (stable, so same-tier envelopes keep their input order) are funded from
// income sources in rank order until either the requirement is met or
// capacity runs out. Each funded envelope's allocation map is replaced
// wholesale; prior manual splits do not survive an auto-calculate.
//
// The input slices are not mutated. The returned envelopes carry the new
// allocations; running Allocate again on its own output yields the same plan.
func Allocate(envelopes []model.Envelope, incomes []model.IncomeSource, target model.Frequency) []model.Envelope {
	sources := rankOrder(incomes)

	capacity := make([]float64, len(sources))
	for i, src := range sources {
		capacity[i] = Capacity(src, target)
	}

	result := make([]model.Envelope, len(envelopes))
	copy(result, envelopes)

	// Indices of envelopes that need funding, in waterfall order.
	order := make([]int, 0, len(result))
	for i, env := range result {
		if RequiredPerPay(env, target) > 0 {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return result[order[a]].Priority.Order() < result[order[b]].Priority.Order()
	})

	for _, idx := range order {
		remaining := RequiredPerPay(result[idx], target)
		alloc := make(map[string]float64)

		for i, src := range sources {
			if remaining <= Epsilon {
				break
			}
			take := math.Min(remaining, capacity[i])
			if take > Epsilon {
				alloc[src.ID] = take
				capacity[i] -= take
				remaining -= take
			}
		}

		result[idx].Allocations = alloc
	}

	return result
}

// Summarize computes per-source totals for the current allocations, feeding
// the progress cards. Remaining can go negative when manual edits exceed
// capacity; the validator reports those.
func Summarize(envelopes []model.Envelope, incomes []model.IncomeSource, target model.Frequency) []model.SourceSummary {
	sources := rankOrder(incomes)

	summaries := make([]model.SourceSummary, 0, len(sources))
	for _, src := range sources {
		cap := Capacity(src, target)

		var allocated float64
		for _, env := range envelopes {
			allocated += env.Allocations[src.ID]
		}

		s := model.SourceSummary{
			SourceID:  src.ID,
			Name:      src.Name,
			Capacity:  cap,
			Allocated: allocated,
			Remaining: cap - allocated,
		}
		if cap > 0 {
			s.PercentUsed = allocated / cap * 100
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// BuildPlan runs the waterfall and bundles the result with source summaries.
func BuildPlan(envelopes []model.Envelope, incomes []model.IncomeSource, target model.Frequency) model.AllocationPlan {
	allocated := Allocate(envelopes, incomes, target)
	return model.AllocationPlan{
		TargetCycle: target,
		Envelopes:   allocated,
		Sources:     Summarize(allocated, incomes, target),
	}
}

// rankOrder returns active income sources sorted by funding rank.
func rankOrder(incomes []model.IncomeSource) []model.IncomeSource {
	sources := make([]model.IncomeSource, 0, len(incomes))
	for _, src := range incomes {
		if src.Active {
			sources = append(sources, src)
		}
	}
	sort.SliceStable(sources, func(a, b int) bool {
		return sources[a].Rank < sources[b].Rank
	})
	return sources
}
