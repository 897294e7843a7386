package services

import (
	"slices"

	"trip-itinerary-service/internal/domain"
)

// BuildItinerary selects a subset of candidate places that maximizes score
// while a fixed time budget permits, using a greedy heuristic.
//
// Every candidate is scored against the current location, the candidates are
// ranked by score descending with a stable sort, and the ranked sequence is
// scanned in order: a candidate is accepted when its travel time plus visit
// duration still fits the remaining budget, and skipped otherwise. The scan
// continues past rejections, so cheaper lower-ranked candidates can still be
// accepted. It never backtracks or swaps an accepted place for a later one.
//
// The algorithm does not attempt an optimal knapsack solution. The design
// prioritizes determinism and simplicity over optimality, and downstream
// consumers depend on the specific greedy selection pattern.
func BuildItinerary(
	current domain.Location,
	availableMinutes float64,
	candidates []domain.Place,
	cfg PlannerConfig,
) domain.Itinerary {
	scored := make([]domain.ScoredPlace, 0, len(candidates))
	for _, p := range candidates {
		dist := HaversineKm(current, p.Location)
		scored = append(scored, domain.ScoredPlace{
			Place:             p,
			DistanceKm:        dist,
			TravelTimeMinutes: cfg.TravelTimeMinutes(dist),
			Score:             cfg.ScorePlace(p, dist),
		})
	}

	// Stable sort: candidates with equal scores keep their input order, which
	// makes repeated runs with identical input produce identical output.
	slices.SortStableFunc(scored, func(a, b domain.ScoredPlace) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	selected := make([]domain.ScoredPlace, 0, len(scored))
	timeUsed := 0.0

	for _, sp := range scored {
		cost := sp.TravelTimeMinutes + sp.VisitDurationMinutes
		if timeUsed+cost > availableMinutes {
			continue
		}
		selected = append(selected, sp)
		timeUsed += cost
	}

	return domain.Itinerary{
		CurrentLocation:  current,
		AvailableMinutes: availableMinutes,
		Places:           selected,
		TotalTimeUsed:    timeUsed,
	}
}
