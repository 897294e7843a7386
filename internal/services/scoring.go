package services

import "trip-itinerary-service/internal/domain"

// Tunable parameters of the scoring and selection pipeline.
//
// The weights are deliberately un-normalized: scores are unbounded and the
// relative influence of rating versus distance depends on the empirical
// spread of distances in the candidate set. That is an inherent property of
// the heuristic, not something to compensate for here.
type PlannerConfig struct {
	AverageSpeedKmh float64
	RatingWeight    float64
	DistanceWeight  float64

	// ValidateInputs makes PlanTrip reject candidates with out-of-range
	// coordinates, ratings outside [0, 5] or negative visit durations before
	// scoring. The scoring core itself stays permissive either way.
	ValidateInputs bool
}

func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		AverageSpeedKmh: 30, // average urban travel speed
		RatingWeight:    10,
		DistanceWeight:  2,
		ValidateInputs:  true,
	}
}

// TravelTimeMinutes converts a distance into an estimated travel duration at
// the configured average speed. Linear and monotonically increasing in
// distance; zero distance yields zero minutes. No routing graph, no traffic.
func (c PlannerConfig) TravelTimeMinutes(distanceKm float64) float64 {
	return distanceKm / c.AverageSpeedKmh * 60
}

// ScorePlace combines a place's intrinsic rating and its distance from the
// traveler into a single comparable score. Higher rating raises the score,
// greater distance lowers it.
func (c PlannerConfig) ScorePlace(p domain.Place, distanceKm float64) float64 {
	return p.Rating*c.RatingWeight - distanceKm*c.DistanceWeight
}
