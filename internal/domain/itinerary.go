package domain

import "time"

// A Place annotated with metrics computed relative to the traveler's current
// position. Derived, read-only planning data produced fresh per request.
type ScoredPlace struct {
	Place
	DistanceKm        float64
	TravelTimeMinutes float64
	Score             float64
}

// Represents the planned trip for a single request.
// An Itinerary is the output of the greedy selection algorithm and holds the
// selected places in descending-score order along with the time the selection
// consumes. TotalTimeUsed never exceeds AvailableMinutes.
// It is immutable planning data and contains no side effects.
type Itinerary struct {
	ItineraryID      string
	CurrentLocation  Location
	AvailableMinutes float64
	Places           []ScoredPlace
	TotalTimeUsed    float64
	CreatedAt        time.Time
}
