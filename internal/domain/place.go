package domain

// Represents a candidate point of interest supplied by the places catalog.
// A Place is immutable planning input; the scoring pipeline derives fresh
// ScoredPlace records and never modifies the original.
type Place struct {
	PlaceID              string
	Name                 string
	Location             Location
	Rating               float64 // expected range 0-5
	VisitDurationMinutes float64
}
