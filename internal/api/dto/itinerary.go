package dto

import "time"

// Required request fields are pointers so that an absent field can be told
// apart from a zero value and rejected with a message naming the field.
type LocationInput struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type PlaceInput struct {
	PlaceID              *string  `json:"place_id"`
	Name                 *string  `json:"name"`
	Lat                  *float64 `json:"lat"`
	Lon                  *float64 `json:"lon"`
	Rating               *float64 `json:"rating"`
	VisitDurationMinutes *float64 `json:"visit_duration_minutes"`
}

type PlanItineraryRequest struct {
	CurrentLocation  *LocationInput `json:"current_location"`
	AvailableMinutes *float64       `json:"available_time_minutes"`
	// Optional inline candidates; when omitted the service plans over the
	// stored places catalog.
	Places []PlaceInput `json:"places"`
}

type ScoredPlaceResponse struct {
	PlaceResponse
	DistanceFromUserKm        float64 `json:"distance_from_user"`
	TravelTimeFromUserMinutes float64 `json:"travel_time_from_user"`
	Score                     float64 `json:"score"`
}

type ItineraryResponse struct {
	ItineraryID      string                `json:"itinerary_id"`
	CurrentLat       float64               `json:"current_lat"`
	CurrentLon       float64               `json:"current_lon"`
	AvailableMinutes float64               `json:"available_time_minutes"`
	TotalTimeUsed    float64               `json:"total_time_used"`
	Places           []ScoredPlaceResponse `json:"places"`
	CreatedAt        time.Time             `json:"created_at"`
}

type ListItinerariesResponse struct {
	Itineraries []ItineraryResponse `json:"itineraries"`
}
