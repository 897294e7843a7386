package dto

type PlaceResponse struct {
	PlaceID              string  `json:"place_id"`
	Name                 string  `json:"name"`
	Lat                  float64 `json:"lat"`
	Lon                  float64 `json:"lon"`
	Rating               float64 `json:"rating"`
	VisitDurationMinutes float64 `json:"visit_duration_minutes"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}
