package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"
)

// ItineraryHandler plans new itineraries and lists previously planned ones.
type ItineraryHandler struct {
	Repo   ports.PlaceRepository
	Store  ports.ItineraryStore
	Config services.PlannerConfig
}

func (h *ItineraryHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.plan(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// plan validates the request, runs the planning pipeline and returns the
// scored itinerary. Missing required fields are rejected with a message
// naming the field rather than silently defaulting to zero.
func (h *ItineraryHandler) plan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanItineraryRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.CurrentLocation == nil {
		writeError(w, r, http.StatusBadRequest, "missing field: current_location")
		return
	}
	if req.CurrentLocation.Lat == nil {
		writeError(w, r, http.StatusBadRequest, "missing field: current_location.lat")
		return
	}
	if req.CurrentLocation.Lon == nil {
		writeError(w, r, http.StatusBadRequest, "missing field: current_location.lon")
		return
	}
	if req.AvailableMinutes == nil {
		writeError(w, r, http.StatusBadRequest, "missing field: available_time_minutes")
		return
	}

	candidates, fieldErr := candidatesFromInput(req.Places)
	if fieldErr != "" {
		writeError(w, r, http.StatusBadRequest, fieldErr)
		return
	}

	svcReq := services.PlanTripRequest{
		CurrentLocation: domain.Location{
			Lat: *req.CurrentLocation.Lat,
			Lon: *req.CurrentLocation.Lon,
		},
		AvailableMinutes: *req.AvailableMinutes,
		Candidates:       candidates,
	}

	itinerary, err := services.PlanTrip(r.Context(), svcReq, h.Repo, h.Store, h.Config)
	if err != nil {
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toItineraryResponse(*itinerary))
}

func (h *ItineraryHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			writeError(w, r, http.StatusBadRequest, "limit must be an integer between 1 and 100")
			return
		}
		limit = n
	}

	itineraries, err := h.Store.List(r.Context(), limit)
	if err != nil {
		log.Printf("list itineraries failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListItinerariesResponse{
		Itineraries: make([]dto.ItineraryResponse, 0, len(itineraries)),
	}
	for _, it := range itineraries {
		res.Itineraries = append(res.Itineraries, toItineraryResponse(it))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// candidatesFromInput converts inline request candidates, reporting the first
// missing required field by name. An empty message means success.
func candidatesFromInput(inputs []dto.PlaceInput) ([]domain.Place, string) {
	if len(inputs) == 0 {
		return nil, ""
	}

	candidates := make([]domain.Place, 0, len(inputs))
	for i, in := range inputs {
		prefix := "places[" + strconv.Itoa(i) + "]"
		switch {
		case in.PlaceID == nil:
			return nil, "missing field: " + prefix + ".place_id"
		case in.Name == nil:
			return nil, "missing field: " + prefix + ".name"
		case in.Lat == nil:
			return nil, "missing field: " + prefix + ".lat"
		case in.Lon == nil:
			return nil, "missing field: " + prefix + ".lon"
		case in.Rating == nil:
			return nil, "missing field: " + prefix + ".rating"
		case in.VisitDurationMinutes == nil:
			return nil, "missing field: " + prefix + ".visit_duration_minutes"
		}

		candidates = append(candidates, domain.Place{
			PlaceID:              *in.PlaceID,
			Name:                 *in.Name,
			Location:             domain.Location{Lat: *in.Lat, Lon: *in.Lon},
			Rating:               *in.Rating,
			VisitDurationMinutes: *in.VisitDurationMinutes,
		})
	}

	return candidates, ""
}

func toItineraryResponse(it domain.Itinerary) dto.ItineraryResponse {
	places := make([]dto.ScoredPlaceResponse, 0, len(it.Places))
	for _, sp := range it.Places {
		places = append(places, dto.ScoredPlaceResponse{
			PlaceResponse: dto.PlaceResponse{
				PlaceID:              sp.PlaceID,
				Name:                 sp.Name,
				Lat:                  sp.Location.Lat,
				Lon:                  sp.Location.Lon,
				Rating:               sp.Rating,
				VisitDurationMinutes: sp.VisitDurationMinutes,
			},
			DistanceFromUserKm:        sp.DistanceKm,
			TravelTimeFromUserMinutes: sp.TravelTimeMinutes,
			Score:                     sp.Score,
		})
	}

	return dto.ItineraryResponse{
		ItineraryID:      it.ItineraryID,
		CurrentLat:       it.CurrentLocation.Lat,
		CurrentLon:       it.CurrentLocation.Lon,
		AvailableMinutes: it.AvailableMinutes,
		TotalTimeUsed:    it.TotalTimeUsed,
		Places:           places,
		CreatedAt:        it.CreatedAt,
	}
}
