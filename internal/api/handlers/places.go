package handlers

import (
	"log"
	"net/http"

	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/ports"
)

// PlaceHandler exposes read-only catalog retrieval endpoints.
type PlaceHandler struct {
	Repo ports.PlaceRepository
}

func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	places, err := h.Repo.ListPlaces(r.Context())
	if err != nil {
		log.Printf("list places failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPlacesResponse{
		Places: make([]dto.PlaceResponse, 0, len(places)),
	}
	for _, p := range places {
		res.Places = append(res.Places, dto.PlaceResponse{
			PlaceID:              p.PlaceID,
			Name:                 p.Name,
			Lat:                  p.Location.Lat,
			Lon:                  p.Location.Lon,
			Rating:               p.Rating,
			VisitDurationMinutes: p.VisitDurationMinutes,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
