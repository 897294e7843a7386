package api

import (
	"net/http"

	"trip-itinerary-service/internal/api/handlers"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	repo ports.PlaceRepository,
	store ports.ItineraryStore,
	cfg services.PlannerConfig,
) http.Handler {
	mux := http.NewServeMux()

	placeHandler := &handlers.PlaceHandler{Repo: repo}
	itineraryHandler := &handlers.ItineraryHandler{
		Repo:   repo,
		Store:  store,
		Config: cfg,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/places", placeHandler.List)
	mux.HandleFunc("/itineraries", itineraryHandler.Handle)

	return loggingMiddleware(mux)
}
