package ports

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// Port: persistence for computed itineraries.
type ItineraryStore interface {
	// Persist a planned itinerary.
	Save(ctx context.Context, it domain.Itinerary) error
	// Return the most recently planned itineraries, newest first.
	List(ctx context.Context, limit int) ([]domain.Itinerary, error)
}
