package ports

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// Port: a boundary for retrieving candidate places from the catalog.
type PlaceRepository interface {
	// Retrieve all places eligible for itinerary planning.
	ListPlaces(ctx context.Context) ([]domain.Place, error)
}
