package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"

	"github.com/google/uuid"
)

type PlanTripRequest struct {
	CurrentLocation  domain.Location
	AvailableMinutes float64
	// Optional inline candidates. When empty, the place repository supplies
	// the candidate catalog instead.
	Candidates []domain.Place
}

// PlanTrip coordinates candidate retrieval, input validation, greedy
// selection and persistence of the resulting itinerary.
//
// The selection itself cannot partially fail: an empty candidate set or a
// non-positive budget simply yield an empty itinerary. Errors only arise
// from the repository, the validation policy, or the store.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	repo ports.PlaceRepository,
	store ports.ItineraryStore,
	cfg PlannerConfig,
) (*domain.Itinerary, error) {
	candidates := req.Candidates
	if len(candidates) == 0 {
		var err error
		candidates, err = repo.ListPlaces(ctx)
		if err != nil {
			return nil, fmt.Errorf("plan trip: list places: %w", err)
		}
	}

	if cfg.ValidateInputs {
		if err := validateLocation(req.CurrentLocation); err != nil {
			return nil, fmt.Errorf("plan trip: current location: %w", err)
		}
		for _, p := range candidates {
			if err := validatePlace(p); err != nil {
				return nil, fmt.Errorf("plan trip: place %q: %w", p.PlaceID, err)
			}
		}
	}

	itinerary := BuildItinerary(req.CurrentLocation, req.AvailableMinutes, candidates, cfg)
	itinerary.ItineraryID = uuid.NewString()
	itinerary.CreatedAt = time.Now().UTC()

	// Persistence is optional; planning works without a configured store.
	if store != nil {
		if err := store.Save(ctx, itinerary); err != nil {
			return nil, fmt.Errorf("plan trip: save itinerary: %w", err)
		}
	}

	return &itinerary, nil
}

func validateLocation(loc domain.Location) error {
	if math.IsNaN(loc.Lat) || math.IsInf(loc.Lat, 0) || loc.Lat < -90 || loc.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", loc.Lat)
	}
	if math.IsNaN(loc.Lon) || math.IsInf(loc.Lon, 0) || loc.Lon < -180 || loc.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", loc.Lon)
	}
	return nil
}

func validatePlace(p domain.Place) error {
	if err := validateLocation(p.Location); err != nil {
		return err
	}
	if math.IsNaN(p.Rating) || p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("rating %v out of range [0, 5]", p.Rating)
	}
	if math.IsNaN(p.VisitDurationMinutes) || p.VisitDurationMinutes < 0 {
		return fmt.Errorf("visit duration %v must be non-negative", p.VisitDurationMinutes)
	}
	return nil
}
