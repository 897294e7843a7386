package services

import (
	"math"
	"testing"

	"trip-itinerary-service/internal/domain"
)

func TestHaversineIdentity(t *testing.T) {
	locations := []domain.Location{
		{Lat: 0, Lon: 0},
		{Lat: 12.9716, Lon: 77.5946},
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 89.9, Lon: -179.9},
	}

	for _, loc := range locations {
		d := HaversineKm(loc, loc)
		if math.Abs(d) > 1e-6 {
			t.Errorf("HaversineKm(%v, %v) = %v, want 0", loc, loc, d)
		}
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := domain.Location{Lat: 12.9716, Lon: 77.5946}
	b := domain.Location{Lat: 13.0827, Lon: 80.2707}

	ab := HaversineKm(a, b)
	ba := HaversineKm(b, a)
	if ab != ba {
		t.Errorf("HaversineKm not symmetric: a->b = %v, b->a = %v", ab, ba)
	}
}

func TestHaversineBangaloreToChennai(t *testing.T) {
	// Known fixture: Bangalore to Chennai is roughly 290 km great-circle.
	bangalore := domain.Location{Lat: 12.9716, Lon: 77.5946}
	chennai := domain.Location{Lat: 13.0827, Lon: 80.2707}

	d := HaversineKm(bangalore, chennai)
	if d < 285 || d > 300 {
		t.Errorf("HaversineKm(Bangalore, Chennai) = %v km, want roughly 290-295", d)
	}
}
