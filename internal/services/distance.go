package services

import (
	"math"

	"trip-itinerary-service/internal/domain"
)

// Mean Earth radius in kilometers used by the haversine formula.
const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between two
// coordinates. Symmetric in its arguments and zero for identical points.
// Out-of-range coordinates still produce a finite number, just a meaningless
// one; range checks belong to the validation policy, not to the formula.
func HaversineKm(a, b domain.Location) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
