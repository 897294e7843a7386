package domain

// Immutable geographic coordinates in decimal degrees (latitude, longitude).
// Valid latitudes span [-90, 90] and longitudes [-180, 180]. The scoring core
// does not enforce these ranges; validation is an explicit caller policy.
type Location struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (l Location) CoordsToList() []float64 { return []float64{l.Lon, l.Lat} }
