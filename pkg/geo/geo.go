// Package geo computes distances on the WGS-84 ellipsoid.
package geo

import (
	"math"

	"github.com/tidwall/geodesic"
)

// MetersPerMile is the international mile.
const MetersPerMile = 1609.344

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Valid reports whether p lies within the legal coordinate ranges.
func (p Point) Valid() bool {
	return !math.IsNaN(p.Lat) && !math.IsNaN(p.Lon) &&
		p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Meters returns the geodesic distance between a and b.
func Meters(a, b Point) float64 {
	var s12 float64
	geodesic.WGS84.Inverse(a.Lat, a.Lon, b.Lat, b.Lon, &s12, nil, nil)
	return s12
}

// Miles returns the geodesic distance between a and b in statute miles.
func Miles(a, b Point) float64 {
	return Meters(a, b) / MetersPerMile
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
