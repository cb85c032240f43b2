// Package distance resolves the driving distance between customer addresses
// for the quote widget. Addresses are geocoded through Kakao Local, routed
// through Kakao Mobility, and a straight-line estimate covers routing
// outages.
package distance

import (
	"errors"
	"math"
)

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

var (
	// ErrAddressNotFound means the geocoder had no match. This is surfaced
	// to the user; distance is never silently defaulted to zero.
	ErrAddressNotFound = errors.New("distance: address not found")

	// ErrProviderUnavailable means the routing provider failed. The
	// resolver recovers with the straight-line fallback.
	ErrProviderUnavailable = errors.New("distance: provider unavailable")
)

const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance between two points.
func HaversineKm(a, b Coordinate) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
