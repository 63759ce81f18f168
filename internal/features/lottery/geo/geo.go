// Package geo decides whether an entrant may view or join an event based on
// its geolocation requirements. Checks run at join time only; an existing
// entry is never re-evaluated when the entrant moves.
package geo

import (
	"math"

	"event-lottery-backend/internal/features/lottery/models"
)

const earthRadiusKm = 6371

// Distance returns the great-circle distance between a and b in kilometers,
// using the haversine formula.
func Distance(a, b models.LatLng) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// IsEligible reports whether the entrant may join the event.
//
// An event that requires geolocation rejects entrants with geolocation
// disabled or no known location. A radius restriction additionally needs
// coordinates on both sides and admits entrants up to and including the
// boundary distance.
func IsEligible(event *models.Event, entrant *models.Entrant) bool {
	if event.GeolocationRequired {
		if !entrant.GeolocationEnabled || entrant.CurrentLocation == nil {
			return false
		}
	}

	if event.RadiusRestrictionKm > 0 {
		if event.LocationCoords == nil || entrant.CurrentLocation == nil {
			return false
		}
		if !entrant.GeolocationEnabled {
			return false
		}
		return Distance(*entrant.CurrentLocation, *event.LocationCoords) <= event.RadiusRestrictionKm
	}

	return true
}
