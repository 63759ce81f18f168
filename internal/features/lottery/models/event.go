package models

import "time"

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Event holds the lottery configuration for a single event. Configuration is
// frozen once the first draw has run; only the bookkeeping counters move after
// that, and only the registry mutates them.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Capacity int `json:"capacity"`
	// 0 means the waiting list is unbounded.
	WaitingListLimit int `json:"waiting_list_limit,omitempty"`

	RegistrationOpen  time.Time `json:"registration_open"`
	RegistrationClose time.Time `json:"registration_close"`

	GeolocationRequired bool `json:"geolocation_required"`
	// 0 means no radius restriction. When set, LocationCoords must be present.
	RadiusRestrictionKm float64 `json:"radius_restriction_km,omitempty"`
	LocationCoords      *LatLng `json:"location_coords,omitempty"`

	// Counters maintained by the registry, never set by callers.
	SelectedCount  int `json:"selected_count"`
	ConfirmedCount int `json:"confirmed_count"`
	DrawCount      int `json:"draw_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SpotsRemaining is the number of seats not yet held by a selected or
// confirmed entrant.
func (e *Event) SpotsRemaining() int {
	return e.Capacity - e.SelectedCount - e.ConfirmedCount
}

// RegistrationOpenAt reports whether now falls inside the registration window,
// boundaries inclusive.
func (e *Event) RegistrationOpenAt(now time.Time) bool {
	return !now.Before(e.RegistrationOpen) && !now.After(e.RegistrationClose)
}
