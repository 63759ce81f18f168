package models

import "time"

type EntryStatus string

const (
	StatusWaiting   EntryStatus = "waiting"
	StatusSelected  EntryStatus = "selected"
	StatusConfirmed EntryStatus = "confirmed"
	StatusDeclined  EntryStatus = "declined"
	StatusCancelled EntryStatus = "cancelled"
)

// Active reports whether the entry still occupies its (event, entrant) slot
// for duplicate-join purposes.
func (s EntryStatus) Active() bool {
	return s != EntryStatus("") && s != StatusCancelled && s != StatusDeclined
}

// Valid reports whether s is one of the known statuses.
func (s EntryStatus) Valid() bool {
	switch s {
	case StatusWaiting, StatusSelected, StatusConfirmed, StatusDeclined, StatusCancelled:
		return true
	}
	return false
}

// CanTransition encodes the allowed lifecycle edges. Cancellation is reachable
// from every state; a Confirmed entry is only cancellable by explicit
// administrative action, which is the sole caller of that edge.
func CanTransition(from, to EntryStatus) bool {
	switch from {
	case StatusWaiting:
		return to == StatusSelected || to == StatusCancelled
	case StatusSelected:
		return to == StatusConfirmed || to == StatusDeclined || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled
	default:
		return false
	}
}

// WaitlistEntry is the registration of one entrant on one event's waiting
// list. Keyed by (EventID, EntrantID); there is never more than one.
type WaitlistEntry struct {
	EventID   string      `json:"event_id"`
	EntrantID string      `json:"entrant_id"`
	Status    EntryStatus `json:"status"`

	// JoinedAt orders the waiting pool for display and audit only; selection
	// never uses it.
	JoinedAt time.Time `json:"joined_at"`

	// Location snapshot taken at join time, display only.
	Location *LatLng `json:"location,omitempty"`

	// Set when the entry becomes Selected.
	ResponseDeadline *time.Time `json:"response_deadline,omitempty"`

	// Version is a monotonic counter for optimistic concurrency.
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Entrant is the slice of the profile subsystem the lottery cares about.
type Entrant struct {
	ID                 string  `json:"id"`
	GeolocationEnabled bool    `json:"geolocation_enabled"`
	CurrentLocation    *LatLng `json:"current_location,omitempty"`
}
