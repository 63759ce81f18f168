package models

import "time"

// DrawRecord is the append-only audit record of a single draw. The stored
// seed makes every draw reproducible after the fact.
type DrawRecord struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	Seed           int64     `json:"seed"`
	RequestedCount int       `json:"requested_count"`
	SelectedIDs    []string  `json:"selected_ids"`
	Backfill       bool      `json:"backfill"`
	CreatedAt      time.Time `json:"created_at"`
}

// EventCounts is the read-only counter view exposed to callers.
type EventCounts struct {
	Waiting           int `json:"waiting"`
	Selected          int `json:"selected"`
	Confirmed         int `json:"confirmed"`
	CapacityRemaining int `json:"capacity_remaining"`
}
