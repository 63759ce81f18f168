// Package notify delivers allocation outcomes to entrants through an external
// push-delivery system. Dispatch is fire-and-forget: failures are logged and
// never block or fail the allocation path.
package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type Kind string

const (
	KindSelected         Kind = "selected"
	KindNotSelected      Kind = "not_selected"
	KindBackfillSelected Kind = "backfill_selected"
	KindConfirmed        Kind = "confirmed"
)

// Notification is one outcome message for one entrant.
type Notification struct {
	EntrantID string    `json:"entrant_id"`
	EventID   string    `json:"event_id"`
	Kind      Kind      `json:"kind"`
	SentAt    time.Time `json:"sent_at"`
}

// Dispatcher hands a notification to the delivery system.
type Dispatcher interface {
	Notify(ctx context.Context, n Notification)
}

// LogDispatcher writes notifications to the log only. Used when Kafka is
// disabled, and as the default in tests.
type LogDispatcher struct {
	Logger zerolog.Logger
}

func (d *LogDispatcher) Notify(_ context.Context, n Notification) {
	d.Logger.Info().
		Str("entrant_id", n.EntrantID).
		Str("event_id", n.EventID).
		Str("kind", string(n.Kind)).
		Msg("Notification dispatched")
}
