package service

import (
	"context"
	"time"

	apperrors "event-lottery-backend/internal/common/errors"

	"github.com/rs/zerolog"
)

// Sweeper periodically expires overdue selections across all events. It is
// the scheduler collaborator behind the timeout rule: an entrant who never
// responds is declined exactly as if they had declined themselves.
type Sweeper struct {
	svc      *Service
	interval time.Duration
	logger   zerolog.Logger
}

func NewSweeper(svc *Service, interval time.Duration, logger zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Sweeper{svc: svc, interval: interval, logger: logger}
}

// Run sweeps until ctx is cancelled. Intended to run under an errgroup next
// to the HTTP server.
func (s *Sweeper) Run(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("Starting timeout sweeper")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Timeout sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *Sweeper) sweepOnce(ctx context.Context) {
	events, err := s.svc.ListEvents(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Sweep failed to list events")
		return
	}

	for _, event := range events {
		expired, err := s.svc.ExpireOverdueSelections(ctx, event.ID)
		if err != nil {
			if apperrors.CodeOf(err) == apperrors.ErrCodeBusy {
				// An interactive operation holds the token; the next cycle
				// will pick this event up again.
				s.logger.Debug().Str("event_id", event.ID).Msg("Sweep skipped busy event")
				continue
			}
			s.logger.Error().Err(err).Str("event_id", event.ID).Msg("Sweep failed for event")
			continue
		}
		if expired > 0 {
			s.logger.Info().Str("event_id", event.ID).Int("expired", expired).Msg("Expired overdue selections")
		}
	}
}
