package service

import (
	"context"

	"github.com/google/uuid"

	apperrors "event-lottery-backend/internal/common/errors"
	"event-lottery-backend/internal/features/lottery/draw"
	"event-lottery-backend/internal/features/lottery/models"
	"event-lottery-backend/internal/features/lottery/notify"
)

// RunDraw selects up to requestedCount waiting entrants at random, bounded by
// the event's remaining capacity. Passing a seed replays a deterministic
// draw; otherwise a fresh seed is derived. Either way the seed lands in the
// audit record.
func (s *Service) RunDraw(ctx context.Context, eventID string, requestedCount int, seed *int64) (*models.DrawRecord, error) {
	if requestedCount < 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidDrawCount, "draw count must not be negative")
	}

	var record *models.DrawRecord
	err := s.withEventLock(ctx, eventID, func() error {
		event, err := s.getEvent(ctx, eventID)
		if err != nil {
			return err
		}
		record, err = s.runDrawLocked(ctx, event, requestedCount, seed, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// runDrawLocked performs one draw against the event's waiting pool. The
// caller must hold the event token. Zero-length draws are still recorded in
// the audit log.
func (s *Service) runDrawLocked(ctx context.Context, event *models.Event, requestedCount int, seed *int64, backfill bool) (*models.DrawRecord, error) {
	now := s.clock.Now()

	remaining := event.SpotsRemaining()
	if remaining < 0 {
		// Counters can only get here through a logic defect.
		return nil, apperrors.New(apperrors.ErrCodeCapacityExceeded, "event is oversubscribed").
			WithDetail("capacity", event.Capacity).
			WithDetail("selected", event.SelectedCount).
			WithDetail("confirmed", event.ConfirmedCount)
	}

	count := requestedCount
	if count > remaining {
		count = remaining
	}

	entries, err := s.repo.ListEntries(ctx, event.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list entries")
	}

	// The pool keeps joinedAt order for the audit trail; the engine samples
	// uniformly regardless of position.
	byID := make(map[string]*models.WaitlistEntry, len(entries))
	pool := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Status == models.StatusWaiting {
			byID[entry.EntrantID] = entry
			pool = append(pool, entry.EntrantID)
		}
	}

	seedValue := draw.NewSeed()
	if seed != nil {
		seedValue = *seed
	}

	chosen, err := draw.Select(pool, count, draw.NewRand(seedValue))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInvalidDrawCount, "draw rejected")
	}

	if event.SelectedCount+event.ConfirmedCount+len(chosen) > event.Capacity {
		return nil, apperrors.New(apperrors.ErrCodeCapacityExceeded, "draw would oversubscribe the event")
	}

	deadline := now.Add(s.responseWindow)
	for _, entrantID := range chosen {
		entry := byID[entrantID]
		entry.Status = models.StatusSelected
		entry.ResponseDeadline = &deadline
		entry.UpdatedAt = now
		if err := s.updateEntry(ctx, entry); err != nil {
			return nil, err
		}
	}

	event.SelectedCount += len(chosen)
	event.DrawCount++
	event.UpdatedAt = now
	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to update event counters")
	}

	record := &models.DrawRecord{
		ID:             uuid.New().String(),
		EventID:        event.ID,
		Seed:           seedValue,
		RequestedCount: requestedCount,
		SelectedIDs:    chosen,
		Backfill:       backfill,
		CreatedAt:      now,
	}
	if err := s.repo.AppendDraw(ctx, record); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to append draw record")
	}

	kind := notify.KindSelected
	if backfill {
		kind = notify.KindBackfillSelected
	}
	s.dispatch(event.ID, kind, chosen)

	// When the last seat is taken, entrants still waiting learn they were
	// not chosen this time.
	if event.SpotsRemaining() == 0 {
		notChosen := make([]string, 0, len(pool))
		for _, entrantID := range pool {
			if byID[entrantID].Status == models.StatusWaiting {
				notChosen = append(notChosen, entrantID)
			}
		}
		s.dispatch(event.ID, notify.KindNotSelected, notChosen)
	}

	s.logger.Info().
		Str("event_id", event.ID).
		Str("draw_id", record.ID).
		Int64("seed", seedValue).
		Int("requested", requestedCount).
		Int("selected", len(chosen)).
		Bool("backfill", backfill).
		Msg("Draw completed")

	return record, nil
}

// backfillLocked runs the single-seat draw that follows a decline. When the
// waiting pool is empty no draw happens and the event stays under-filled.
func (s *Service) backfillLocked(ctx context.Context, event *models.Event) (bool, error) {
	entries, err := s.repo.ListEntries(ctx, event.ID)
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list entries")
	}
	waiting := false
	for _, entry := range entries {
		if entry.Status == models.StatusWaiting {
			waiting = true
			break
		}
	}
	if !waiting || event.SpotsRemaining() < 1 {
		return false, nil
	}

	if _, err := s.runDrawLocked(ctx, event, 1, nil, true); err != nil {
		return false, err
	}
	return true, nil
}
