package service

import (
	"context"
	"time"

	apperrors "event-lottery-backend/internal/common/errors"
	"event-lottery-backend/internal/features/lottery/models"
	"event-lottery-backend/internal/features/lottery/notify"
	"event-lottery-backend/internal/features/lottery/repository"
)

type Decision string

const (
	DecisionConfirm Decision = "confirm"
	DecisionDecline Decision = "decline"
)

// RespondToSelection applies a selected entrant's confirm or decline. A
// decline frees the seat and triggers exactly one single-seat backfill draw;
// the returned bool reports whether that backfill actually ran. Responses
// past the deadline are refused and left to the timeout sweep.
func (s *Service) RespondToSelection(ctx context.Context, eventID, entrantID string, decision Decision) (bool, error) {
	if decision != DecisionConfirm && decision != DecisionDecline {
		return false, apperrors.Newf(apperrors.ErrCodeValidation, "unknown decision %q", decision)
	}

	backfilled := false
	err := s.withEventLock(ctx, eventID, func() error {
		event, err := s.getEvent(ctx, eventID)
		if err != nil {
			return err
		}

		entry, err := s.repo.GetEntry(ctx, eventID, entrantID)
		if err == repository.ErrEntryNotFound {
			return apperrors.New(apperrors.ErrCodeNotFound, "no registration for this event")
		}
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to load entry")
		}
		if entry.Status != models.StatusSelected {
			return apperrors.Newf(apperrors.ErrCodeInvalidState, "entry is %s, only selected entries accept a response", entry.Status)
		}

		now := s.clock.Now()
		if entry.ResponseDeadline != nil && now.After(*entry.ResponseDeadline) {
			return apperrors.New(apperrors.ErrCodeDeadlineExpired, "response deadline has passed")
		}

		if decision == DecisionConfirm {
			entry.Status = models.StatusConfirmed
			entry.UpdatedAt = now
			if err := s.updateEntry(ctx, entry); err != nil {
				return err
			}

			event.SelectedCount--
			event.ConfirmedCount++
			event.UpdatedAt = now
			if err := s.repo.UpdateEvent(ctx, event); err != nil {
				return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to update event counters")
			}

			s.dispatch(event.ID, notify.KindConfirmed, []string{entrantID})
			s.logger.Info().Str("event_id", eventID).Str("entrant_id", entrantID).Msg("Selection confirmed")
			return nil
		}

		backfilled, err = s.declineLocked(ctx, event, entry, now)
		return err
	})
	return backfilled, err
}

// declineLocked commits the decline transition and then attempts the single
// backfill draw. The caller holds the event token. Timeouts share this path
// so an expiry behaves exactly like an explicit decline.
func (s *Service) declineLocked(ctx context.Context, event *models.Event, entry *models.WaitlistEntry, now time.Time) (bool, error) {
	entry.Status = models.StatusDeclined
	entry.UpdatedAt = now
	if err := s.updateEntry(ctx, entry); err != nil {
		return false, err
	}

	event.SelectedCount--
	event.UpdatedAt = now
	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return false, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to update event counters")
	}

	s.logger.Info().Str("event_id", event.ID).Str("entrant_id", entry.EntrantID).Msg("Selection declined")
	return s.backfillLocked(ctx, event)
}

// CancelEntry is the organizer's force-removal. It cancels an entry from any
// state the lifecycle allows — including Confirmed, which only this explicit
// administrative action may cancel — and releases any held seat. No backfill
// runs; the organizer draws manually for the freed seat.
func (s *Service) CancelEntry(ctx context.Context, eventID, entrantID string) error {
	return s.withEventLock(ctx, eventID, func() error {
		event, err := s.getEvent(ctx, eventID)
		if err != nil {
			return err
		}

		entry, err := s.repo.GetEntry(ctx, eventID, entrantID)
		if err == repository.ErrEntryNotFound {
			return apperrors.New(apperrors.ErrCodeNotFound, "no registration for this event")
		}
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to load entry")
		}
		if !models.CanTransition(entry.Status, models.StatusCancelled) {
			return apperrors.Newf(apperrors.ErrCodeInvalidState, "entry is already %s", entry.Status)
		}

		now := s.clock.Now()
		previous := entry.Status
		entry.Status = models.StatusCancelled
		entry.UpdatedAt = now
		if err := s.updateEntry(ctx, entry); err != nil {
			return err
		}

		switch previous {
		case models.StatusSelected:
			event.SelectedCount--
		case models.StatusConfirmed:
			event.ConfirmedCount--
		}
		event.UpdatedAt = now
		if err := s.repo.UpdateEvent(ctx, event); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to update event counters")
		}

		s.logger.Info().
			Str("event_id", eventID).
			Str("entrant_id", entrantID).
			Str("previous_status", string(previous)).
			Msg("Entry cancelled by organizer")
		return nil
	})
}

// PurgeEntry destroys a Cancelled or Declined entry record. This is the only
// path that deletes an entry; active entries must be cancelled first.
func (s *Service) PurgeEntry(ctx context.Context, eventID, entrantID string) error {
	return s.withEventLock(ctx, eventID, func() error {
		if _, err := s.getEvent(ctx, eventID); err != nil {
			return err
		}

		entry, err := s.repo.GetEntry(ctx, eventID, entrantID)
		if err == repository.ErrEntryNotFound {
			return apperrors.New(apperrors.ErrCodeNotFound, "no registration for this event")
		}
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to load entry")
		}
		if entry.Status.Active() {
			return apperrors.Newf(apperrors.ErrCodeInvalidState, "cannot purge an entry in status %s", entry.Status)
		}

		if err := s.repo.DeleteEntry(ctx, eventID, entrantID); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to delete entry")
		}

		s.logger.Info().Str("event_id", eventID).Str("entrant_id", entrantID).Msg("Entry purged")
		return nil
	})
}

// ExpireOverdueSelections declines every Selected entry whose deadline has
// passed, with the same backfill behavior as an explicit decline. It takes
// the same event token as interactive responses, so a deadline is processed
// at most once. Returns how many entries expired.
func (s *Service) ExpireOverdueSelections(ctx context.Context, eventID string) (int, error) {
	expired := 0
	err := s.withEventLock(ctx, eventID, func() error {
		event, err := s.getEvent(ctx, eventID)
		if err != nil {
			return err
		}

		entries, err := s.repo.ListEntries(ctx, eventID)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list entries")
		}

		now := s.clock.Now()
		for _, entry := range entries {
			if entry.Status != models.StatusSelected || entry.ResponseDeadline == nil {
				continue
			}
			if !now.After(*entry.ResponseDeadline) {
				continue
			}
			// Entries selected by an in-loop backfill have fresh deadlines
			// and are not revisited here.
			if _, err := s.declineLocked(ctx, event, entry, now); err != nil {
				return err
			}
			expired++
		}
		return nil
	})
	return expired, err
}
