package service

import (
	"context"

	apperrors "event-lottery-backend/internal/common/errors"
	"event-lottery-backend/internal/features/lottery/geo"
	"event-lottery-backend/internal/features/lottery/models"
	"event-lottery-backend/internal/features/lottery/repository"
)

// resolveEntrant builds the eligibility view of an entrant. An explicit
// location on the join request wins; otherwise the profile subsystem is
// consulted when available.
func (s *Service) resolveEntrant(ctx context.Context, entrantID string, location *models.LatLng) models.Entrant {
	entrant := models.Entrant{ID: entrantID}
	if location != nil {
		entrant.GeolocationEnabled = true
		entrant.CurrentLocation = location
		return entrant
	}
	if s.profiles == nil {
		return entrant
	}

	current, enabled, err := s.profiles.CurrentLocation(ctx, entrantID)
	if err != nil {
		s.logger.Warn().Err(err).Str("entrant_id", entrantID).Msg("Eligibility source lookup failed")
		return entrant
	}
	entrant.GeolocationEnabled = enabled
	entrant.CurrentLocation = current
	return entrant
}

// JoinWaitlist registers an entrant on an event's waiting list. Eligibility
// is checked here and only here; the entrant's location is snapshotted on the
// entry and never re-evaluated at draw time.
func (s *Service) JoinWaitlist(ctx context.Context, eventID, entrantID string, location *models.LatLng) error {
	if eventID == "" || entrantID == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "event id and entrant id are required")
	}

	return s.withEventLock(ctx, eventID, func() error {
		event, err := s.getEvent(ctx, eventID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		if !event.RegistrationOpenAt(now) {
			return apperrors.New(apperrors.ErrCodeRegistrationClosed, "registration window is closed").
				WithDetail("registration_open", event.RegistrationOpen).
				WithDetail("registration_close", event.RegistrationClose)
		}

		entrant := s.resolveEntrant(ctx, entrantID, location)
		if !geo.IsEligible(event, &entrant) {
			return apperrors.New(apperrors.ErrCodeIneligible, "entrant does not meet the event's geolocation requirements")
		}

		existing, err := s.repo.GetEntry(ctx, eventID, entrantID)
		if err != nil && err != repository.ErrEntryNotFound {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to load entry")
		}
		if existing != nil && existing.Status.Active() {
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "entrant is already on the waiting list")
		}

		if event.WaitingListLimit > 0 {
			entries, err := s.repo.ListEntries(ctx, eventID)
			if err != nil {
				return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list entries")
			}
			waiting := 0
			for _, e := range entries {
				if e.Status == models.StatusWaiting {
					waiting++
				}
			}
			if waiting >= event.WaitingListLimit {
				return apperrors.New(apperrors.ErrCodeWaitlistFull, "waiting list is full").
					WithDetail("waiting_list_limit", event.WaitingListLimit)
			}
		}

		if existing != nil {
			// Re-registration after a cancel or decline reuses the record so
			// the (event, entrant) key stays unique.
			existing.Status = models.StatusWaiting
			existing.JoinedAt = now
			existing.Location = entrant.CurrentLocation
			existing.ResponseDeadline = nil
			existing.UpdatedAt = now
			if err := s.updateEntry(ctx, existing); err != nil {
				return err
			}
		} else {
			entry := &models.WaitlistEntry{
				EventID:   eventID,
				EntrantID: entrantID,
				Status:    models.StatusWaiting,
				JoinedAt:  now,
				Location:  entrant.CurrentLocation,
				UpdatedAt: now,
			}
			if err := s.repo.CreateEntry(ctx, entry); err != nil {
				return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create entry")
			}
		}

		s.logger.Debug().Str("event_id", eventID).Str("entrant_id", entrantID).Msg("Entrant joined waiting list")
		return nil
	})
}

// LeaveWaitlist cancels an entrant's own Waiting entry. Selected or Confirmed
// entrants must go through RespondToSelection instead. A repeated leave
// reports NotFound rather than failing hard.
func (s *Service) LeaveWaitlist(ctx context.Context, eventID, entrantID string) error {
	return s.withEventLock(ctx, eventID, func() error {
		if _, err := s.getEvent(ctx, eventID); err != nil {
			return err
		}

		entry, err := s.repo.GetEntry(ctx, eventID, entrantID)
		if err == repository.ErrEntryNotFound {
			return apperrors.New(apperrors.ErrCodeNotFound, "no active registration for this event")
		}
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to load entry")
		}
		if !entry.Status.Active() {
			return apperrors.New(apperrors.ErrCodeNotFound, "no active registration for this event")
		}
		if entry.Status != models.StatusWaiting {
			return apperrors.Newf(apperrors.ErrCodeInvalidState, "cannot leave in status %s, respond to the selection instead", entry.Status)
		}

		entry.Status = models.StatusCancelled
		entry.UpdatedAt = s.clock.Now()
		if err := s.updateEntry(ctx, entry); err != nil {
			return err
		}

		s.logger.Debug().Str("event_id", eventID).Str("entrant_id", entrantID).Msg("Entrant left waiting list")
		return nil
	})
}

// updateEntry persists an entry mutation, surfacing an optimistic-concurrency
// conflict as Busy so the caller retries.
func (s *Service) updateEntry(ctx context.Context, entry *models.WaitlistEntry) error {
	err := s.repo.UpdateEntry(ctx, entry)
	if err == repository.ErrVersionConflict {
		return apperrors.New(apperrors.ErrCodeBusy, "entry was modified concurrently, retry")
	}
	if err == repository.ErrEntryNotFound {
		return apperrors.New(apperrors.ErrCodeNotFound, "entry no longer exists")
	}
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to update entry")
	}
	return nil
}
