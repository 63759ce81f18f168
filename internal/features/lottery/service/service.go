// Package service orchestrates the lottery core: the waitlist registry, the
// draw engine and the response tracker, all behind a per-event serialization
// token. It is the sole entry point for external callers.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	apperrors "event-lottery-backend/internal/common/errors"
	"event-lottery-backend/internal/features/lottery/models"
	"event-lottery-backend/internal/features/lottery/notify"
	"event-lottery-backend/internal/features/lottery/repository"
)

const (
	defaultResponseWindow = 48 * time.Hour
	defaultLockWait       = 3 * time.Second
)

type Options struct {
	// ResponseWindow is how long a selected entrant has to respond.
	ResponseWindow time.Duration
	// LockWait bounds how long an operation waits for the event token.
	LockWait time.Duration
}

type Service struct {
	repo       repository.Store
	dispatcher notify.Dispatcher
	profiles   EligibilitySource
	clock      Clock
	locks      *lockTable
	logger     zerolog.Logger

	responseWindow time.Duration
	lockWait       time.Duration
}

// New builds the allocation service. profiles may be nil when join requests
// always carry an explicit location.
func New(repo repository.Store, dispatcher notify.Dispatcher, profiles EligibilitySource, clock Clock, logger zerolog.Logger, opts Options) *Service {
	if opts.ResponseWindow <= 0 {
		opts.ResponseWindow = defaultResponseWindow
	}
	if opts.LockWait <= 0 {
		opts.LockWait = defaultLockWait
	}
	return &Service{
		repo:           repo,
		dispatcher:     dispatcher,
		profiles:       profiles,
		clock:          clock,
		locks:          newLockTable(),
		logger:         logger,
		responseWindow: opts.ResponseWindow,
		lockWait:       opts.LockWait,
	}
}

// withEventLock runs fn holding the event's serialization token, translating
// a timed-out wait into the Busy error kind.
func (s *Service) withEventLock(ctx context.Context, eventID string, fn func() error) error {
	release, err := s.locks.acquire(ctx, eventID, s.lockWait)
	if err != nil {
		if err == errLockTimeout {
			return apperrors.New(apperrors.ErrCodeBusy, "event is busy, retry shortly").
				WithDetail("event_id", eventID)
		}
		return apperrors.Wrap(err, apperrors.ErrCodeBusy, "event lock wait interrupted")
	}
	defer release()
	return fn()
}

func (s *Service) getEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := s.repo.GetEvent(ctx, eventID)
	if err == repository.ErrEventNotFound {
		return nil, apperrors.Newf(apperrors.ErrCodeNotFound, "event %s not found", eventID)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to load event")
	}
	return event, nil
}

type CreateEventInput struct {
	Name                string
	Description         string
	Capacity            int
	WaitingListLimit    int
	RegistrationOpen    time.Time
	RegistrationClose   time.Time
	GeolocationRequired bool
	RadiusRestrictionKm float64
	LocationCoords      *models.LatLng
}

func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (*models.Event, error) {
	if input.Capacity <= 0 {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "capacity must be positive")
	}
	if input.WaitingListLimit < 0 {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "waiting list limit must not be negative")
	}
	if input.RegistrationOpen.After(input.RegistrationClose) {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "registration open must not be after close")
	}
	if input.RadiusRestrictionKm < 0 {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "radius restriction must not be negative")
	}
	if input.RadiusRestrictionKm > 0 && input.LocationCoords == nil {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "radius restriction requires event coordinates")
	}

	now := s.clock.Now()
	event := &models.Event{
		ID:                  uuid.New().String(),
		Name:                input.Name,
		Description:         input.Description,
		Capacity:            input.Capacity,
		WaitingListLimit:    input.WaitingListLimit,
		RegistrationOpen:    input.RegistrationOpen,
		RegistrationClose:   input.RegistrationClose,
		GeolocationRequired: input.GeolocationRequired,
		RadiusRestrictionKm: input.RadiusRestrictionKm,
		LocationCoords:      input.LocationCoords,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create event")
	}

	s.logger.Info().Str("event_id", event.ID).Int("capacity", event.Capacity).Msg("Event created")
	return event, nil
}

func (s *Service) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	return s.getEvent(ctx, eventID)
}

func (s *Service) ListEvents(ctx context.Context) ([]*models.Event, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list events")
	}
	return events, nil
}

// ListEntries returns the event's entries, optionally filtered by status,
// ordered by join time. Read-only; runs without the event token.
func (s *Service) ListEntries(ctx context.Context, eventID string, status models.EntryStatus) ([]*models.WaitlistEntry, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.Newf(apperrors.ErrCodeValidation, "unknown status %q", status)
	}
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListEntries(ctx, eventID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list entries")
	}
	if status == "" {
		return entries, nil
	}

	filtered := entries[:0]
	for _, entry := range entries {
		if entry.Status == status {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

// ListDraws returns the append-only draw audit records for an event.
func (s *Service) ListDraws(ctx context.Context, eventID string) ([]*models.DrawRecord, error) {
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return nil, err
	}
	records, err := s.repo.ListDraws(ctx, eventID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list draws")
	}
	return records, nil
}

// GetEventCounts returns the counter view. Lock-free by design; concurrent
// writers may make it momentarily stale.
func (s *Service) GetEventCounts(ctx context.Context, eventID string) (*models.EventCounts, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.ListEntries(ctx, eventID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list entries")
	}

	waiting := 0
	for _, entry := range entries {
		if entry.Status == models.StatusWaiting {
			waiting++
		}
	}

	return &models.EventCounts{
		Waiting:           waiting,
		Selected:          event.SelectedCount,
		Confirmed:         event.ConfirmedCount,
		CapacityRemaining: event.SpotsRemaining(),
	}, nil
}

// dispatch fans notifications out to the delivery system without blocking the
// allocation path.
func (s *Service) dispatch(eventID string, kind notify.Kind, entrantIDs []string) {
	if s.dispatcher == nil || len(entrantIDs) == 0 {
		return
	}
	sentAt := s.clock.Now()
	go func() {
		for _, entrantID := range entrantIDs {
			s.dispatcher.Notify(context.Background(), notify.Notification{
				EntrantID: entrantID,
				EventID:   eventID,
				Kind:      kind,
				SentAt:    sentAt,
			})
		}
	}()
}
