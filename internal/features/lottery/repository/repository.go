package repository

import (
	"context"
	"errors"

	"event-lottery-backend/internal/features/lottery/models"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrEntryNotFound   = errors.New("waitlist entry not found")
	ErrEventExists     = errors.New("event already exists")
	ErrEntryExists     = errors.New("waitlist entry already exists")
	ErrVersionConflict = errors.New("entry version conflict")
)

// Store is the persistence boundary of the lottery core: events, waitlist
// entries keyed by (event, entrant), and the append-only draw audit log.
type Store interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	ListEvents(ctx context.Context) ([]*models.Event, error)

	CreateEntry(ctx context.Context, entry *models.WaitlistEntry) error
	GetEntry(ctx context.Context, eventID, entrantID string) (*models.WaitlistEntry, error)
	// UpdateEntry persists entry if the stored version still matches
	// entry.Version, then increments it. Returns ErrVersionConflict on a
	// lost update.
	UpdateEntry(ctx context.Context, entry *models.WaitlistEntry) error
	DeleteEntry(ctx context.Context, eventID, entrantID string) error
	ListEntries(ctx context.Context, eventID string) ([]*models.WaitlistEntry, error)

	AppendDraw(ctx context.Context, record *models.DrawRecord) error
	ListDraws(ctx context.Context, eventID string) ([]*models.DrawRecord, error)
}
