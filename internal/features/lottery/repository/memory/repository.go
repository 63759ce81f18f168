// Package memory provides an in-process Store used by tests and local
// development. It mirrors the optimistic-concurrency semantics of the redis
// implementation.
package memory

import (
	"context"
	"sort"
	"sync"

	"event-lottery-backend/internal/features/lottery/models"
	"event-lottery-backend/internal/features/lottery/repository"
)

type entryKey struct {
	eventID   string
	entrantID string
}

type memoryStore struct {
	mu      sync.RWMutex
	events  map[string]*models.Event
	entries map[entryKey]*models.WaitlistEntry
	draws   map[string][]*models.DrawRecord
}

func New() repository.Store {
	return &memoryStore{
		events:  make(map[string]*models.Event),
		entries: make(map[entryKey]*models.WaitlistEntry),
		draws:   make(map[string][]*models.DrawRecord),
	}
}

func cloneEvent(e *models.Event) *models.Event {
	c := *e
	if e.LocationCoords != nil {
		loc := *e.LocationCoords
		c.LocationCoords = &loc
	}
	return &c
}

func cloneEntry(e *models.WaitlistEntry) *models.WaitlistEntry {
	c := *e
	if e.Location != nil {
		loc := *e.Location
		c.Location = &loc
	}
	if e.ResponseDeadline != nil {
		d := *e.ResponseDeadline
		c.ResponseDeadline = &d
	}
	return &c
}

func cloneDraw(d *models.DrawRecord) *models.DrawRecord {
	c := *d
	c.SelectedIDs = append([]string(nil), d.SelectedIDs...)
	return &c
}

func (s *memoryStore) CreateEvent(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[event.ID]; ok {
		return repository.ErrEventExists
	}
	s.events[event.ID] = cloneEvent(event)
	return nil
}

func (s *memoryStore) GetEvent(_ context.Context, eventID string) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[eventID]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	return cloneEvent(event), nil
}

func (s *memoryStore) UpdateEvent(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[event.ID]; !ok {
		return repository.ErrEventNotFound
	}
	s.events[event.ID] = cloneEvent(event)
	return nil
}

func (s *memoryStore) ListEvents(_ context.Context) ([]*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]*models.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, cloneEvent(event))
	}
	sort.Slice(events, func(i, j int) bool { return events[i].CreatedAt.Before(events[j].CreatedAt) })
	return events, nil
}

func (s *memoryStore) CreateEntry(_ context.Context, entry *models.WaitlistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := entryKey{entry.EventID, entry.EntrantID}
	if _, ok := s.entries[key]; ok {
		return repository.ErrEntryExists
	}
	s.entries[key] = cloneEntry(entry)
	return nil
}

func (s *memoryStore) GetEntry(_ context.Context, eventID, entrantID string) (*models.WaitlistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[entryKey{eventID, entrantID}]
	if !ok {
		return nil, repository.ErrEntryNotFound
	}
	return cloneEntry(entry), nil
}

func (s *memoryStore) UpdateEntry(_ context.Context, entry *models.WaitlistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := entryKey{entry.EventID, entry.EntrantID}
	stored, ok := s.entries[key]
	if !ok {
		return repository.ErrEntryNotFound
	}
	if stored.Version != entry.Version {
		return repository.ErrVersionConflict
	}

	updated := cloneEntry(entry)
	updated.Version++
	s.entries[key] = updated
	entry.Version = updated.Version
	return nil
}

func (s *memoryStore) DeleteEntry(_ context.Context, eventID, entrantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := entryKey{eventID, entrantID}
	if _, ok := s.entries[key]; !ok {
		return repository.ErrEntryNotFound
	}
	delete(s.entries, key)
	return nil
}

func (s *memoryStore) ListEntries(_ context.Context, eventID string) ([]*models.WaitlistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*models.WaitlistEntry, 0)
	for key, entry := range s.entries {
		if key.eventID == eventID {
			entries = append(entries, cloneEntry(entry))
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].JoinedAt.Before(entries[j].JoinedAt) })
	return entries, nil
}

func (s *memoryStore) AppendDraw(_ context.Context, record *models.DrawRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draws[record.EventID] = append(s.draws[record.EventID], cloneDraw(record))
	return nil
}

func (s *memoryStore) ListDraws(_ context.Context, eventID string) ([]*models.DrawRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*models.DrawRecord, 0, len(s.draws[eventID]))
	for _, record := range s.draws[eventID] {
		records = append(records, cloneDraw(record))
	}
	return records, nil
}
