// Package redis implements the lottery Store on Redis. Events and entries are
// stored as JSON values, the waiting list as a per-event hash keyed by entrant
// id, and the draw audit log as an append-only list.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"event-lottery-backend/internal/features/lottery/models"
	"event-lottery-backend/internal/features/lottery/repository"
	platformredis "event-lottery-backend/internal/platform/redis"
)

const (
	keyPrefixEvent   = "lottery:event:"
	keyPrefixEntries = "lottery:entries:"
	keyPrefixDraws   = "lottery:draws:"
	keyEventIndex    = "lottery:events"
)

type redisStore struct {
	client *platformredis.Client
}

func New(client *platformredis.Client) repository.Store {
	return &redisStore{client: client}
}

func makeEventKey(eventID string) string {
	return keyPrefixEvent + eventID
}

func makeEntriesKey(eventID string) string {
	return keyPrefixEntries + eventID
}

func makeDrawsKey(eventID string) string {
	return keyPrefixDraws + eventID
}

func (s *redisStore) CreateEvent(ctx context.Context, event *models.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ok, err := s.client.SetNX(ctx, makeEventKey(event.ID), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrEventExists
	}

	return s.client.SAdd(ctx, keyEventIndex, event.ID).Err()
}

func (s *redisStore) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	data, err := s.client.Get(ctx, makeEventKey(eventID)).Bytes()
	if err == redis.Nil {
		return nil, repository.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}

	var event models.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *redisStore) UpdateEvent(ctx context.Context, event *models.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ok, err := s.client.SetXX(ctx, makeEventKey(event.ID), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrEventNotFound
	}
	return nil
}

func (s *redisStore) ListEvents(ctx context.Context) ([]*models.Event, error) {
	ids, err := s.client.SMembers(ctx, keyEventIndex).Result()
	if err != nil {
		return nil, err
	}

	events := make([]*models.Event, 0, len(ids))
	for _, id := range ids {
		event, err := s.GetEvent(ctx, id)
		if err == repository.ErrEventNotFound {
			// Index entry without a value; skip rather than fail the listing.
			continue
		}
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].CreatedAt.Before(events[j].CreatedAt) })
	return events, nil
}

func (s *redisStore) CreateEntry(ctx context.Context, entry *models.WaitlistEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	ok, err := s.client.HSetNX(ctx, makeEntriesKey(entry.EventID), entry.EntrantID, data).Result()
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrEntryExists
	}
	return nil
}

func (s *redisStore) GetEntry(ctx context.Context, eventID, entrantID string) (*models.WaitlistEntry, error) {
	data, err := s.client.HGet(ctx, makeEntriesKey(eventID), entrantID).Bytes()
	if err == redis.Nil {
		return nil, repository.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	var entry models.WaitlistEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry writes the entry inside a WATCH transaction so a concurrent
// writer with a stale version loses instead of silently overwriting.
func (s *redisStore) UpdateEntry(ctx context.Context, entry *models.WaitlistEntry) error {
	key := makeEntriesKey(entry.EventID)

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.HGet(ctx, key, entry.EntrantID).Bytes()
		if err == redis.Nil {
			return repository.ErrEntryNotFound
		}
		if err != nil {
			return err
		}

		var stored models.WaitlistEntry
		if err := json.Unmarshal(data, &stored); err != nil {
			return err
		}
		if stored.Version != entry.Version {
			return repository.ErrVersionConflict
		}

		updated := *entry
		updated.Version++
		payload, err := json.Marshal(&updated)
		if err != nil {
			return fmt.Errorf("failed to marshal entry: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, entry.EntrantID, payload)
			return nil
		})
		if err != nil {
			return err
		}

		entry.Version = updated.Version
		return nil
	}, key)

	if err == redis.TxFailedErr {
		return repository.ErrVersionConflict
	}
	return err
}

func (s *redisStore) DeleteEntry(ctx context.Context, eventID, entrantID string) error {
	removed, err := s.client.HDel(ctx, makeEntriesKey(eventID), entrantID).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return repository.ErrEntryNotFound
	}
	return nil
}

func (s *redisStore) ListEntries(ctx context.Context, eventID string) ([]*models.WaitlistEntry, error) {
	values, err := s.client.HGetAll(ctx, makeEntriesKey(eventID)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]*models.WaitlistEntry, 0, len(values))
	for _, data := range values {
		var entry models.WaitlistEntry
		if err := json.Unmarshal([]byte(data), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].JoinedAt.Before(entries[j].JoinedAt) })
	return entries, nil
}

func (s *redisStore) AppendDraw(ctx context.Context, record *models.DrawRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal draw record: %w", err)
	}
	return s.client.RPush(ctx, makeDrawsKey(record.EventID), data).Err()
}

func (s *redisStore) ListDraws(ctx context.Context, eventID string) ([]*models.DrawRecord, error) {
	values, err := s.client.LRange(ctx, makeDrawsKey(eventID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*models.DrawRecord, 0, len(values))
	for _, data := range values {
		var record models.DrawRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, nil
}
