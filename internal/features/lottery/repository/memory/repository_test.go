package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-lottery-backend/internal/features/lottery/models"
	"event-lottery-backend/internal/features/lottery/repository"
)

func TestEventLifecycle(t *testing.T) {
	store := New()
	ctx := context.Background()

	event := &models.Event{ID: "ev1", Name: "Meetup", Capacity: 3, CreatedAt: time.Now()}
	require.NoError(t, store.CreateEvent(ctx, event))
	assert.Equal(t, repository.ErrEventExists, store.CreateEvent(ctx, event))

	got, err := store.GetEvent(ctx, "ev1")
	require.NoError(t, err)
	assert.Equal(t, "Meetup", got.Name)

	_, err = store.GetEvent(ctx, "missing")
	assert.Equal(t, repository.ErrEventNotFound, err)

	got.SelectedCount = 2
	require.NoError(t, store.UpdateEvent(ctx, got))

	// The stored copy is isolated from later mutation of the argument.
	got.SelectedCount = 99
	fresh, err := store.GetEvent(ctx, "ev1")
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.SelectedCount)
}

func TestEntryVersioning(t *testing.T) {
	store := New()
	ctx := context.Background()

	entry := &models.WaitlistEntry{EventID: "ev1", EntrantID: "a", Status: models.StatusWaiting, JoinedAt: time.Now()}
	require.NoError(t, store.CreateEntry(ctx, entry))
	assert.Equal(t, repository.ErrEntryExists, store.CreateEntry(ctx, entry))

	first, err := store.GetEntry(ctx, "ev1", "a")
	require.NoError(t, err)
	second, err := store.GetEntry(ctx, "ev1", "a")
	require.NoError(t, err)

	first.Status = models.StatusSelected
	require.NoError(t, store.UpdateEntry(ctx, first))
	assert.Equal(t, int64(1), first.Version)

	// The second reader still holds version 0.
	second.Status = models.StatusCancelled
	assert.Equal(t, repository.ErrVersionConflict, store.UpdateEntry(ctx, second))

	stored, err := store.GetEntry(ctx, "ev1", "a")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSelected, stored.Status)
}

func TestListEntriesOrderedByJoinTime(t *testing.T) {
	store := New()
	ctx := context.Background()
	base := time.Now()

	for i, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.CreateEntry(ctx, &models.WaitlistEntry{
			EventID:   "ev1",
			EntrantID: id,
			Status:    models.StatusWaiting,
			JoinedAt:  base.Add(time.Duration(len("cab")-i) * time.Minute),
		}))
	}
	require.NoError(t, store.CreateEntry(ctx, &models.WaitlistEntry{
		EventID: "other", EntrantID: "x", Status: models.StatusWaiting, JoinedAt: base,
	}))

	entries, err := store.ListEntries(ctx, "ev1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "b", entries[0].EntrantID)
	assert.Equal(t, "a", entries[1].EntrantID)
	assert.Equal(t, "c", entries[2].EntrantID)
}

func TestDeleteEntry(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.CreateEntry(ctx, &models.WaitlistEntry{EventID: "ev1", EntrantID: "a"}))
	require.NoError(t, store.DeleteEntry(ctx, "ev1", "a"))
	assert.Equal(t, repository.ErrEntryNotFound, store.DeleteEntry(ctx, "ev1", "a"))
}

func TestDrawRecordsAppendOnly(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.AppendDraw(ctx, &models.DrawRecord{ID: "d1", EventID: "ev1", SelectedIDs: []string{"a"}}))
	require.NoError(t, store.AppendDraw(ctx, &models.DrawRecord{ID: "d2", EventID: "ev1", Backfill: true}))

	records, err := store.ListDraws(ctx, "ev1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "d1", records[0].ID)
	assert.True(t, records[1].Backfill)
}
