package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryStatusActive(t *testing.T) {
	assert.True(t, StatusWaiting.Active())
	assert.True(t, StatusSelected.Active())
	assert.True(t, StatusConfirmed.Active())
	assert.False(t, StatusDeclined.Active())
	assert.False(t, StatusCancelled.Active())
	assert.False(t, EntryStatus("").Active())
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to EntryStatus }{
		{StatusWaiting, StatusSelected},
		{StatusWaiting, StatusCancelled},
		{StatusSelected, StatusConfirmed},
		{StatusSelected, StatusDeclined},
		{StatusSelected, StatusCancelled},
		{StatusConfirmed, StatusCancelled},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}

	denied := []struct{ from, to EntryStatus }{
		{StatusWaiting, StatusConfirmed},
		{StatusWaiting, StatusDeclined},
		{StatusConfirmed, StatusSelected},
		{StatusConfirmed, StatusWaiting},
		{StatusDeclined, StatusSelected},
		{StatusCancelled, StatusWaiting},
	}
	for _, tr := range denied {
		assert.False(t, CanTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}
}

func TestEventSpotsRemaining(t *testing.T) {
	e := &Event{Capacity: 5, SelectedCount: 2, ConfirmedCount: 1}
	assert.Equal(t, 2, e.SpotsRemaining())
}
