package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-lottery-backend/internal/features/lottery/models"
)

func TestSweeperExpiresOverdueSelections(t *testing.T) {
	f := newFixture(t)
	event := f.createEvent(t, 1, 0)
	f.join(t, event.ID, "a")

	_, err := f.svc.RunDraw(context.Background(), event.ID, 1, nil)
	require.NoError(t, err)

	f.clock.advance(48*time.Hour + time.Minute)

	sweeper := NewSweeper(f.svc, 5*time.Millisecond, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- sweeper.Run(ctx) }()

	require.Eventually(t, func() bool {
		entry, err := f.repo.GetEntry(context.Background(), event.ID, "a")
		return err == nil && entry.Status == models.StatusDeclined
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.Equal(t, context.Canceled, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}
