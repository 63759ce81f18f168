package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "event-lottery-backend/internal/common/errors"
)

func TestLockTableSerializesPerEvent(t *testing.T) {
	table := newLockTable()
	ctx := context.Background()

	release, err := table.acquire(ctx, "ev1", 50*time.Millisecond)
	require.NoError(t, err)

	// Same event: the token is taken.
	_, err = table.acquire(ctx, "ev1", 20*time.Millisecond)
	assert.Equal(t, errLockTimeout, err)

	// Different event: independent token.
	release2, err := table.acquire(ctx, "ev2", 20*time.Millisecond)
	require.NoError(t, err)
	release2()

	release()

	release3, err := table.acquire(ctx, "ev1", 20*time.Millisecond)
	require.NoError(t, err)
	release3()
}

func TestLockTableRespectsContext(t *testing.T) {
	table := newLockTable()

	release, err := table.acquire(context.Background(), "ev1", time.Second)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = table.acquire(ctx, "ev1", time.Second)
	assert.Equal(t, context.Canceled, err)
}

func TestWithEventLockReportsBusy(t *testing.T) {
	f := newFixture(t)
	f.svc.lockWait = 20 * time.Millisecond

	release, err := f.svc.locks.acquire(context.Background(), "ev1", time.Second)
	require.NoError(t, err)
	defer release()

	err = f.svc.withEventLock(context.Background(), "ev1", func() error { return nil })
	assert.Equal(t, apperrors.ErrCodeBusy, apperrors.CodeOf(err))
}
