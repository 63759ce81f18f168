package service

import (
	"context"
	"errors"
	"sync"
	"time"
)

var errLockTimeout = errors.New("event lock wait timed out")

// lockTable hands out the per-event serialization token. Every state-mutating
// operation on an event holds its token for the full operation; acquisition
// waits a bounded time and then fails rather than deadlocking.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]chan struct{})}
}

// acquire blocks until the event token is free, the wait elapses, or ctx is
// done. On success the returned release function must be called on every exit
// path.
func (t *lockTable) acquire(ctx context.Context, eventID string, wait time.Duration) (func(), error) {
	t.mu.Lock()
	ch, ok := t.locks[eventID]
	if !ok {
		ch = make(chan struct{}, 1)
		t.locks[eventID] = ch
	}
	t.mu.Unlock()

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case ch <- struct{}{}:
		return func() { <-ch }, nil
	case <-timer.C:
		return nil, errLockTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
