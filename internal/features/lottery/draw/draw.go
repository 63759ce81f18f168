// Package draw implements uniform random selection without replacement from a
// waiting pool. The randomness source is seeded by the caller so that every
// draw can be replayed from its audit record.
package draw

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	mrand "math/rand"
	"time"
)

// ErrNegativeCount is returned when the requested count is below zero.
var ErrNegativeCount = errors.New("draw count must not be negative")

// NewSeed derives a fresh seed for a draw. Seeds come from the OS entropy
// pool, with the clock as a fallback, and are recorded in the audit record.
func NewSeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.BigEndian.Uint64(b[:]) &^ (1 << 63))
}

// NewRand returns a deterministic source for the given seed. Each draw gets
// its own source; nothing here is shared mutable global state.
func NewRand(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}

// Select picks count ids from pool uniformly at random without replacement,
// via a partial Fisher-Yates shuffle. When count exceeds the pool size the
// entire pool is selected. The input slice is not modified.
func Select(pool []string, count int, rng *mrand.Rand) ([]string, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	if count > len(pool) {
		count = len(pool)
	}
	if count == 0 {
		return []string{}, nil
	}

	shuffled := make([]string, len(pool))
	copy(shuffled, pool)

	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:count], nil
}
