package draw

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pool(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("entrant-%d", i)
	}
	return ids
}

func TestSelectNegativeCount(t *testing.T) {
	_, err := Select(pool(5), -1, NewRand(1))
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestSelectZeroCount(t *testing.T) {
	chosen, err := Select(pool(5), 0, NewRand(1))
	require.NoError(t, err)
	assert.Empty(t, chosen)
}

func TestSelectCountExceedsPool(t *testing.T) {
	p := pool(3)
	chosen, err := Select(p, 10, NewRand(42))
	require.NoError(t, err)
	assert.Len(t, chosen, 3)
	assert.ElementsMatch(t, p, chosen)
}

func TestSelectSubsetWithoutReplacement(t *testing.T) {
	p := pool(20)
	chosen, err := Select(p, 7, NewRand(7))
	require.NoError(t, err)
	require.Len(t, chosen, 7)

	seen := make(map[string]bool)
	for _, id := range chosen {
		assert.False(t, seen[id], "id %s chosen twice", id)
		seen[id] = true
		assert.Contains(t, p, id)
	}
}

func TestSelectDeterministicForSeed(t *testing.T) {
	p := pool(50)

	first, err := Select(p, 10, NewRand(1234))
	require.NoError(t, err)
	second, err := Select(p, 10, NewRand(1234))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSelectDoesNotModifyPool(t *testing.T) {
	p := pool(10)
	before := make([]string, len(p))
	copy(before, p)

	_, err := Select(p, 5, NewRand(99))
	require.NoError(t, err)
	assert.Equal(t, before, p)
}

func TestSelectReachesEveryCandidate(t *testing.T) {
	// Over many seeded draws of one from four, every candidate should be
	// picked at least once. Not a distribution test, just a sanity check
	// that no position is structurally excluded.
	p := pool(4)
	hits := make(map[string]int)
	for seed := int64(0); seed < 400; seed++ {
		chosen, err := Select(p, 1, NewRand(seed))
		require.NoError(t, err)
		require.Len(t, chosen, 1)
		hits[chosen[0]]++
	}
	for _, id := range p {
		assert.Greater(t, hits[id], 0, "candidate %s never selected", id)
	}
}
