package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRemoveStale(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ms := NewMemoryStore(WithCleanupInterval(0), WithClock(func() time.Time { return now }))
	defer ms.Close()

	cfg := Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second}
	_, _, err := ms.Take(context.Background(), "old", 1, cfg)
	require.NoError(t, err)

	now = now.Add(staleAfter - time.Minute)
	_, _, err = ms.Take(context.Background(), "fresh", 1, cfg)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	ms.removeStale()

	assert.Equal(t, 1, ms.Len())
	_, ok := ms.buckets["fresh"]
	assert.True(t, ok)
}

func TestMemoryStoreCloseTwice(t *testing.T) {
	ms := NewMemoryStore(WithCleanupInterval(time.Millisecond))
	ms.Close()
	assert.NotPanics(t, ms.Close)
}
