package mem

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"luminous/pkg/utils"
)

func TestMemoryStore_ExpiresWithClock(t *testing.T) {
	ctx := context.Background()
	clock := utils.NewManualClock(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	store := NewMemoryStore(clock)

	require.NoError(t, store.Set(ctx, "quote", []byte("hello"), time.Hour))

	got, ok, err := store.Get(ctx, "quote")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hello", string(got))

	clock.Advance(59 * time.Minute)
	_, ok, _ = store.Get(ctx, "quote")
	assert.True(t, ok)

	clock.Advance(time.Minute)
	_, ok, _ = store.Get(ctx, "quote")
	assert.False(t, ok)
}

func TestMemoryStore_MissingKey(t *testing.T) {
	store := NewMemoryStore(utils.NewManualClock(time.Now()))
	got, ok, err := store.Get(context.Background(), "nope")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestMemoryStore_SetPurgesExpired(t *testing.T) {
	ctx := context.Background()
	clock := utils.NewManualClock(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	store := NewMemoryStore(clock)

	require.NoError(t, store.Set(ctx, "day-1", []byte("a"), time.Hour))
	clock.Advance(2 * time.Hour)
	require.NoError(t, store.Set(ctx, "day-2", []byte("b"), time.Hour))

	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(utils.NewManualClock(time.Now()))

	value := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", value, time.Hour))
	value[0] = 'x'

	got, _, _ := store.Get(ctx, "k")
	assert.Equal(t, "abc", string(got))
}

// Runs only against a real server, e.g. TEST_REDIS_URL=redis://localhost:6379/15.
func TestRedisStore_RoundTrip(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	defer client.Close()

	ctx := context.Background()
	store := NewRedisStore(client, "luminous-test:")

	require.NoError(t, store.Set(ctx, "quote", []byte("pinned"), time.Minute))
	got, ok, err := store.Get(ctx, "quote")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pinned", string(got))

	_, ok, err = store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
