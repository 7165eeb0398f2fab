package mem

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"luminous/pkg/utils"
)

// ContentStore pins generated content under a key until it expires.
type ContentStore interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns the value for key if not expired. ok is false when the key
	// is missing or expired.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

type MemoryStore struct {
	mu    sync.RWMutex
	clock utils.Clock
	data  map[string]entry
}

func NewMemoryStore(clock utils.Clock) *MemoryStore {
	return &MemoryStore{
		clock: clock,
		data:  make(map[string]entry),
	}
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	// drop anything already expired so the map does not grow day over day
	for k, e := range s.data {
		if !now.Before(e.expiresAt) {
			delete(s.data, k)
		}
	}

	s.data[key] = entry{
		value:     append([]byte(nil), value...),
		expiresAt: now.Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || !s.clock.Now().Before(e.expiresAt) {
		return nil, false, nil
	}
	return append([]byte(nil), e.value...), true, nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, r.prefix+key, value, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}
