package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// ErrCacheMiss is returned by Get for absent or expired keys.
var ErrCacheMiss = errors.New("cache: key not found")

type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCacheRepository is the cache used when no Redis address is configured.
type MemoryCacheRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	clock   func() time.Time
}

func NewMemoryCacheRepository(clock func() time.Time) CacheRepositoryInterface {
	if clock == nil {
		clock = time.Now
	}
	return &MemoryCacheRepository{entries: make(map[string]memoryEntry), clock: clock}
}

// live returns the entry for key, dropping it when expired. Caller holds mu.
func (r *MemoryCacheRepository) live(key string) (memoryEntry, bool) {
	e, ok := r.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if !e.expiresAt.IsZero() && !r.clock().Before(e.expiresAt) {
		delete(r.entries, key)
		return memoryEntry{}, false
	}
	return e, true
}

func (r *MemoryCacheRepository) expiry(expiration time.Duration) time.Time {
	if expiration <= 0 {
		return time.Time{}
	}
	return r.clock().Add(expiration)
}

func (r *MemoryCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = memoryEntry{value: fmt.Sprint(value), expiresAt: r.expiry(expiration)}
	return nil
}

func (r *MemoryCacheRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.live(key)
	if !ok {
		return "", ErrCacheMiss
	}
	return e.value, nil
}

func (r *MemoryCacheRepository) Del(ctx context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.entries, k)
	}
	return nil
}

// Incr keeps the expiry of an existing key, like Redis INCR.
func (r *MemoryCacheRepository) Incr(ctx context.Context, key string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, _ := r.live(key)
	var n int64
	if e.value != "" {
		v, err := strconv.ParseInt(e.value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cache: value of %q is not an integer: %w", key, err)
		}
		n = v
	}
	n++
	e.value = strconv.FormatInt(n, 10)
	r.entries[key] = e
	return n, nil
}

func (r *MemoryCacheRepository) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.live(key)
	if !ok {
		return false, nil
	}
	e.expiresAt = r.expiry(expiration)
	r.entries[key] = e
	return true, nil
}
