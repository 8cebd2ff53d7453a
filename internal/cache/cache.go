package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Snapshots is a best-effort cache for computed catalogue payloads. The
// pipeline recomputes everything from scratch per request, so the cache
// only trades staleness for latency: entries expire after the configured
// stale time and are simply rebuilt on the next miss. A nil *Snapshots
// is valid and caches nothing, which is how the service runs when no
// redis is configured.
type Snapshots struct {
	client    *redis.Client
	staleTime time.Duration
}

// New connects to redis and verifies the connection with a ping.
func New(url string, staleTime time.Duration) (*Snapshots, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &Snapshots{client: client, staleTime: staleTime}, nil
}

// Get returns the cached payload for key, or ok=false on a miss or any
// redis error. Errors are deliberately indistinguishable from misses:
// the caller recomputes either way.
func (s *Snapshots) Get(ctx context.Context, key string) ([]byte, bool) {
	if s == nil {
		return nil, false
	}
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a payload under key for the stale time. Failures are
// returned so callers can log them, but nothing depends on success.
func (s *Snapshots) Set(ctx context.Context, key string, payload []byte) error {
	if s == nil {
		return nil
	}
	return s.client.Set(ctx, key, payload, s.staleTime).Err()
}

// Invalidate drops one key.
func (s *Snapshots) Invalidate(ctx context.Context, key string) error {
	if s == nil {
		return nil
	}
	return s.client.Del(ctx, key).Err()
}

// Close releases the underlying client.
func (s *Snapshots) Close() error {
	if s == nil {
		return nil
	}
	return s.client.Close()
}
