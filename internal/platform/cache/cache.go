package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyNamespace = "kokko:charts"

// Chart names prefix every cache key of their chart.
const (
	ShipmentCharts   = "shipments"
	PredictionCharts = "predictions"
)

// Cache is satisfied by Redis and Noop.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, chart string) error
}

var (
	_ Cache = (*Redis)(nil)
	_ Cache = Noop{}
)

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Redis stores JSON-encoded chart responses under a namespaced key.
type Redis struct {
	store cmdable
	raw   *redis.Client
	ttl   time.Duration
}

// NewRedis connects to url and verifies the connection.
func NewRedis(ctx context.Context, url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Redis{store: raw, raw: raw, ttl: ttl}, nil
}

func newWithStore(store cmdable, ttl time.Duration) *Redis {
	return &Redis{store: store, ttl: ttl}
}

func (r *Redis) key(k string) string {
	return keyNamespace + ":" + k
}

// Get decodes the cached value into dest and reports whether it was found.
func (r *Redis) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := r.store.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decoding cached value: %w", err)
	}
	return true, nil
}

// Set stores value for the configured TTL.
func (r *Redis) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding cache value: %w", err)
	}
	if err := r.store.Set(ctx, r.key(key), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate drops every cached variant of chart.
func (r *Redis) Invalidate(ctx context.Context, chart string) error {
	match := r.key(chart) + ":*"
	var cursor uint64
	for {
		keys, next, err := r.store.Scan(ctx, cursor, match, 100).Result()
		if err != nil {
			return fmt.Errorf("redis scan: %w", err)
		}
		if len(keys) > 0 {
			if err := r.store.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	if r.raw == nil {
		return nil
	}
	return r.raw.Close()
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, any) error         { return nil }
func (Noop) Invalidate(context.Context, string) error       { return nil }
