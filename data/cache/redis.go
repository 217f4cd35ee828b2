package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key does not exist or no redis
// client is configured.
var ErrCacheMiss = errors.New("cache miss")

// ICache defines a general caching interface
type ICache[T any] interface {
	Get(context.Context, string) (*T, error)
	Set(context.Context, string, *T, ...time.Duration) error
	Delete(context.Context, ...string) error
	GetArray(context.Context, string, any) error
	SetArray(context.Context, string, any, ...time.Duration) error
	Enabled() bool
}

// Collector observes redis commands.
type Collector interface {
	RedisCommand(command string, err error)
}

type noopCollector struct{}

func (noopCollector) RedisCommand(string, error) {}

// Cache stores JSON encoded values of T under "<prefix>:<field>". A Cache
// without a client behaves as an always-empty cache and never fails writes.
type Cache[T any] struct {
	rc        *redis.Client
	prefix    string
	ttl       time.Duration
	collector Collector
}

// NewCache creates a new Cache instance. ttl is the default expiration; zero
// keeps entries until they are deleted.
func NewCache[T any](rc *redis.Client, prefix string, ttl time.Duration) *Cache[T] {
	return &Cache[T]{rc: rc, prefix: prefix, ttl: ttl, collector: noopCollector{}}
}

// NewCacheWithMetrics creates a new Cache instance reporting to collector.
func NewCacheWithMetrics[T any](rc *redis.Client, prefix string, ttl time.Duration, collector Collector) *Cache[T] {
	c := NewCache[T](rc, prefix, ttl)
	if collector != nil {
		c.collector = collector
	}
	return c
}

// Enabled reports whether a redis client is configured.
func (c *Cache[T]) Enabled() bool {
	return c.rc != nil
}

// Key returns the redis key of field.
func (c *Cache[T]) Key(field string) string {
	if c.prefix == "" {
		return field
	}
	return fmt.Sprintf("%s:%s", c.prefix, field)
}

func (c *Cache[T]) expiration(expire []time.Duration) time.Duration {
	if len(expire) > 0 {
		return expire[0]
	}
	return c.ttl
}

// Get retrieves a single item from cache
func (c *Cache[T]) Get(ctx context.Context, field string) (*T, error) {
	if c.rc == nil {
		return nil, ErrCacheMiss
	}

	result, err := c.rc.Get(ctx, c.Key(field)).Bytes()
	c.collector.RedisCommand("get", err)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var row T
	if err = json.Unmarshal(result, &row); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache data: %w", err)
	}
	return &row, nil
}

// Set saves a single item into cache
func (c *Cache[T]) Set(ctx context.Context, field string, data *T, expire ...time.Duration) error {
	if c.rc == nil {
		return nil
	}

	bytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	err = c.rc.Set(ctx, c.Key(field), bytes, c.expiration(expire)).Err()
	c.collector.RedisCommand("set", err)
	if err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// GetArray decodes a cached list into dest.
func (c *Cache[T]) GetArray(ctx context.Context, field string, dest any) error {
	if c.rc == nil {
		return ErrCacheMiss
	}

	result, err := c.rc.Get(ctx, c.Key(field)).Bytes()
	c.collector.RedisCommand("get", err)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get cache: %w", err)
	}

	if err := json.Unmarshal(result, dest); err != nil {
		return fmt.Errorf("failed to unmarshal cache data: %w", err)
	}
	return nil
}

// SetArray caches a list value.
func (c *Cache[T]) SetArray(ctx context.Context, field string, data any, expire ...time.Duration) error {
	if c.rc == nil {
		return nil
	}

	bytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	err = c.rc.Set(ctx, c.Key(field), bytes, c.expiration(expire)).Err()
	c.collector.RedisCommand("set", err)
	if err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Delete removes the given fields.
func (c *Cache[T]) Delete(ctx context.Context, fields ...string) error {
	if c.rc == nil || len(fields) == 0 {
		return nil
	}

	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = c.Key(f)
	}

	err := c.rc.Del(ctx, keys...).Err()
	c.collector.RedisCommand("del", err)
	if err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}
