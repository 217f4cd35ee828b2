package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/ncobase/monoapi/config"
	"github.com/ncobase/monoapi/data"
	"github.com/ncobase/monoapi/data/cache"
	_ "github.com/ncobase/monoapi/data/sqlite"
	"github.com/ncobase/monoapi/internal/service"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/stretchr/testify/require"
)

func newTestData(t *testing.T) (*data.Data, *logger.Logger, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	l := logger.NewLogger()
	l.SetOutput(&out)

	node := func(name string) *config.DBNode {
		return &config.DBNode{Name: name, Driver: "sqlite", Source: ":memory:"}
	}
	d, err := data.New(context.Background(), &config.Data{
		Database: &config.Database{
			Main:      node(data.MainDB),
			Analytics: node(data.AnalyticsDB),
			Logs:      node(data.LogsDB),
		},
	}, l)
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	require.NoError(t, d.Migrate(context.Background()))
	return d, l, &out
}

func newTestService(t *testing.T) (*service.Service, *data.Data, *bytes.Buffer) {
	t.Helper()
	d, l, out := newTestData(t)
	return service.NewService(d, nil, nil, l), d, out
}

func ptr[T any](v T) *T { return &v }

// memoryCache is an in-process cache.ICache used to observe cache traffic.
type memoryCache[T any] struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
	deletes int
}

var _ cache.ICache[int] = (*memoryCache[int])(nil)

func newMemoryCache[T any]() *memoryCache[T] {
	return &memoryCache[T]{entries: make(map[string][]byte)}
}

func (c *memoryCache[T]) Enabled() bool { return true }

func (c *memoryCache[T]) Get(_ context.Context, key string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	c.hits++
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *memoryCache[T]) Set(_ context.Context, key string, v *T, _ ...time.Duration) error {
	return c.put(key, v)
}

func (c *memoryCache[T]) GetArray(_ context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	c.hits++
	return json.Unmarshal(raw, dest)
}

func (c *memoryCache[T]) SetArray(_ context.Context, key string, v any, _ ...time.Duration) error {
	return c.put(key, v)
}

func (c *memoryCache[T]) put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = raw
	return nil
}

func (c *memoryCache[T]) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
		c.deletes++
	}
	return nil
}
