package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type sample struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type countingCollector struct {
	calls  map[string]int
	errors int
}

func (c *countingCollector) RedisCommand(command string, err error) {
	if c.calls == nil {
		c.calls = map[string]int{}
	}
	c.calls[command]++
	if err != nil {
		c.errors++
	}
}

func TestNilClientIsAlwaysEmpty(t *testing.T) {
	ctx := context.Background()
	c := NewCache[sample](nil, "item", time.Minute)

	if c.Enabled() {
		t.Fatal("cache without client should be disabled")
	}
	if err := c.Set(ctx, "1", &sample{ID: 1}); err != nil {
		t.Fatalf("Set should be a no-op, got %v", err)
	}
	if _, err := c.Get(ctx, "1"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
	var list []sample
	if err := c.GetArray(ctx, "popular", &list); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
	if err := c.Delete(ctx, "1", "2"); err != nil {
		t.Fatalf("Delete should be a no-op, got %v", err)
	}
}

func TestKey(t *testing.T) {
	if got := NewCache[sample](nil, "item", 0).Key("7"); got != "item:7" {
		t.Errorf("unexpected key %q", got)
	}
	if got := NewCache[sample](nil, "", 0).Key("7"); got != "7" {
		t.Errorf("unexpected key %q", got)
	}
}

func TestUnreachableRedisReportsErrors(t *testing.T) {
	rc := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rc.Close()

	collector := &countingCollector{}
	c := NewCacheWithMetrics[sample](rc, "item", time.Minute, collector)
	ctx := context.Background()

	if _, err := c.Get(ctx, "1"); err == nil || errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected connection error, got %v", err)
	}
	if err := c.Set(ctx, "1", &sample{ID: 1}); err == nil {
		t.Error("expected connection error from Set")
	}
	if collector.calls["get"] != 1 || collector.calls["set"] != 1 || collector.errors != 2 {
		t.Errorf("unexpected collector state %+v", collector)
	}
}
