package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "/api/v1/items/:id", 200, 15*time.Millisecond)
	m.ObserveRequest("GET", "/api/v1/items/:id", 200, 5*time.Millisecond)
	m.ObserveRequest("GET", "/api/v1/items/:id", 404, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/v1/items/:id", "200")); got != 2 {
		t.Errorf("expected 2 successful requests, got %v", got)
	}
	if got := testutil.CollectAndCount(m.duration); got != 1 {
		t.Errorf("expected one duration series, got %d", got)
	}
}

func TestRedisCommand(t *testing.T) {
	m := New()
	m.RedisCommand("get", nil)
	m.RedisCommand("get", errors.New("timeout"))

	if got := testutil.ToFloat64(m.cacheCommands.WithLabelValues("get", "error")); got != 1 {
		t.Errorf("expected one failed get, got %v", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveRequest("POST", "/api/v1/items", 201, time.Millisecond)
	m.RegisterLogDrops("app", func() int64 { return 3 })
	m.RegisterLogDrops("app", func() int64 { return 99 })
	m.RegisterLogDrops("api", func() int64 { return 1 })

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	for _, want := range []string{
		`http_requests_total{method="POST",path="/api/v1/items",status="201"} 1`,
		`log_records_dropped_total{source="app"} 3`,
		`log_records_dropped_total{source="api"} 1`,
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
