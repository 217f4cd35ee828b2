package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/monoapi/config"
	"github.com/ncobase/monoapi/data"
	_ "github.com/ncobase/monoapi/data/sqlite"
	"github.com/ncobase/monoapi/internal/handler"
	"github.com/ncobase/monoapi/internal/service"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/metrics"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
	data   *data.Data
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := logger.NewLogger()
	l.SetOutput(io.Discard)

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

	m := metrics.New()
	h := handler.NewHandler(service.NewService(d, nil, m, l), d, m, l)

	r := gin.New()
	h.RegisterRoutes(r, "/api/v1")
	return &testServer{t: t, router: r, data: d}
}

// do sends a request and returns the recorder. body is JSON encoded unless it
// is already a string.
func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type page struct {
	Items      []map[string]any `json:"items"`
	NextCursor *string          `json:"next_cursor"`
}

type envelope struct {
	Status    string           `json:"status"`
	Message   string           `json:"message"`
	ErrorCode string           `json:"error_code"`
	Data      map[string]any   `json:"data"`
	Details   []map[string]any `json:"details"`
}

func TestSystemEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	root := decode[map[string]any](t, w)
	require.Equal(t, "v1", root["version"])
	require.Equal(t, []any{"main", "analytics", "logs"}, root["databases"])

	w = s.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[map[string]any](t, w)
	require.Equal(t, "healthy", health["status"])
	require.Contains(t, health["databases"], "analytics")

	s.do(http.MethodGet, "/api/v1/items", nil)
	w = s.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "go_goroutines")
}

func TestHealthDegraded(t *testing.T) {
	s := newTestServer(t)
	sqlDB, err := s.data.Logs.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := s.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, "degraded", decode[map[string]any](t, w)["status"])
}
