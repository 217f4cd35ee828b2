package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/monoapi/data/model"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/sony/gobreaker"
)

const (
	maxLoggedBody   = 4 << 10
	maxParsedBody   = 64 << 10
	apiLogQueueSize = 1024
	apiLogTimeout   = 5 * time.Second
)

// skipAPILog lists paths that are never persisted.
var skipAPILog = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// APILogWriter persists one API log row.
type APILogWriter func(ctx context.Context, l *model.APILog) error

// APILogger records handled requests in the logs database. Rows are written
// by a background worker behind a circuit breaker; when the queue is full or
// the breaker is open they are dropped and counted.
type APILogger struct {
	write   APILogWriter
	mask    *logger.Desensitizer
	breaker *gobreaker.CircuitBreaker

	mu      sync.RWMutex
	closed  bool
	queue   chan *model.APILog
	wg      sync.WaitGroup
	dropped atomic.Int64
}

// NewAPILogger starts the writer worker. Call Close to flush it.
func NewAPILogger(write APILogWriter, l *logger.Logger) *APILogger {
	a := &APILogger{
		write: write,
		mask:  logger.NewDesensitizer(nil),
		queue: make(chan *model.APILog, apiLogQueueSize),
	}
	a.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "api-log",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			// stays below the database hook level
			l.Infof(context.Background(), "circuit breaker %s: %s -> %s", name, from, to)
		},
	})
	a.wg.Add(1)
	go a.run()
	return a
}

// Handler returns the middleware.
func (a *APILogger) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipAPILog[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		reqBody := readBody(c.Request)
		w := &captureWriter{ResponseWriter: c.Writer, limit: maxLoggedBody}
		c.Writer = w

		c.Next()

		row := &model.APILog{
			Method:       c.Request.Method,
			Endpoint:     truncate(c.Request.URL.RequestURI(), 500),
			StatusCode:   c.Writer.Status(),
			ResponseTime: int(time.Since(start).Milliseconds()),
			IPAddress:    optional(c.ClientIP(), 45),
			UserAgent:    optional(c.Request.UserAgent(), 500),
		}
		if len(reqBody) > 0 {
			row.RequestBody = optional(a.mask.DesensitizeJSON(reqBody), maxLoggedBody)
		}
		if row.StatusCode >= http.StatusBadRequest && w.body.Len() > 0 {
			row.ResponseBody = optional(w.body.String(), maxLoggedBody)
		}
		a.enqueue(row)
	}
}

func (a *APILogger) enqueue(row *model.APILog) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return
	}
	select {
	case a.queue <- row:
	default:
		a.dropped.Add(1)
	}
}

func (a *APILogger) run() {
	defer a.wg.Done()
	for row := range a.queue {
		_, err := a.breaker.Execute(func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), apiLogTimeout)
			defer cancel()
			return nil, a.write(ctx, row)
		})
		if err != nil {
			a.dropped.Add(1)
		}
	}
}

// Dropped returns how many rows were discarded.
func (a *APILogger) Dropped() int64 {
	return a.dropped.Load()
}

// Close flushes queued rows and stops the worker.
func (a *APILogger) Close() {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()
	a.wg.Wait()
}

// readBody returns a valid JSON body and restores it for the handler. Other
// bodies are not logged since they cannot be masked. At most maxParsedBody+1
// bytes are buffered; a larger body is handed on unread past that point.
func readBody(r *http.Request) []byte {
	if r.Body == nil || !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return nil
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxParsedBody+1))
	r.Body = &replayBody{Reader: io.MultiReader(bytes.NewReader(raw), r.Body), Closer: r.Body}
	if err != nil || len(raw) > maxParsedBody || !json.Valid(raw) {
		return nil
	}
	return raw
}

// replayBody prepends already read bytes and keeps the original closer.
type replayBody struct {
	io.Reader
	io.Closer
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func optional(s string, n int) *string {
	if s == "" {
		return nil
	}
	s = truncate(s, n)
	return &s
}
