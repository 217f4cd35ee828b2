package logger

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const loggerPackage = "github.com/ncobase/monoapi/logging/logger."

// Record is a log entry bound for the logs database.
type Record struct {
	Time       time.Time
	Level      string
	LoggerName string
	Message    string
	Module     string
	Function   string
	LineNumber int
	StackTrace string
}

// RecordWriter persists a record.
type RecordWriter func(ctx context.Context, r *Record) error

// DatabaseHook ships entries to a RecordWriter from a background worker.
// Entries are dropped when the buffer is full or the breaker is open, so
// logging never waits on the database.
type DatabaseHook struct {
	levels  []logrus.Level
	write   RecordWriter
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration

	mu      sync.RWMutex
	closed  bool
	queue   chan *Record
	wg      sync.WaitGroup
	dropped atomic.Int64
}

// NewDatabaseHook creates a hook firing for minLevel and everything more severe.
func NewDatabaseHook(write RecordWriter, minLevel logrus.Level, bufferSize int) *DatabaseHook {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	h := &DatabaseHook{
		levels:  levelsFrom(minLevel),
		write:   write,
		timeout: 5 * time.Second,
		queue:   make(chan *Record, bufferSize),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "logs-database",
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				fmt.Fprintf(os.Stderr, "circuit breaker %s: %s -> %s\n", name, from, to)
			},
		}),
	}
	h.wg.Add(1)
	go h.run()
	return h
}

func levelsFrom(minLevel logrus.Level) []logrus.Level {
	levels := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		if level <= minLevel {
			levels = append(levels, level)
		}
	}
	return levels
}

// Levels returns the levels the hook fires for
func (h *DatabaseHook) Levels() []logrus.Level {
	return h.levels
}

// Fire queues the entry for persistence
func (h *DatabaseHook) Fire(entry *logrus.Entry) error {
	r := newRecord(entry)

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return nil
	}
	select {
	case h.queue <- r:
	default:
		h.dropped.Add(1)
	}
	return nil
}

// Dropped returns how many entries were discarded.
func (h *DatabaseHook) Dropped() int64 {
	return h.dropped.Load()
}

// Close flushes queued entries and stops the worker.
func (h *DatabaseHook) Close() {
	h.mu.Lock()
	if !h.closed {
		h.closed = true
		close(h.queue)
	}
	h.mu.Unlock()
	h.wg.Wait()
}

func (h *DatabaseHook) run() {
	defer h.wg.Done()
	for r := range h.queue {
		_, err := h.breaker.Execute(func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
			defer cancel()
			return nil, h.write(ctx, r)
		})
		if err != nil {
			h.dropped.Add(1)
		}
	}
}

func newRecord(entry *logrus.Entry) *Record {
	r := &Record{
		Time:       entry.Time,
		Level:      LevelName(entry.Level),
		LoggerName: "app",
		Message:    entry.Message,
	}
	if name, ok := entry.Data[LoggerKey].(string); ok && name != "" {
		r.LoggerName = name
	}
	if stack, ok := entry.Data[StackKey].(string); ok {
		r.StackTrace = stack
	}
	if err, ok := entry.Data[logrus.ErrorKey].(error); ok && r.Message == "" {
		r.Message = err.Error()
	}

	if frame, ok := callerFrame(); ok {
		r.Module, r.Function = splitFunction(frame.Function)
		r.LineNumber = frame.Line
	}
	return r
}

// callerFrame finds the first frame outside logrus and this package.
func callerFrame() (runtime.Frame, bool) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "github.com/sirupsen/logrus") &&
			!strings.HasPrefix(frame.Function, loggerPackage) {
			return frame, frame.Function != ""
		}
		if !more {
			return runtime.Frame{}, false
		}
	}
}

// splitFunction splits "pkg/path.(*T).Method" into "pkg/path" and "(*T).Method".
func splitFunction(fn string) (string, string) {
	slash := strings.LastIndex(fn, "/")
	dot := strings.Index(fn[slash+1:], ".")
	if dot < 0 {
		return "", fn
	}
	return fn[:slash+1+dot], fn[slash+1+dot+1:]
}
