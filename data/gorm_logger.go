package data

import (
	"context"
	"errors"
	"time"

	"github.com/ncobase/monoapi/config"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = time.Second

// gormLogger routes gorm output through the application logger: failed
// statements at ERROR, slow ones at WARNING and the rest at DEBUG.
type gormLogger struct {
	l     *logger.Logger
	name  string
	level gormlogger.LogLevel
	slow  time.Duration
	// failed is the level for statement errors.
	failed logrus.Level
}

func newGormLogger(node *config.DBNode, l *logger.Logger) gormlogger.Interface {
	if l == nil {
		l = logger.StdLogger()
	}
	g := &gormLogger{
		l:      l,
		name:   "gorm." + node.Name,
		level:  gormlogger.Warn,
		slow:   slowQueryThreshold,
		failed: logrus.ErrorLevel,
	}
	if node.Logging {
		g.level = gormlogger.Info
	}
	if node.Name == LogsDB {
		// stays below the database hook level, or a failing logs database
		// would feed its own errors back into itself
		g.failed = logrus.InfoLevel
	}
	return g
}

func (g *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	c := *g
	c.level = level
	return &c
}

func (g *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	if g.level >= gormlogger.Info {
		g.l.Named(ctx, g.name).Infof(msg, args...)
	}
}

func (g *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	if g.level >= gormlogger.Warn {
		g.l.Named(ctx, g.name).Warnf(msg, args...)
	}
}

func (g *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	if g.level >= gormlogger.Error {
		g.l.Named(ctx, g.name).Logf(g.failed, msg, args...)
	}
}

// Trace logs one executed statement. Record-not-found is an expected
// outcome and never reported as a failure.
func (g *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= gormlogger.Error:
		sql, rows := fc()
		g.entry(ctx, sql, rows, elapsed).WithError(err).Log(g.failed, "query failed")
	case g.slow > 0 && elapsed > g.slow && g.level >= gormlogger.Warn:
		sql, rows := fc()
		g.entry(ctx, sql, rows, elapsed).Warnf("slow query over %s", g.slow)
	case g.level >= gormlogger.Info:
		sql, rows := fc()
		g.entry(ctx, sql, rows, elapsed).Debug("query")
	}
}

func (g *gormLogger) entry(ctx context.Context, sql string, rows int64, elapsed time.Duration) *logrus.Entry {
	return g.l.Named(ctx, g.name).WithFields(logrus.Fields{
		"sql":        sql,
		"rows":       rows,
		"elapsed_ms": float64(elapsed.Microseconds()) / 1000,
	})
}
