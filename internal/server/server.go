// Package server assembles the HTTP server from the data, service and
// handler layers.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/monoapi/config"
	"github.com/ncobase/monoapi/data"
	"github.com/ncobase/monoapi/data/model"
	"github.com/ncobase/monoapi/data/repository"
	"github.com/ncobase/monoapi/internal/handler"
	"github.com/ncobase/monoapi/internal/middleware"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/logging/observes"
	"github.com/ncobase/monoapi/metrics"
	"github.com/ncobase/monoapi/version"
)

const logHookBuffer = 1024

// Server is the HTTP API server.
type Server struct {
	config  *config.Config
	logger  *logger.Logger
	handler *handler.Handler
	metrics *metrics.Metrics
	apiLog  *middleware.APILogger
	sentry  bool

	engine *gin.Engine
	http   *http.Server
}

// NewServer creates the server. It persists application logs at or above
// cfg.Logger.DBLevel and API logs to the logs database, and starts sentry
// and tracing when configured. The cleanup flushes and stops all of them.
func NewServer(
	cfg *config.Config,
	l *logger.Logger,
	d *data.Data,
	m *metrics.Metrics,
	h *handler.Handler,
) (*Server, func(), error) {
	if cfg == nil || cfg.Server == nil {
		return nil, nil, errors.New("server config is nil")
	}

	ctx := context.Background()
	l.SetVersion(version.Version)
	logs := repository.NewLogRepository(d)
	var closers []func()

	if cfg.Logger != nil && cfg.Logger.DBLevel != "" {
		level, err := logger.ParseLevel(cfg.Logger.DBLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid db log level %q: %w", cfg.Logger.DBLevel, err)
		}
		hook := logger.NewDatabaseHook(applicationLogWriter(logs), level, logHookBuffer)
		l.AddHook(hook)
		m.RegisterLogDrops("app", hook.Dropped)
		closers = append(closers, hook.Close)
	}

	apiLog := middleware.NewAPILogger(logs.CreateAPILog, l)
	m.RegisterLogDrops("api", apiLog.Dropped)
	closers = append(closers, apiLog.Close)

	s := &Server{
		config:  cfg,
		logger:  l,
		handler: h,
		metrics: m,
		apiLog:  apiLog,
	}

	if cfg.Observes != nil {
		enabled, err := observes.NewSentry(cfg.Observes.Sentry, cfg.AppName)
		if err != nil {
			l.Warnf(ctx, "sentry disabled: %v", err)
		}
		if enabled {
			s.sentry = true
			closers = append(closers, observes.FlushSentry)
		}

		shutdown, err := observes.NewTracer(cfg.Observes.Tracer, cfg.AppName, version.Version, cfg.Environment)
		if err != nil {
			l.Warnf(ctx, "tracing disabled: %v", err)
		} else {
			closers = append(closers, func() {
				sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(sctx); err != nil {
					l.Warnf(sctx, "tracer shutdown: %v", err)
				}
			})
		}
	}

	cleanup := func() {
		// reverse order: tracing and sentry first, the log hook last
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	return s, cleanup, nil
}

// applicationLogWriter persists hook records as ApplicationLog rows.
func applicationLogWriter(logs repository.LogRepository) logger.RecordWriter {
	return func(ctx context.Context, r *logger.Record) error {
		row := &model.ApplicationLog{
			Level:      r.Level,
			LoggerName: r.LoggerName,
			Message:    r.Message,
		}
		if r.Module != "" {
			row.Module = &r.Module
		}
		if r.Function != "" {
			row.Function = &r.Function
		}
		if r.LineNumber > 0 {
			row.LineNumber = &r.LineNumber
		}
		if r.StackTrace != "" {
			row.StackTrace = &r.StackTrace
		}
		row.CreatedAt = r.Time
		return logs.CreateApplicationLog(ctx, row)
	}
}

// Router builds the gin engine with the middleware chain and all routes.
func (s *Server) Router() *gin.Engine {
	if s.engine != nil {
		return s.engine
	}

	if s.config.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.Recovery(s.logger, s.sentry),
		middleware.RequestID(),
		middleware.ProcessingTime(),
	)
	r.Use(middleware.Tracing(s.config.AppName)...)
	r.Use(
		middleware.Metrics(s.metrics),
		middleware.Logger(s.logger),
		s.apiLog.Handler(),
		middleware.CORS(s.config.Server.CORSOrigins),
	)
	r.NoRoute(middleware.NoRoute)
	r.NoMethod(middleware.NoMethod)

	s.handler.RegisterRoutes(r, s.config.Server.APIPrefix)
	s.engine = r
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	sc := s.config.Server
	addr := net.JoinHostPort(sc.Host, strconv.Itoa(sc.Port))
	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  durationOr(sc.ReadTimeout, 15*time.Second),
		WriteTimeout: durationOr(sc.WriteTimeout, 15*time.Second),
		IdleTimeout:  durationOr(sc.IdleTimeout, 60*time.Second),
	}

	config.Watch(func(c *config.Config) {
		if c.Logger == nil || c.Logger.Level == "" {
			return
		}
		if err := s.logger.SetLevelName(c.Logger.Level); err != nil {
			s.logger.Warnf(ctx, "config reload: %v", err)
			return
		}
		s.logger.Infof(ctx, "log level set to %s", c.Logger.Level)
	})

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof(ctx, "starting %s %s on %s", s.config.AppName, version.Version, addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "shutting down server...")
	sctx, cancel := context.WithTimeout(context.Background(), durationOr(sc.ShutdownTimeout, 30*time.Second))
	defer cancel()

	if err := s.http.Shutdown(sctx); err != nil {
		s.logger.Errorf(sctx, "server forced to shutdown: %v", err)
		return err
	}

	s.logger.Info(context.Background(), "server exited")
	return nil
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
