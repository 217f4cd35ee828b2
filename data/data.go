package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/ncobase/monoapi/config"
	"github.com/ncobase/monoapi/data/model"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Database names.
const (
	MainDB      = "main"
	AnalyticsDB = "analytics"
	LogsDB      = "logs"
)

// Data holds one gorm handle per logical database and the optional redis
// client. It is built once at startup and handed to the repositories.
type Data struct {
	Main      *gorm.DB
	Analytics *gorm.DB
	Logs      *gorm.DB
	Redis     *redis.Client

	mu     sync.Mutex
	closed bool
}

// New connects every configured database. Redis is optional: when it is not
// configured or unreachable the returned Data has a nil Redis client.
func New(ctx context.Context, cfg *config.Data, l *logger.Logger) (*Data, error) {
	if l == nil {
		l = logger.StdLogger()
	}
	if cfg == nil || cfg.Database == nil {
		return nil, errors.New("data: database configuration is missing")
	}

	d := &Data{}
	nodes := []struct {
		node   *config.DBNode
		target **gorm.DB
	}{
		{cfg.Database.Main, &d.Main},
		{cfg.Database.Analytics, &d.Analytics},
		{cfg.Database.Logs, &d.Logs},
	}
	for _, n := range nodes {
		db, err := Open(ctx, n.node, l)
		if err != nil {
			d.Close()
			return nil, err
		}
		*n.target = db
		l.Infof(ctx, "connected %s database (%s)", n.node.Name, n.node.Driver)
	}

	if cfg.Redis != nil && cfg.Redis.Addr != "" {
		rc := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Db,
		})
		if err := rc.Ping(ctx).Err(); err != nil {
			l.Warnf(ctx, "redis %s unreachable, caching disabled: %v", cfg.Redis.Addr, err)
			_ = rc.Close()
		} else {
			d.Redis = rc
		}
	}

	return d, nil
}

// Open connects a single node through its registered driver and wraps it in
// gorm. Errors are not translated into the gorm sentinel errors unless the
// dialector supports it.
func Open(ctx context.Context, node *config.DBNode, l *logger.Logger) (*gorm.DB, error) {
	if node == nil {
		return nil, errors.New("data: database node is nil")
	}

	driver, err := GetDatabaseDriver(node.Driver)
	if err != nil {
		return nil, err
	}

	connectCtx := ctx
	if node.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, node.ConnectTimeout)
		defer cancel()
	}

	sqlDB, err := driver.Connect(connectCtx, node)
	if err != nil {
		return nil, fmt.Errorf("data: connect %s database: %w", node.Name, err)
	}

	db, err := gorm.Open(driver.Dialector(sqlDB), &gorm.Config{
		Logger:         newGormLogger(node, l),
		TranslateError: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("data: open %s database: %w", node.Name, err)
	}
	return db, nil
}

// DB returns the handle of the named database, or nil.
func (d *Data) DB(name string) *gorm.DB {
	switch name {
	case MainDB:
		return d.Main
	case AnalyticsDB:
		return d.Analytics
	case LogsDB:
		return d.Logs
	}
	return nil
}

// Migrate creates or updates the tables of every database.
func (d *Data) Migrate(ctx context.Context) error {
	sets := []struct {
		name   string
		models []any
	}{
		{MainDB, model.MainModels()},
		{AnalyticsDB, model.AnalyticsModels()},
		{LogsDB, model.LogModels()},
	}
	for _, s := range sets {
		db := d.DB(s.name)
		if db == nil {
			return fmt.Errorf("data: %s database is not connected", s.name)
		}
		if err := db.WithContext(ctx).AutoMigrate(s.models...); err != nil {
			return fmt.Errorf("data: migrate %s database: %w", s.name, err)
		}
	}
	return nil
}

// Close closes all connections. It is safe to call more than once.
func (d *Data) Close() []error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	var errs []error
	for _, name := range []string{MainDB, AnalyticsDB, LogsDB} {
		sqlDB, err := sqlHandle(d.DB(name))
		if err != nil || sqlDB == nil {
			continue
		}
		if err := sqlDB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s database close error: %w", name, err))
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close error: %w", err))
		}
	}
	return errs
}

func sqlHandle(db *gorm.DB) (*sql.DB, error) {
	if db == nil {
		return nil, nil
	}
	return db.DB()
}
