// Package sqlite provides a SQLite driver for monoapi/data.
//
// The driver uses mattn/go-sqlite3 (CGO) and gorm.io/driver/sqlite. It
// registers itself when imported:
//
//	import _ "github.com/ncobase/monoapi/data/sqlite"
//
// Connection strings may be a file path, a URI such as
// "file:test.db?cache=shared&mode=rwc", or ":memory:".
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/ncobase/monoapi/config"
	"github.com/ncobase/monoapi/data"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// driver implements data.DatabaseDriver for SQLite.
type driver struct{}

// Name returns the driver identifier used in configuration files.
func (d *driver) Name() string {
	return "sqlite"
}

// Connect opens the database named by Source, falling back to Database as a
// file path. In-memory databases are limited to a single connection since
// every connection would otherwise get its own empty database.
func (d *driver) Connect(ctx context.Context, node *config.DBNode) (*sql.DB, error) {
	if node == nil {
		return nil, fmt.Errorf("sqlite: node configuration is nil")
	}

	source := node.Source
	if source == "" {
		source = node.Database
	}
	if source == "" {
		return nil, fmt.Errorf("sqlite: connection source is empty")
	}

	db, err := sql.Open("sqlite3", source)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open connection: %w", err)
	}

	data.ConfigurePool(db, node)
	if strings.Contains(source, ":memory:") || node.MaxOpenConn <= 0 {
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: failed to ping database: %w", err)
	}

	return db, nil
}

// Dialector wraps the pool for gorm.
func (d *driver) Dialector(db *sql.DB) gorm.Dialector {
	return &gormsqlite.Dialector{DriverName: "sqlite3", Conn: db}
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}
