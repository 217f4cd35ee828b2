// Package postgres provides a PostgreSQL driver for monoapi/data.
//
// Connections go through pgx (github.com/jackc/pgx/v5/stdlib) and are wrapped
// with gorm.io/driver/postgres. The driver registers itself when imported:
//
//	import _ "github.com/ncobase/monoapi/data/postgres"
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/ncobase/monoapi/config"
	"github.com/ncobase/monoapi/data"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// driver implements data.DatabaseDriver for PostgreSQL.
type driver struct{}

// Name returns the driver identifier used in configuration files.
func (d *driver) Name() string {
	return "postgres"
}

// DSN returns the node's source when set, otherwise a keyword/value
// connection string built from the node.
func DSN(node *config.DBNode) string {
	if node.Source != "" {
		return node.Source
	}

	parts := []string{
		"host=" + node.Host,
		fmt.Sprintf("port=%d", node.Port),
		"user=" + node.User,
		"password=" + node.Password,
		"dbname=" + node.Database,
		"sslmode=disable",
	}
	if node.ConnectTimeout > 0 {
		parts = append(parts, fmt.Sprintf("connect_timeout=%d", int(node.ConnectTimeout.Seconds())))
	}
	return strings.Join(parts, " ")
}

// Connect parses the DSN with pgx, opens a database/sql pool on top of it and
// pings it.
func (d *driver) Connect(ctx context.Context, node *config.DBNode) (*sql.DB, error) {
	if node == nil {
		return nil, fmt.Errorf("postgres: node configuration is nil")
	}
	if node.Source == "" && node.Host == "" {
		return nil, fmt.Errorf("postgres: neither source nor host configured for %s", node.Name)
	}

	connCfg, err := pgx.ParseConfig(DSN(node))
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid connection string: %w", err)
	}

	db := stdlib.OpenDB(*connCfg)
	data.ConfigurePool(db, node)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: failed to ping database: %w", err)
	}

	return db, nil
}

// Dialector wraps the pool for gorm.
func (d *driver) Dialector(db *sql.DB) gorm.Dialector {
	return gormpostgres.New(gormpostgres.Config{Conn: db})
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}
