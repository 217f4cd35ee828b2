// Package mysql provides a MySQL driver for monoapi/data.
//
// The driver uses github.com/go-sql-driver/mysql for the connection pool and
// gorm.io/driver/mysql as the gorm dialector. It registers itself when imported:
//
//	import _ "github.com/ncobase/monoapi/data/mysql"
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/ncobase/monoapi/config"
	"github.com/ncobase/monoapi/data"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// driver implements data.DatabaseDriver for MySQL.
type driver struct{}

// Name returns the driver identifier used in configuration files.
func (d *driver) Name() string {
	return "mysql"
}

// DSN returns the node's source when set, otherwise a DSN built from the
// host, port, credentials and database name, e.g.
//
//	user:password@tcp(localhost:3306)/dbname?charset=utf8mb4&parseTime=true
func DSN(node *config.DBNode) string {
	if node.Source != "" {
		return node.Source
	}

	cfg := mysql.NewConfig()
	cfg.User = node.User
	cfg.Passwd = node.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(node.Host, strconv.Itoa(node.Port))
	cfg.DBName = node.Database
	cfg.ParseTime = true
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	if node.ConnectTimeout > 0 {
		cfg.Timeout = node.ConnectTimeout
	}
	return cfg.FormatDSN()
}

// Connect establishes a MySQL connection pool for the node. The connection
// is verified with a ping before being returned.
func (d *driver) Connect(ctx context.Context, node *config.DBNode) (*sql.DB, error) {
	if node == nil {
		return nil, fmt.Errorf("mysql: node configuration is nil")
	}
	if node.Source == "" && node.Host == "" {
		return nil, fmt.Errorf("mysql: neither source nor host configured for %s", node.Name)
	}

	db, err := sql.Open("mysql", DSN(node))
	if err != nil {
		return nil, fmt.Errorf("mysql: failed to open connection: %w", err)
	}

	data.ConfigurePool(db, node)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("mysql: failed to ping database: %w", err)
	}

	return db, nil
}

// Dialector wraps the pool for gorm.
func (d *driver) Dialector(db *sql.DB) gorm.Dialector {
	return gormmysql.New(gormmysql.Config{Conn: db})
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}
