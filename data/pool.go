package data

import (
	"database/sql"

	"github.com/ncobase/monoapi/config"
)

// ConfigurePool applies the node's pool limits to db. Zero values keep the
// database/sql defaults.
func ConfigurePool(db *sql.DB, node *config.DBNode) {
	if node.MaxIdleConn > 0 {
		db.SetMaxIdleConns(node.MaxIdleConn)
	}
	if node.MaxOpenConn > 0 {
		db.SetMaxOpenConns(node.MaxOpenConn)
	}
	if node.ConnMaxLifeTime > 0 {
		db.SetConnMaxLifetime(node.ConnMaxLifeTime)
	}
}
