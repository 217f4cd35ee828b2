package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ncobase/monoapi/config"
	"github.com/ncobase/monoapi/data"
)

func TestDriverRegistered(t *testing.T) {
	if _, err := data.GetDatabaseDriver("postgres"); err != nil {
		t.Fatalf("postgres driver not registered: %v", err)
	}
}

func TestDSNParsesWithPgx(t *testing.T) {
	dsn := DSN(&config.DBNode{
		Host:           "pg.internal",
		Port:           5432,
		User:           "app",
		Password:       "pw",
		Database:       "mono_api_logs",
		ConnectTimeout: 5 * time.Second,
	})
	if !strings.Contains(dsn, "connect_timeout=5") {
		t.Errorf("dsn %q missing connect_timeout", dsn)
	}

	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("pgx rejected dsn %q: %v", dsn, err)
	}
	if cfg.Host != "pg.internal" || cfg.Port != 5432 || cfg.Database != "mono_api_logs" || cfg.User != "app" {
		t.Errorf("unexpected parsed config: %+v", cfg.Config)
	}
}
