package sqlite

import (
	"context"
	"testing"

	"github.com/ncobase/monoapi/config"
	"github.com/ncobase/monoapi/data"
)

func TestConnectInMemory(t *testing.T) {
	d, err := data.GetDatabaseDriver("sqlite")
	if err != nil {
		t.Fatalf("sqlite driver not registered: %v", err)
	}

	db, err := d.Connect(context.Background(), &config.DBNode{Source: ":memory:", MaxOpenConn: 30})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer db.Close()

	if got := db.Stats().MaxOpenConnections; got != 1 {
		t.Errorf("in-memory database should use one connection, got %d", got)
	}
}

func TestConnectEmptySource(t *testing.T) {
	d := &driver{}
	if _, err := d.Connect(context.Background(), &config.DBNode{}); err == nil {
		t.Error("expected error for empty source")
	}
}
