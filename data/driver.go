package data

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"sync"

	"github.com/ncobase/monoapi/config"
	"gorm.io/gorm"
)

// DatabaseDriver opens connections for one DBNode.Driver name. The mysql,
// postgres and sqlite packages register one each from init; import
// data/all to get them all.
type DatabaseDriver interface {
	Name() string

	// Connect opens a pooled connection for the node and pings it.
	Connect(ctx context.Context, node *config.DBNode) (*sql.DB, error)

	// Dialector wraps an open connection for gorm.
	Dialector(db *sql.DB) gorm.Dialector
}

var drivers = struct {
	sync.RWMutex
	byName map[string]DatabaseDriver
}{byName: make(map[string]DatabaseDriver)}

// RegisterDatabaseDriver panics on a nil driver, an empty name or a name
// registered twice.
func RegisterDatabaseDriver(d DatabaseDriver) {
	if d == nil {
		panic("data: RegisterDatabaseDriver driver is nil")
	}
	name := d.Name()
	if name == "" {
		panic("data: RegisterDatabaseDriver driver name is empty")
	}

	drivers.Lock()
	defer drivers.Unlock()
	if _, dup := drivers.byName[name]; dup {
		panic("data: RegisterDatabaseDriver called twice for driver " + name)
	}
	drivers.byName[name] = d
}

// GetDatabaseDriver returns the driver registered under name.
func GetDatabaseDriver(name string) (DatabaseDriver, error) {
	drivers.RLock()
	d, ok := drivers.byName[name]
	drivers.RUnlock()
	if !ok {
		return nil, fmt.Errorf("data: database driver %q not registered (import _ \"github.com/ncobase/monoapi/data/%s\"), available: %v",
			name, name, ListDatabaseDrivers())
	}
	return d, nil
}

// ListDatabaseDrivers returns the registered driver names, sorted.
func ListDatabaseDrivers() []string {
	drivers.RLock()
	defer drivers.RUnlock()
	names := make([]string, 0, len(drivers.byName))
	for name := range drivers.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
