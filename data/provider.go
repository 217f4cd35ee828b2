package data

import (
	"context"

	"github.com/google/wire"
	"github.com/ncobase/monoapi/config"
	"github.com/ncobase/monoapi/logging/logger"
)

// ProviderSet is the wire provider set for the data package.
var ProviderSet = wire.NewSet(ProvideData)

// ProvideData connects the data layer. The cleanup function closes every
// connection and logs close errors.
func ProvideData(cfg *config.Data, l *logger.Logger) (*Data, func(), error) {
	ctx := context.Background()
	d, err := New(ctx, cfg, l)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Database.Migrate {
		if err := d.Migrate(ctx); err != nil {
			d.Close()
			return nil, nil, err
		}
	}

	cleanup := func() {
		for _, err := range d.Close() {
			l.Errorf(ctx, "cleanup error: %v", err)
		}
	}
	return d, cleanup, nil
}
