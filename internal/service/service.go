// Package service contains the business logic behind the HTTP API.
package service

import (
	"context"
	"time"

	"github.com/ncobase/monoapi/config"
	"github.com/ncobase/monoapi/data"
	"github.com/ncobase/monoapi/data/cache"
	"github.com/ncobase/monoapi/data/model"
	"github.com/ncobase/monoapi/data/repository"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/paging"
)

const (
	defaultItemTTL   = 5 * time.Minute
	popularItemsTTL  = 30 * time.Second
	itemCachePrefix  = "item"
	statsCachePrefix = "analytics"
)

// Service aggregates all business logic services.
type Service struct {
	Item      *ItemService
	User      *UserService
	Analytics *AnalyticsService
	Log       *LogService
}

// NewService creates a new service instance with all sub-services initialized.
// Caches are disabled when d has no redis client. collector may be nil.
func NewService(d *data.Data, cfg *config.Data, collector cache.Collector, logger *logger.Logger) *Service {
	itemTTL := defaultItemTTL
	if cfg != nil && cfg.Redis != nil && cfg.Redis.ItemTTL > 0 {
		itemTTL = cfg.Redis.ItemTTL
	}

	logs := repository.NewLogRepository(d)
	return &Service{
		Item: NewItemService(
			repository.NewItemRepository(d, logger),
			cache.NewCacheWithMetrics[model.Item](d.Redis, itemCachePrefix, itemTTL, collector),
			logger,
		),
		User: NewUserService(repository.NewUserRepository(d, logger), logger),
		Analytics: NewAnalyticsService(
			repository.NewAnalyticsRepository(d, logger),
			logs,
			cache.NewCacheWithMetrics[model.PopularItem](d.Redis, statsCachePrefix, popularItemsTTL, collector),
			logger,
		),
		Log: NewLogService(logs, logger),
	}
}

// maxLoggedCursor bounds the client supplied token echoed into the log.
const maxLoggedCursor = 64

// noteInvalidCursor logs a page that was served empty for a bad cursor. It is
// client input, so it stays at INFO, below the database hook level.
func noteInvalidCursor[T any](ctx context.Context, l *logger.Logger, what string, r *paging.Result[T], p paging.Params) {
	if r == nil || !r.InvalidCursor {
		return
	}
	after := p.After
	if len(after) > maxLoggedCursor {
		after = after[:maxLoggedCursor] + "..."
	}
	l.Infof(ctx, "invalid cursor for %s listing, after=%q", what, after)
}
