package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncobase/monoapi/data/cache"
	"github.com/ncobase/monoapi/data/model"
	"github.com/ncobase/monoapi/data/repository"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/paging"
)

const (
	// DefaultPopularLimit is the size of the popular items report.
	DefaultPopularLimit = 10
	// MaxPopularLimit bounds the popular items report.
	MaxPopularLimit = 100

	analyticsLogger = "analytics"
)

// AnalyticsService records user activity and item views in the analytics
// database and notes each event in the application log.
type AnalyticsService struct {
	repo   repository.AnalyticsRepository
	logs   repository.LogRepository
	stats  cache.ICache[model.PopularItem]
	logger *logger.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	repo repository.AnalyticsRepository,
	logs repository.LogRepository,
	stats cache.ICache[model.PopularItem],
	logger *logger.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		repo:   repo,
		logs:   logs,
		stats:  stats,
		logger: logger,
	}
}

// UserActivityRequest represents a tracked user action.
type UserActivityRequest struct {
	UserID          uint    `json:"user_id" binding:"required"`
	Action          string  `json:"action" binding:"required,max=100"`
	PageURL         *string `json:"page_url" binding:"omitempty,max=500"`
	SessionDuration *int    `json:"session_duration" binding:"omitempty,gte=0"`
	IPAddress       *string `json:"ip_address" binding:"omitempty,ip"`
}

// ItemViewRequest represents one view of an item.
type ItemViewRequest struct {
	ItemID uint  `json:"item_id" binding:"required"`
	UserID *uint `json:"user_id"`
}

// RecordActivity stores a user activity.
func (s *AnalyticsService) RecordActivity(ctx context.Context, req *UserActivityRequest) (*model.UserActivity, error) {
	activity, err := s.repo.CreateActivity(ctx, &model.UserActivity{
		UserID:          req.UserID,
		Action:          req.Action,
		PageURL:         req.PageURL,
		SessionDuration: req.SessionDuration,
		IPAddress:       req.IPAddress,
	})
	if err != nil {
		s.logger.Named(ctx, analyticsLogger).Errorf("failed to log user activity: %v", err)
		return nil, err
	}

	s.event(ctx, "create_user_activity", fmt.Sprintf("User activity logged: %s", req.Action))
	return activity, nil
}

// RecordItemView counts a view of an item.
func (s *AnalyticsService) RecordItemView(ctx context.Context, req *ItemViewRequest) (*model.ItemView, error) {
	view, err := s.repo.RecordItemView(ctx, req.ItemID, req.UserID)
	if err != nil {
		s.logger.Named(ctx, analyticsLogger).Errorf("failed to log item view: %v", err)
		return nil, err
	}

	s.event(ctx, "create_item_view", fmt.Sprintf("Item view logged: item_id=%d", req.ItemID))
	return view, nil
}

// event writes an INFO application log entry. A failure is logged only; the
// analytics row is already stored.
func (s *AnalyticsService) event(ctx context.Context, function, message string) {
	module := analyticsLogger
	err := s.logs.CreateApplicationLog(ctx, &model.ApplicationLog{
		Level:      model.LevelInfo,
		LoggerName: analyticsLogger,
		Message:    message,
		Module:     &module,
		Function:   &function,
	})
	if err != nil {
		s.logger.Warnf(ctx, "failed to write application log for %s: %v", function, err)
	}
}

// ListActivities returns a page of activities, newest first.
func (s *AnalyticsService) ListActivities(ctx context.Context, userID *uint, p paging.Params) (*paging.Result[model.UserActivity], error) {
	if err := paging.ValidateParams(p); err != nil {
		return nil, err
	}
	result, err := s.repo.ListActivities(ctx, repository.ActivityFilter{UserID: userID}, p)
	if err != nil {
		return nil, err
	}
	noteInvalidCursor(ctx, s.logger, "user activity", result, p)
	return result, nil
}

// ListItemViews returns a page of view counters, newest first.
func (s *AnalyticsService) ListItemViews(ctx context.Context, itemID *uint, p paging.Params) (*paging.Result[model.ItemView], error) {
	if err := paging.ValidateParams(p); err != nil {
		return nil, err
	}
	result, err := s.repo.ListItemViews(ctx, repository.ItemViewFilter{ItemID: itemID}, p)
	if err != nil {
		return nil, err
	}
	noteInvalidCursor(ctx, s.logger, "item view", result, p)
	return result, nil
}

// PopularItems returns the most viewed items. Reports are cached briefly when
// redis is available.
func (s *AnalyticsService) PopularItems(ctx context.Context, limit int) ([]model.PopularItem, error) {
	if limit <= 0 || limit > MaxPopularLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d, got %d", paging.ErrInvalidLimit, MaxPopularLimit, limit)
	}

	key := fmt.Sprintf("popular:%d", limit)
	var items []model.PopularItem
	err := s.stats.GetArray(ctx, key, &items)
	if err == nil {
		return items, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warnf(ctx, "popular items cache read failed: %v", err)
	}

	items, err = s.repo.PopularItems(ctx, limit)
	if err != nil {
		return nil, err
	}
	if err := s.stats.SetArray(ctx, key, items); err != nil {
		s.logger.Warnf(ctx, "popular items cache write failed: %v", err)
	}
	return items, nil
}

// Summary returns the analytics totals and the top items.
func (s *AnalyticsService) Summary(ctx context.Context) (*model.AnalyticsSummary, error) {
	return s.repo.Summary(ctx)
}
