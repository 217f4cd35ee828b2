package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ncobase/monoapi/data"
	"github.com/ncobase/monoapi/data/model"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/paging"
	"gorm.io/gorm"
)

// SummaryTopItems is the number of popular items in the summary.
const SummaryTopItems = 5

// ActivityFilter narrows a user activity listing.
type ActivityFilter struct {
	UserID *uint
}

// ItemViewFilter narrows an item view listing.
type ItemViewFilter struct {
	ItemID *uint
}

// AnalyticsRepository defines the interface for analytics data operations.
type AnalyticsRepository interface {
	CreateActivity(ctx context.Context, a *model.UserActivity) (*model.UserActivity, error)
	ListActivities(ctx context.Context, filter ActivityFilter, p paging.Params) (*paging.Result[model.UserActivity], error)
	RecordItemView(ctx context.Context, itemID uint, userID *uint) (*model.ItemView, error)
	ListItemViews(ctx context.Context, filter ItemViewFilter, p paging.Params) (*paging.Result[model.ItemView], error)
	PopularItems(ctx context.Context, limit int) ([]model.PopularItem, error)
	Summary(ctx context.Context) (*model.AnalyticsSummary, error)
}

type analyticsRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewAnalyticsRepository creates a new repository on the analytics database.
func NewAnalyticsRepository(d *data.Data, logger *logger.Logger) AnalyticsRepository {
	return &analyticsRepository{
		db:     d.Analytics,
		logger: logger,
	}
}

// CreateActivity stores a user activity.
func (r *analyticsRepository) CreateActivity(ctx context.Context, a *model.UserActivity) (*model.UserActivity, error) {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		r.logger.Errorf(ctx, "failed to create user activity: %v", err)
		return nil, fmt.Errorf("failed to create user activity: %w", err)
	}
	return a, nil
}

// ListActivities pages through user activities.
func (r *analyticsRepository) ListActivities(ctx context.Context, filter ActivityFilter, p paging.Params) (*paging.Result[model.UserActivity], error) {
	q := r.db
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	return paging.Paginate(ctx, data.NewQuery[model.UserActivity](q), paging.ByIDDesc, p)
}

// RecordItemView increments the view counter of (itemID, userID), creating
// the row on the first view.
func (r *analyticsRepository) RecordItemView(ctx context.Context, itemID uint, userID *uint) (*model.ItemView, error) {
	var view model.ItemView
	now := time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Where("item_id = ?", itemID)
		if userID != nil {
			q = q.Where("user_id = ?", *userID)
		} else {
			q = q.Where("user_id IS NULL")
		}

		err := q.First(&view).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			view = model.ItemView{ItemID: itemID, UserID: userID, ViewCount: 1, LastViewedAt: now}
			return tx.Create(&view).Error
		case err != nil:
			return err
		}

		if err := tx.Model(&view).Updates(map[string]any{
			"view_count":     gorm.Expr("view_count + ?", 1),
			"last_viewed_at": now,
		}).Error; err != nil {
			return err
		}
		return tx.First(&view, view.ID).Error
	})
	if err != nil {
		r.logger.Errorf(ctx, "failed to record view of item %d: %v", itemID, err)
		return nil, fmt.Errorf("failed to record item view: %w", err)
	}
	return &view, nil
}

// ListItemViews pages through item view counters.
func (r *analyticsRepository) ListItemViews(ctx context.Context, filter ItemViewFilter, p paging.Params) (*paging.Result[model.ItemView], error) {
	q := r.db
	if filter.ItemID != nil {
		q = q.Where("item_id = ?", *filter.ItemID)
	}
	return paging.Paginate(ctx, data.NewQuery[model.ItemView](q), paging.ByIDDesc, p)
}

// PopularItems returns the items with the most views, most viewed first.
func (r *analyticsRepository) PopularItems(ctx context.Context, limit int) ([]model.PopularItem, error) {
	items := make([]model.PopularItem, 0, limit)
	err := r.db.WithContext(ctx).Model(&model.ItemView{}).
		Select("item_id, SUM(view_count) AS total_views, COUNT(id) AS unique_views").
		Group("item_id").
		Order("total_views DESC").
		Order("item_id ASC").
		Limit(limit).
		Scan(&items).Error
	if err != nil {
		r.logger.Errorf(ctx, "failed to get popular items: %v", err)
		return nil, fmt.Errorf("failed to get popular items: %w", err)
	}
	return items, nil
}

// Summary counts activities and view rows and lists the top items.
func (r *analyticsRepository) Summary(ctx context.Context) (*model.AnalyticsSummary, error) {
	var s model.AnalyticsSummary
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.UserActivity{}).Count(&s.TotalUserActivities).Error; err != nil {
		return nil, fmt.Errorf("failed to count user activities: %w", err)
	}
	if err := db.Model(&model.ItemView{}).Count(&s.TotalItemViews).Error; err != nil {
		return nil, fmt.Errorf("failed to count item views: %w", err)
	}

	top, err := r.PopularItems(ctx, SummaryTopItems)
	if err != nil {
		return nil, err
	}
	s.TopPopularItems = top
	return &s, nil
}
