package repository

import (
	"context"
	"fmt"

	"github.com/ncobase/monoapi/data"
	"github.com/ncobase/monoapi/data/model"
	"github.com/ncobase/monoapi/paging"
	"gorm.io/gorm"
)

// DefaultSlowThresholdMs is the response time above which a request is slow.
const DefaultSlowThresholdMs = 1000

// ApplicationLogFilter narrows an application log listing.
type ApplicationLogFilter struct {
	Level      string
	LoggerName string
}

// APILogFilter narrows an API log listing.
type APILogFilter struct {
	Method     string
	StatusCode *int
	UserID     *uint
}

// LogRepository defines the interface for the logs database.
//
// Its methods never log: the application logger persists its own records
// through CreateApplicationLog.
type LogRepository interface {
	CreateApplicationLog(ctx context.Context, l *model.ApplicationLog) error
	CreateAPILog(ctx context.Context, l *model.APILog) error
	ListApplicationLogs(ctx context.Context, filter ApplicationLogFilter, p paging.Params) (*paging.Result[model.ApplicationLog], error)
	ListAPILogs(ctx context.Context, filter APILogFilter, p paging.Params) (*paging.Result[model.APILog], error)
	ErrorLogs(ctx context.Context, p paging.Params) (*paging.Result[model.ApplicationLog], error)
	SlowRequests(ctx context.Context, thresholdMs int, p paging.Params) (*paging.Result[model.APILog], error)
}

type logRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new repository on the logs database.
func NewLogRepository(d *data.Data) LogRepository {
	return &logRepository{db: d.Logs}
}

// CreateApplicationLog stores an application log record.
func (r *logRepository) CreateApplicationLog(ctx context.Context, l *model.ApplicationLog) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("failed to create application log: %w", err)
	}
	return nil
}

// CreateAPILog stores an API request record.
func (r *logRepository) CreateAPILog(ctx context.Context, l *model.APILog) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("failed to create api log: %w", err)
	}
	return nil
}

// ListApplicationLogs pages through application logs.
func (r *logRepository) ListApplicationLogs(ctx context.Context, filter ApplicationLogFilter, p paging.Params) (*paging.Result[model.ApplicationLog], error) {
	q := r.db
	if filter.Level != "" {
		q = q.Where("level = ?", filter.Level)
	}
	if filter.LoggerName != "" {
		q = q.Where("logger_name = ?", filter.LoggerName)
	}
	return paging.Paginate(ctx, data.NewQuery[model.ApplicationLog](q), paging.ByIDDesc, p)
}

// ListAPILogs pages through API logs.
func (r *logRepository) ListAPILogs(ctx context.Context, filter APILogFilter, p paging.Params) (*paging.Result[model.APILog], error) {
	q := r.db
	if filter.Method != "" {
		q = q.Where("method = ?", filter.Method)
	}
	if filter.StatusCode != nil {
		q = q.Where("status_code = ?", *filter.StatusCode)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	return paging.Paginate(ctx, data.NewQuery[model.APILog](q), paging.ByIDDesc, p)
}

// ErrorLogs pages through ERROR and CRITICAL application logs.
func (r *logRepository) ErrorLogs(ctx context.Context, p paging.Params) (*paging.Result[model.ApplicationLog], error) {
	q := r.db.Where("level IN ?", []string{model.LevelError, model.LevelCritical})
	return paging.Paginate(ctx, data.NewQuery[model.ApplicationLog](q), paging.ByIDDesc, p)
}

// SlowRequests pages through API logs slower than thresholdMs. A
// non-positive threshold means DefaultSlowThresholdMs.
func (r *logRepository) SlowRequests(ctx context.Context, thresholdMs int, p paging.Params) (*paging.Result[model.APILog], error) {
	if thresholdMs <= 0 {
		thresholdMs = DefaultSlowThresholdMs
	}
	q := r.db.Where("response_time > ?", thresholdMs)
	return paging.Paginate(ctx, data.NewQuery[model.APILog](q), paging.ByIDDesc, p)
}
