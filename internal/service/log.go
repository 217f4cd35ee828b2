package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ncobase/monoapi/data/model"
	"github.com/ncobase/monoapi/data/repository"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/paging"
)

// ErrInvalidLevel is returned for a level filter that is not a log level.
var ErrInvalidLevel = errors.New("invalid log level")

// LogService reads the logs database.
type LogService struct {
	repo   repository.LogRepository
	logger *logger.Logger
}

// NewLogService creates a new log service.
func NewLogService(repo repository.LogRepository, logger *logger.Logger) *LogService {
	return &LogService{
		repo:   repo,
		logger: logger,
	}
}

// ApplicationLogQuery filters application logs.
type ApplicationLogQuery struct {
	Level      string `form:"level"`
	LoggerName string `form:"logger_name"`
}

// APILogQuery filters API logs.
type APILogQuery struct {
	Method     string `form:"method"`
	StatusCode *int   `form:"status_code" binding:"omitempty,gte=100,lte=599"`
	UserID     *uint  `form:"user_id"`
}

// ListApplicationLogs returns a page of application logs, newest first.
func (s *LogService) ListApplicationLogs(ctx context.Context, q ApplicationLogQuery, p paging.Params) (*paging.Result[model.ApplicationLog], error) {
	level := strings.ToUpper(q.Level)
	if level != "" && !model.ValidLevel(level) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, q.Level)
	}
	if err := paging.ValidateParams(p); err != nil {
		return nil, err
	}

	result, err := s.repo.ListApplicationLogs(ctx, repository.ApplicationLogFilter{Level: level, LoggerName: q.LoggerName}, p)
	if err != nil {
		return nil, err
	}
	noteInvalidCursor(ctx, s.logger, "application log", result, p)
	return result, nil
}

// ListAPILogs returns a page of API logs, newest first.
func (s *LogService) ListAPILogs(ctx context.Context, q APILogQuery, p paging.Params) (*paging.Result[model.APILog], error) {
	if err := paging.ValidateParams(p); err != nil {
		return nil, err
	}

	result, err := s.repo.ListAPILogs(ctx, repository.APILogFilter{
		Method:     strings.ToUpper(q.Method),
		StatusCode: q.StatusCode,
		UserID:     q.UserID,
	}, p)
	if err != nil {
		return nil, err
	}
	noteInvalidCursor(ctx, s.logger, "api log", result, p)
	return result, nil
}

// ErrorLogs returns a page of ERROR and CRITICAL application logs.
func (s *LogService) ErrorLogs(ctx context.Context, p paging.Params) (*paging.Result[model.ApplicationLog], error) {
	if err := paging.ValidateParams(p); err != nil {
		return nil, err
	}
	result, err := s.repo.ErrorLogs(ctx, p)
	if err != nil {
		return nil, err
	}
	noteInvalidCursor(ctx, s.logger, "error log", result, p)
	return result, nil
}

// SlowRequests returns a page of requests slower than thresholdMs. A
// non-positive threshold uses the default.
func (s *LogService) SlowRequests(ctx context.Context, thresholdMs int, p paging.Params) (*paging.Result[model.APILog], error) {
	if err := paging.ValidateParams(p); err != nil {
		return nil, err
	}
	result, err := s.repo.SlowRequests(ctx, thresholdMs, p)
	if err != nil {
		return nil, err
	}
	noteInvalidCursor(ctx, s.logger, "slow request", result, p)
	return result, nil
}
