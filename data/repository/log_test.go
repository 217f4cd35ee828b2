package repository_test

import (
	"context"
	"testing"

	"github.com/ncobase/monoapi/data/model"
	"github.com/ncobase/monoapi/data/repository"
	"github.com/ncobase/monoapi/paging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationLogFilters(t *testing.T) {
	d, _ := newTestData(t)
	repo := repository.NewLogRepository(d)
	ctx := context.Background()

	levels := []string{model.LevelInfo, model.LevelError, model.LevelWarning, model.LevelCritical, model.LevelError}
	for i, level := range levels {
		name := "app"
		if i == 4 {
			name = "analytics"
		}
		require.NoError(t, repo.CreateApplicationLog(ctx, &model.ApplicationLog{Level: level, LoggerName: name, Message: "m"}))
	}

	id := func(l model.ApplicationLog) uint { return l.ID }

	errs := collect(t, 2, func(p paging.Params) (*paging.Result[model.ApplicationLog], error) {
		return repo.ErrorLogs(ctx, p)
	}, id)
	assert.Equal(t, []uint{5, 4, 2}, errs)

	filtered := collect(t, 10, func(p paging.Params) (*paging.Result[model.ApplicationLog], error) {
		return repo.ListApplicationLogs(ctx, repository.ApplicationLogFilter{Level: model.LevelError, LoggerName: "app"}, p)
	}, id)
	assert.Equal(t, []uint{2}, filtered)
}

func TestAPILogFiltersAndSlowRequests(t *testing.T) {
	d, _ := newTestData(t)
	repo := repository.NewLogRepository(d)
	ctx := context.Background()

	entries := []model.APILog{
		{Method: "GET", Endpoint: "/api/v1/items", StatusCode: 200, ResponseTime: 12},
		{Method: "POST", Endpoint: "/api/v1/items", StatusCode: 201, ResponseTime: 1500, UserID: ptr(uint(3))},
		{Method: "GET", Endpoint: "/api/v1/items/9", StatusCode: 404, ResponseTime: 1000},
		{Method: "GET", Endpoint: "/api/v1/users", StatusCode: 200, ResponseTime: 2300, UserID: ptr(uint(3))},
	}
	for i := range entries {
		require.NoError(t, repo.CreateAPILog(ctx, &entries[i]))
	}

	id := func(l model.APILog) uint { return l.ID }

	slow := collect(t, 1, func(p paging.Params) (*paging.Result[model.APILog], error) {
		return repo.SlowRequests(ctx, 0, p)
	}, id)
	assert.Equal(t, []uint{4, 2}, slow)

	slow = collect(t, 10, func(p paging.Params) (*paging.Result[model.APILog], error) {
		return repo.SlowRequests(ctx, 2000, p)
	}, id)
	assert.Equal(t, []uint{4}, slow)

	gets := collect(t, 10, func(p paging.Params) (*paging.Result[model.APILog], error) {
		return repo.ListAPILogs(ctx, repository.APILogFilter{Method: "GET", StatusCode: ptr(200)}, p)
	}, id)
	assert.Equal(t, []uint{4, 1}, gets)

	byUser := collect(t, 10, func(p paging.Params) (*paging.Result[model.APILog], error) {
		return repo.ListAPILogs(ctx, repository.APILogFilter{UserID: ptr(uint(3))}, p)
	}, id)
	assert.Equal(t, []uint{4, 2}, byUser)
}
