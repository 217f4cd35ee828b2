package service_test

import (
	"context"
	"testing"

	"github.com/ncobase/monoapi/data/model"
	"github.com/ncobase/monoapi/internal/service"
	"github.com/ncobase/monoapi/paging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogServiceFilters(t *testing.T) {
	svc, d, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, d.Logs.Create(&[]model.ApplicationLog{
		{Level: model.LevelInfo, LoggerName: "app", Message: "started"},
		{Level: model.LevelError, LoggerName: "app", Message: "failed"},
		{Level: model.LevelCritical, LoggerName: "gorm.main", Message: "down"},
	}).Error)
	require.NoError(t, d.Logs.Create(&[]model.APILog{
		{Method: "GET", Endpoint: "/api/v1/items", StatusCode: 200, ResponseTime: 12},
		{Method: "POST", Endpoint: "/api/v1/items", StatusCode: 201, ResponseTime: 1500},
		{Method: "GET", Endpoint: "/api/v1/items/9", StatusCode: 404, ResponseTime: 2500},
	}).Error)

	errs, err := svc.Log.ListApplicationLogs(ctx, service.ApplicationLogQuery{Level: "error"}, paging.NewParams())
	require.NoError(t, err)
	require.Len(t, errs.Items, 1)
	assert.Equal(t, "failed", errs.Items[0].Message)

	_, err = svc.Log.ListApplicationLogs(ctx, service.ApplicationLogQuery{Level: "LOUD"}, paging.NewParams())
	assert.ErrorIs(t, err, service.ErrInvalidLevel)

	gets, err := svc.Log.ListAPILogs(ctx, service.APILogQuery{Method: "get"}, paging.NewParams())
	require.NoError(t, err)
	assert.Len(t, gets.Items, 2)

	severe, err := svc.Log.ErrorLogs(ctx, paging.NewParams())
	require.NoError(t, err)
	assert.Len(t, severe.Items, 2)

	slow, err := svc.Log.SlowRequests(ctx, 0, paging.NewParams())
	require.NoError(t, err)
	assert.Len(t, slow.Items, 2)

	slower, err := svc.Log.SlowRequests(ctx, 2000, paging.Params{Limit: 1})
	require.NoError(t, err)
	require.Len(t, slower.Items, 1)
	assert.Equal(t, 404, slower.Items[0].StatusCode)
	assert.False(t, slower.HasNext())
}
