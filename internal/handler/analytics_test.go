package handler_test

import (
	"net/http"
	"testing"

	"github.com/ncobase/monoapi/data/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsEvents(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/v1/analytics/user-activity", map[string]any{
		"user_id": 7, "action": "login", "page_url": "/home", "ip_address": "10.0.0.1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "login", decode[map[string]any](t, w)["action"])

	for i := 0; i < 3; i++ {
		w = s.do(http.MethodPost, "/api/v1/analytics/item-view", map[string]any{"item_id": 3, "user_id": 7})
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, float64(3), decode[map[string]any](t, w)["view_count"])
	s.do(http.MethodPost, "/api/v1/analytics/item-view", map[string]any{"item_id": 4})

	var logs []model.ApplicationLog
	require.NoError(t, s.data.Logs.Where("logger_name = ?", "analytics").Find(&logs).Error)
	assert.Len(t, logs, 5)

	w = s.do(http.MethodGet, "/api/v1/analytics/user-activities?user_id=7", nil)
	assert.Len(t, decode[page](t, w).Items, 1)
	w = s.do(http.MethodGet, "/api/v1/analytics/user-activities?user_id=8", nil)
	assert.Empty(t, decode[page](t, w).Items)

	w = s.do(http.MethodGet, "/api/v1/analytics/item-views?item_id=3", nil)
	assert.Len(t, decode[page](t, w).Items, 1)

	w = s.do(http.MethodGet, "/api/v1/analytics/popular-items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	popular := decode[[]map[string]any](t, w)
	require.Len(t, popular, 2)
	assert.Equal(t, float64(3), popular[0]["item_id"])
	assert.Equal(t, float64(3), popular[0]["total_views"])
	assert.Equal(t, float64(1), popular[0]["unique_views"])

	w = s.do(http.MethodGet, "/api/v1/analytics/stats/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[map[string]any](t, w)
	assert.Equal(t, float64(1), summary["total_user_activities"])
	assert.Equal(t, float64(2), summary["total_item_views"])
}

func TestAnalyticsValidation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/v1/analytics/user-activity", map[string]any{"action": "login"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "user_id", decode[envelope](t, w).Details[0]["field"])

	w = s.do(http.MethodGet, "/api/v1/analytics/popular-items?limit=101", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "limit", decode[envelope](t, w).Details[0]["field"])

	w = s.do(http.MethodGet, "/api/v1/analytics/item-views?item_id=x", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
