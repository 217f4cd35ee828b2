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

func TestRecordItemViewUpserts(t *testing.T) {
	d, l := newTestData(t)
	repo := repository.NewAnalyticsRepository(d, l)
	ctx := context.Background()

	first, err := repo.RecordItemView(ctx, 1, ptr(uint(10)))
	require.NoError(t, err)
	assert.Equal(t, 1, first.ViewCount)

	second, err := repo.RecordItemView(ctx, 1, ptr(uint(10)))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.ViewCount)
	assert.False(t, second.LastViewedAt.Before(first.LastViewedAt))

	anon, err := repo.RecordItemView(ctx, 1, nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, anon.ID)
	assert.Nil(t, anon.UserID)

	anon, err = repo.RecordItemView(ctx, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, anon.ViewCount)
}

func TestPopularItemsAndSummary(t *testing.T) {
	d, l := newTestData(t)
	repo := repository.NewAnalyticsRepository(d, l)
	ctx := context.Background()

	views := []struct {
		item  uint
		user  uint
		times int
	}{
		{1, 1, 1},
		{2, 1, 3},
		{2, 2, 2},
		{3, 1, 4},
	}
	for _, v := range views {
		for i := 0; i < v.times; i++ {
			_, err := repo.RecordItemView(ctx, v.item, ptr(v.user))
			require.NoError(t, err)
		}
	}
	_, err := repo.CreateActivity(ctx, &model.UserActivity{UserID: 1, Action: "login"})
	require.NoError(t, err)

	popular, err := repo.PopularItems(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []model.PopularItem{
		{ItemID: 2, TotalViews: 5, UniqueViews: 2},
		{ItemID: 3, TotalViews: 4, UniqueViews: 1},
	}, popular)

	summary, err := repo.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalUserActivities)
	assert.Equal(t, int64(4), summary.TotalItemViews)
	assert.Len(t, summary.TopPopularItems, 3)
}

func TestListActivitiesFilter(t *testing.T) {
	d, l := newTestData(t)
	repo := repository.NewAnalyticsRepository(d, l)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := repo.CreateActivity(ctx, &model.UserActivity{UserID: uint(i%2 + 1), Action: "view", PageURL: ptr("/items")})
		require.NoError(t, err)
	}

	ids := collect(t, 2, func(p paging.Params) (*paging.Result[model.UserActivity], error) {
		return repo.ListActivities(ctx, repository.ActivityFilter{UserID: ptr(uint(2))}, p)
	}, func(a model.UserActivity) uint { return a.ID })
	assert.Equal(t, []uint{6, 4, 2}, ids)

	views, err := repo.ListItemViews(ctx, repository.ItemViewFilter{ItemID: ptr(uint(99))}, paging.NewParams())
	require.NoError(t, err)
	assert.Empty(t, views.Items)
	assert.NotNil(t, views.Items)
}
