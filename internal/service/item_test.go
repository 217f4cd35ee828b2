package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ncobase/monoapi/data/model"
	"github.com/ncobase/monoapi/data/repository"
	"github.com/ncobase/monoapi/internal/service"
	"github.com/ncobase/monoapi/paging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemServiceCreateDefaultsActive(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	item, err := svc.Item.CreateItem(ctx, &service.CreateItemRequest{Name: "Lamp"})
	require.NoError(t, err)
	assert.True(t, item.IsActive)

	hidden, err := svc.Item.CreateItem(ctx, &service.CreateItemRequest{Name: "Shelf", IsActive: ptr(false)})
	require.NoError(t, err)

	got, err := svc.Item.GetItem(ctx, hidden.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, "Shelf", got.Title)
}

func TestItemServiceReadThroughCache(t *testing.T) {
	d, l, _ := newTestData(t)
	c := newMemoryCache[model.Item]()
	svc := service.NewItemService(repository.NewItemRepository(d, l), c, l)
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, &service.CreateItemRequest{Name: "Desk"})
	require.NoError(t, err)

	_, err = svc.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, c.hits)

	cached, err := svc.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.hits)
	assert.Equal(t, "Desk", cached.Title)

	_, err = svc.UpdateItem(ctx, item.ID, &service.UpdateItemRequest{Name: ptr("Standing desk")})
	require.NoError(t, err)
	assert.Equal(t, 1, c.deletes)

	fresh, err := svc.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Standing desk", fresh.Title)

	_, err = svc.DeleteItem(ctx, item.ID)
	require.NoError(t, err)
	_, err = svc.GetItem(ctx, item.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestItemServiceListValidatesLimit(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Item.ListItems(context.Background(), paging.Params{Limit: 0})
	assert.ErrorIs(t, err, paging.ErrInvalidLimit)

	_, err = svc.Item.SearchItems(context.Background(), "x", paging.Params{Limit: 101})
	assert.ErrorIs(t, err, paging.ErrInvalidLimit)
}

func TestItemServiceInvalidCursorIsLogged(t *testing.T) {
	svc, _, out := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Item.CreateItem(ctx, &service.CreateItemRequest{Name: fmt.Sprintf("item %d", i)})
		require.NoError(t, err)
	}

	page, err := svc.Item.ListItems(ctx, paging.Params{After: "%%%", Limit: 10})
	require.NoError(t, err)
	assert.True(t, page.InvalidCursor)
	assert.Empty(t, page.Items)
	assert.Nil(t, page.NextCursor)
	assert.Contains(t, out.String(), "invalid cursor for item listing")
	assert.Contains(t, out.String(), `"level":"info"`)
	assert.NotContains(t, out.String(), `"level":"warning"`)

	out.Reset()
	long := strings.Repeat("A", 500)
	_, err = svc.Item.ListItems(ctx, paging.Params{After: long, Limit: 10})
	require.NoError(t, err)
	assert.Contains(t, out.String(), strings.Repeat("A", 64)+"...")
	assert.NotContains(t, out.String(), strings.Repeat("A", 65))
}

func TestItemServiceSearchPages(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		name := fmt.Sprintf("Red chair %d", i)
		if i%2 == 1 {
			name = fmt.Sprintf("Blue table %d", i)
		}
		_, err := svc.Item.CreateItem(ctx, &service.CreateItemRequest{Name: name})
		require.NoError(t, err)
	}

	first, err := svc.Item.SearchItems(ctx, "RED", paging.Params{Limit: 3})
	require.NoError(t, err)
	require.Len(t, first.Items, 3)
	require.True(t, first.HasNext())

	second, err := svc.Item.SearchItems(ctx, "RED", paging.Params{After: *first.NextCursor, Limit: 3})
	require.NoError(t, err)
	require.Len(t, second.Items, 1)
	assert.False(t, second.HasNext())
	assert.Equal(t, "Red chair 0", second.Items[0].Title)
}
