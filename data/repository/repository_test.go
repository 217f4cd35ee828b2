package repository_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/ncobase/monoapi/config"
	"github.com/ncobase/monoapi/data"
	_ "github.com/ncobase/monoapi/data/sqlite"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/paging"
	"github.com/stretchr/testify/require"
)

func newTestData(t *testing.T) (*data.Data, *logger.Logger) {
	t.Helper()

	l := logger.NewLogger()
	l.SetOutput(&bytes.Buffer{})

	node := func(name string) *config.DBNode {
		return &config.DBNode{Name: name, Driver: "sqlite", Source: ":memory:"}
	}
	d, err := data.New(context.Background(), &config.Data{
		Database: &config.Database{
			Main:      node(data.MainDB),
			Analytics: node(data.AnalyticsDB),
			Logs:      node(data.LogsDB),
		},
	}, l)
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	require.NoError(t, d.Migrate(context.Background()))
	return d, l
}

func ptr[T any](v T) *T { return &v }

// collect walks every page and returns the ids in the order served.
func collect[T paging.Cursorable](t *testing.T, limit int, fetch func(paging.Params) (*paging.Result[T], error), id func(T) uint) []uint {
	t.Helper()

	var ids []uint
	p := paging.Params{Limit: limit}
	for pages := 0; ; pages++ {
		require.Less(t, pages, 100, "pagination did not terminate")
		page, err := fetch(p)
		require.NoError(t, err)
		require.False(t, page.InvalidCursor)
		for _, it := range page.Items {
			ids = append(ids, id(it))
		}
		if !page.HasNext() {
			return ids
		}
		p.After = *page.NextCursor
	}
}
