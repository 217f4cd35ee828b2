package data

import (
	"context"

	"github.com/ncobase/monoapi/paging"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormQuery adapts a gorm chain to paging.Query. Every step works on a fresh
// session so a query value can be reused without leaking conditions.
type gormQuery[T any] struct {
	db *gorm.DB
}

// NewQuery returns a paging.Query over db. Filters already applied to db are
// kept; the table is taken from T unless db has a model set.
func NewQuery[T any](db *gorm.DB) paging.Query[T] {
	return gormQuery[T]{db: db.Session(&gorm.Session{})}
}

func (q gormQuery[T]) next(tx *gorm.DB) gormQuery[T] {
	return gormQuery[T]{db: tx.Session(&gorm.Session{})}
}

func (q gormQuery[T]) Where(field string, op paging.Operator, value any) paging.Query[T] {
	col := clause.Column{Name: field}
	var expr clause.Expression
	switch op {
	case paging.GreaterThan:
		expr = clause.Gt{Column: col, Value: value}
	default:
		expr = clause.Lt{Column: col, Value: value}
	}
	return q.next(q.db.Clauses(expr))
}

func (q gormQuery[T]) Order(field string, desc bool) paging.Query[T] {
	return q.next(q.db.Order(clause.OrderByColumn{Column: clause.Column{Name: field}, Desc: desc}))
}

func (q gormQuery[T]) Limit(n int) paging.Query[T] {
	return q.next(q.db.Limit(n))
}

func (q gormQuery[T]) Find(ctx context.Context) ([]T, error) {
	var rows []T
	if err := q.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
