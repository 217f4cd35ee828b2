package paging

import (
	"context"
	"errors"
	"fmt"
)

// Operator is a strict comparison applied to the sort field.
type Operator string

const (
	LessThan    Operator = "<"
	GreaterThan Operator = ">"
)

// Query is the data-access contract the engine drives.
type Query[T any] interface {
	Where(field string, op Operator, value any) Query[T]
	Order(field string, desc bool) Query[T]
	Limit(n int) Query[T]
	Find(ctx context.Context) ([]T, error)
}

// Cursorable exposes field values by name so a boundary can be taken from the
// last item of a page.
type Cursorable interface {
	CursorValue(field string) any
}

// Kind is the type a cursor boundary value must have for a sort field.
type Kind int

const (
	// KindScalar accepts any scalar the cursor codec produces.
	KindScalar Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
)

// accepts reports whether a decoded boundary value has kind k.
func (k Kind) accepts(v any) bool {
	switch v.(type) {
	case int64:
		return k == KindScalar || k == KindInt
	case float64:
		return k == KindScalar || k == KindFloat
	case string:
		return k == KindScalar || k == KindString
	case bool:
		return k == KindScalar || k == KindBool
	}
	return false
}

// Sort is the fixed ordering of an endpoint. Kind is the type of the sort
// field; cursors carrying any other value are invalid.
type Sort struct {
	Field string
	Desc  bool
	Kind  Kind
}

// ByIDDesc is the default ordering: newest identifier first.
var ByIDDesc = Sort{Field: "id", Desc: true, Kind: KindInt}

// Result holds a page of items and the cursor for the next one.
type Result[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor"`

	// InvalidCursor is set when the request cursor could not be decoded.
	InvalidCursor bool `json:"-"`
}

// HasNext reports whether another page exists.
func (r *Result[T]) HasNext() bool {
	return r.NextCursor != nil
}

// Empty returns a page with no items and no next cursor.
func Empty[T any]() *Result[T] {
	return &Result[T]{Items: make([]T, 0)}
}

// Map converts the items of a page, keeping its cursor.
func Map[T, U any](r *Result[T], fn func(T) U) *Result[U] {
	out := &Result[U]{
		Items:         make([]U, 0, len(r.Items)),
		NextCursor:    r.NextCursor,
		InvalidCursor: r.InvalidCursor,
	}
	for _, item := range r.Items {
		out.Items = append(out.Items, fn(item))
	}
	return out
}

// Paginate returns the page of q that follows p.After in the order given by s.
//
// p must have passed ValidateParams. A malformed cursor, or one whose boundary
// value is not of kind s.Kind, yields an empty page with InvalidCursor set and
// a nil error. Errors from q are returned wrapped.
func Paginate[T Cursorable](ctx context.Context, q Query[T], s Sort, p Params) (*Result[T], error) {
	q = q.Order(s.Field, s.Desc)

	if !p.IsFirstPage() {
		boundary, err := DecodeCursor(p.After)
		if err != nil {
			return invalid[T](), nil
		}
		value, ok := boundary[s.Field]
		if !ok || !s.Kind.accepts(value) {
			return invalid[T](), nil
		}
		op := GreaterThan
		if s.Desc {
			op = LessThan
		}
		q = q.Where(s.Field, op, value)
	}

	items, err := q.Limit(p.Limit + 1).Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("pagination error: %w", err)
	}

	result := &Result[T]{Items: items}
	if len(items) > p.Limit {
		result.Items = items[:p.Limit]
		last := result.Items[len(result.Items)-1]
		next, err := EncodeCursor(Boundary{s.Field: last.CursorValue(s.Field)})
		if err != nil {
			return nil, err
		}
		result.NextCursor = &next
	}
	if result.Items == nil {
		result.Items = make([]T, 0)
	}
	return result, nil
}

func invalid[T any]() *Result[T] {
	r := Empty[T]()
	r.InvalidCursor = true
	return r
}

// IsInvalidCursor reports whether err was caused by a malformed cursor.
func IsInvalidCursor(err error) bool {
	return errors.Is(err, ErrInvalidCursor)
}
