package paging

import (
	"errors"
	"fmt"
)

const (
	// DefaultLimit is used when the client does not send a limit.
	DefaultLimit = 20
	// MaxLimit is the largest page a client may request.
	MaxLimit = 100
)

// ErrInvalidLimit is returned by ValidateParams for a limit outside (0, MaxLimit].
var ErrInvalidLimit = errors.New("invalid limit")

// Params holds the client supplied pagination parameters.
type Params struct {
	After string `json:"after,omitempty" form:"after"`
	Limit int    `json:"limit" form:"limit"`
}

// NewParams returns first-page parameters with the default limit.
func NewParams() Params {
	return Params{Limit: DefaultLimit}
}

// IsFirstPage reports whether no cursor was supplied.
func (p Params) IsFirstPage() bool {
	return p.After == ""
}

// ValidateParams checks the limit bound. Paginate assumes it has been called.
func ValidateParams(p Params) error {
	if p.Limit <= 0 || p.Limit > MaxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d, got %d", ErrInvalidLimit, MaxLimit, p.Limit)
	}
	return nil
}
