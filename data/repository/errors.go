// Package repository provides persistence for the three databases. Every list
// operation pages by cursor on id, newest first.
package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a unique constraint would be violated.
	ErrConflict = errors.New("record already exists")
)

// translate maps driver errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case strings.Contains(strings.ToLower(err.Error()), "unique constraint"):
		return ErrConflict
	}
	return err
}

// likeEscape is the escape character used with likePattern.
const likeEscape = "!"

// likePattern returns a lower-case substring pattern for LIKE with the
// wildcard characters of term escaped by likeEscape.
func likePattern(term string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}
