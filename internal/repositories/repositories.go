package repositories

import (
	"errors"
	"strings"
)

// ErrDuplicateUsername is returned when the store's unique index on username rejects an insert.
var ErrDuplicateUsername = errors.New("duplicate username")

// compact collapses a multi-line query into a single line for logging.
func compact(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
