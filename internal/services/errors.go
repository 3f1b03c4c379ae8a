package services

import (
	"database/sql"
	"errors"
)

// isNoRows reports whether the error chain contains sql.ErrNoRows,
// the repositories' signal for a missing row.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
