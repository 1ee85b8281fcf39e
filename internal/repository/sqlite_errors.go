package repository

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// storageErr wraps driver failures that carry no recognized constraint
// meaning so callers see a single ErrStorage kind.
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}

// constraintKind extracts the extended SQLite error code when err is a
// constraint violation, and reports false for everything else.
func constraintKind(err error) (sqlite3.ErrNoExtended, bool) {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return 0, false
	}
	if se.Code != sqlite3.ErrConstraint {
		return 0, false
	}
	return se.ExtendedCode, true
}
