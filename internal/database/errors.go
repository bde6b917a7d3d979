package database

import "errors"

// Backends translate driver errors into these so callers never import a driver.
var (
	ErrNoRows              = errors.New("no rows in result set")
	ErrUniqueViolation     = errors.New("unique constraint violated")
	ErrCheckViolation      = errors.New("check constraint violated")
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")
)
