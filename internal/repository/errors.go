package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrCorrupt is returned when a stored document cannot be decoded.
	ErrCorrupt = errors.New("corrupt data")
)
