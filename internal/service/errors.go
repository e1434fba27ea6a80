package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrInvalidSecret      = errors.New("invalid secret code")
	ErrEmptyPassword      = errors.New("password must not be empty")
	ErrInvalidFilename    = errors.New("invalid filename")
	ErrInvalidFile        = errors.New("unsupported file type")
	ErrNotFound           = errors.New("not found")
	ErrMissingFields      = errors.New("missing fields")
	ErrInvalidType        = errors.New("invalid item type")
)
