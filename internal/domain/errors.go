package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedFormat   = errors.New("unsupported file format")
	ErrSimplifyUnavailable = errors.New("simplification service unavailable")
)
