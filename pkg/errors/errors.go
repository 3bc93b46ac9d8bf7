package sentinal_errors

import "errors"

// Common errors
var (
	ErrAccessDenied       = errors.New("access denied")
	ErrUnsupportedBackend = errors.New("unsupported database backend")
	ErrReservedField      = errors.New("extra field uses a reserved column name")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
)
