package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicate indicates a uniqueness violation.
	ErrDuplicate = errors.New("duplicate")
	// ErrInvalidInput indicates a request that fails domain validation.
	ErrInvalidInput = errors.New("invalid input")
)
