package services

import "errors"

var (
	// ErrNotFound is returned when an operation references an unknown ID.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned for an unknown username or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
