package user

import "errors"

var (
	ErrNotFound      = errors.New("user not found")
	ErrNotConfigured = errors.New("user not configured")
	ErrInvalidAuth   = errors.New("invalid credentials")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrPinRequired   = errors.New("pin is required for new users")
)
