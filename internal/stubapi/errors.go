package stubapi

import "errors"

var (
	ErrUsernameTaken   = errors.New("username already registered")
	ErrAccountNotFound = errors.New("account not found")
	ErrJobNotFound     = errors.New("prospect job not found")
	ErrJobNotReady     = errors.New("prospect job not ready")

	ErrEmptyAuthorizationHeader   = errors.New("empty Authorization header")
	ErrInvalidAuthorizationHeader = errors.New("invalid Authorization header")
)
