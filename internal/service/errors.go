package service

import "errors"

var (
	// ErrJobNotReady is returned by Download when the job has not finished
	// generating its export yet.
	ErrJobNotReady = errors.New("prospect job is not ready for download")

	// ErrValidation wraps field-level validation failures so callers can
	// distinguish operator mistakes from transport failures.
	ErrValidation = errors.New("validation failed")

	// ErrWeakPassword is returned when a password does not satisfy the
	// strength rule: at least 8 characters, one uppercase letter, and one
	// special character.
	ErrWeakPassword = errors.New("password must be at least 8 characters long and contain an uppercase letter and a special character")
)
