package adapter

import "errors"

var (
	// ErrSessionExpired signals that an authenticated request was rejected
	// with 401 and the stored session has been cleared. The caller must send
	// the operator back through sign-in.
	ErrSessionExpired = errors.New("session expired")

	// ErrUnauthorized signals a 401 on an unauthenticated endpoint, i.e. bad
	// credentials on login.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBadRequest signals that the remote rejected the payload.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound covers unknown records and exports not yet generated.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a duplicate username on registration.
	ErrConflict = errors.New("conflict")

	// ErrServerFailure covers the whole 5xx range; the operator can only
	// retry.
	ErrServerFailure = errors.New("server failure")

	// ErrWrongFormat signals that a prospect download returned something
	// other than CSV.
	ErrWrongFormat = errors.New("unexpected download format")

	// ErrEmptyFile signals that a prospect download returned an empty body.
	ErrEmptyFile = errors.New("empty download")
)
