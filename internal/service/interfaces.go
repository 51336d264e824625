// Package service implements the console's application logic on top of the
// transport gateway: session lifecycle, list pagination rules, prospect job
// creation and download, account management, and input validation.
package service

import (
	"context"

	"github.com/inohub/prospect-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore persists the operator's session between console runs.
type SessionStore interface {
	// Save replaces the persisted session.
	Save(ctx context.Context, sess models.Session) error

	// Load returns the persisted session, or session.ErrNoSession when none
	// exists.
	Load(ctx context.Context) (models.Session, error)

	// Clear removes the persisted session.
	Clear(ctx context.Context) error
}

// AuthService manages the operator's sign-in state.
type AuthService interface {
	// Login exchanges credentials for a session and persists it.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Restore loads a previously persisted session, or session.ErrNoSession.
	Restore(ctx context.Context) (models.Session, error)

	// Logout clears the persisted session.
	Logout(ctx context.Context) error
}

// ProspectService manages lead-extraction jobs.
type ProspectService interface {
	// List fetches one page of jobs, clamping limit to [1,50] and the page
	// into the range the server reports.
	List(ctx context.Context, page, limit int, filters models.ProspectFilters) (models.ProspectPage, error)

	// Create validates the spec and submits it.
	Create(ctx context.Context, spec models.ProspectSpec) (models.ProspectJob, error)

	// Download fetches the export of a ready job and saves it into dir,
	// returning the written path. Refuses non-ready jobs with
	// [ErrJobNotReady].
	Download(ctx context.Context, job models.ProspectJob, dir string) (string, error)
}

// UserService manages operator accounts.
type UserService interface {
	// List fetches one page of accounts, clamping limit to [1,50] and the
	// page into the range the server reports.
	List(ctx context.Context, page, limit int) (models.UserPage, error)

	// Create validates and registers a new account.
	Create(ctx context.Context, req models.CreateUserRequest) error

	// Edit validates and applies a partial account update.
	Edit(ctx context.Context, id int64, patch models.EditUserRequest) error
}

// DashboardService reads the precomputed dashboard statistics.
type DashboardService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}
