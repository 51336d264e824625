// Package adapter provides the transport layer for communicating with the
// remote prospecting API.
//
// The primary abstraction is [APIGateway], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPGateway]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrSessionExpired] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/inohub/prospect-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_gateway_mock.go -package=mock

// APIGateway defines transport-agnostic communication with the remote
// prospecting API. Implementations are responsible for serialisation, bearer
// token management, and mapping transport-level errors to the sentinel values
// defined in this package.
type APIGateway interface {
	// Login exchanges the operator credentials for a bearer token and
	// profile. It is the only operation sent without an Authorization header,
	// and a 401 response means bad credentials rather than an expired
	// session.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error)

	// ListProspects fetches one page of prospect jobs. Non-empty filter
	// fields are forwarded as query parameters alongside page and limit.
	ListProspects(ctx context.Context, page, limit int, filters models.ProspectFilters) (models.ProspectPage, error)

	// CreateProspect submits a new extraction job and returns the created
	// record. The payload is forwarded as-is; field validation happens in the
	// service layer.
	CreateProspect(ctx context.Context, spec models.ProspectSpec) (models.ProspectJob, error)

	// DownloadProspect fetches the generated export for a job. Returns
	// [ErrWrongFormat] if the response is not CSV and [ErrEmptyFile] if the
	// body is empty.
	DownloadProspect(ctx context.Context, id int64) (models.ProspectFile, error)

	// ListUsers fetches one page of operator accounts.
	ListUsers(ctx context.Context, page, limit int) (models.UserPage, error)

	// CreateUser registers a new operator account. Sent without an
	// Authorization header, matching the remote contract.
	CreateUser(ctx context.Context, req models.CreateUserRequest) error

	// EditUser updates the account identified by id. A blank password in the
	// patch is omitted from the payload so the remote keeps the current one.
	EditUser(ctx context.Context, id int64, patch models.EditUserRequest) error

	// DashboardStats fetches the aggregated dashboard counters.
	DashboardStats(ctx context.Context) (models.DashboardStats, error)
}

// SessionSource is the slice of the session store the gateway needs: the
// current token before each authenticated request, and invalidation when the
// remote rejects it.
type SessionSource interface {
	Load(ctx context.Context) (models.Session, error)
	Clear(ctx context.Context) error
}
