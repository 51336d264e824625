package adapter

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/inohub/prospect-console/internal/config"
	"github.com/inohub/prospect-console/internal/logger"
	"github.com/inohub/prospect-console/models"
)

type httpGateway struct {
	client   *resty.Client
	sessions SessionSource

	logger *logger.Logger
}

// NewHTTPGateway constructs an HTTP/REST implementation of [APIGateway]. It
// normalises and validates the base URL from adapterCfg.BaseURL and
// configures the underlying resty client with the resolved base URL and
// request timeout. The bearer token is read from sessions before every
// authenticated request, so a session saved by one component is immediately
// visible to the gateway.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPGateway(adapterCfg config.Adapter, sessions SessionSource, logger *logger.Logger) (APIGateway, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpGateway{client: client, sessions: sessions, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// authedRequest prepares a request carrying the stored bearer token. Fails
// with [ErrSessionExpired] when no session is persisted, since every
// authenticated endpoint would reject the call anyway.
func (h *httpGateway) authedRequest(ctx context.Context) (*resty.Request, error) {
	sess, err := h.sessions.Load(ctx)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpGateway.authedRequest").Msg("error loading stored session")
		return nil, fmt.Errorf("%w: no stored token", ErrSessionExpired)
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(sess.Token), nil
}

// mapAuthedError maps a non-2xx response on an authenticated endpoint. A 401
// clears the persisted session before returning, so by the time the caller
// sees [ErrSessionExpired] the store already holds nothing.
func (h *httpGateway) mapAuthedError(ctx context.Context, resp *resty.Response) error {
	err := mapHTTPError(resp)
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrUnauthorized) {
		if clearErr := h.sessions.Clear(ctx); clearErr != nil {
			h.logger.Err(clearErr).Str("func", "*httpGateway.mapAuthedError").Msg("error clearing rejected session")
		}
		return fmt.Errorf("%w: %s", ErrSessionExpired, strings.TrimSpace(string(resp.Body())))
	}

	return err
}

// Login implements [APIGateway]. It POSTs the credentials to
// POST /auth/login. No Authorization header is attached and a 401 maps to
// [ErrUnauthorized] (bad credentials), never to [ErrSessionExpired].
func (h *httpGateway) Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	var result models.LoginResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	return result, nil
}

// ListProspects implements [APIGateway]. It GETs /prospect/list with page,
// limit, and the non-empty filter fields as query parameters.
func (h *httpGateway) ListProspects(ctx context.Context, page, limit int, filters models.ProspectFilters) (models.ProspectPage, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.ProspectPage{}, err
	}

	var result models.ProspectPage

	resp, err := req.
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParamsFromValues(filters.Values()).
		SetResult(&result).
		Get("/prospect/list")
	if err != nil {
		return models.ProspectPage{}, fmt.Errorf("list prospects request: %w", err)
	}
	if err = h.mapAuthedError(ctx, resp); err != nil {
		return models.ProspectPage{}, err
	}

	return result, nil
}

// CreateProspect implements [APIGateway]. It POSTs the job spec to
// POST /prospect and returns the created record from the "data" envelope.
func (h *httpGateway) CreateProspect(ctx context.Context, spec models.ProspectSpec) (models.ProspectJob, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.ProspectJob{}, err
	}

	var result models.ProspectCreateResponse

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(spec).
		SetResult(&result).
		Post("/prospect")
	if err != nil {
		return models.ProspectJob{}, fmt.Errorf("create prospect request: %w", err)
	}
	if err = h.mapAuthedError(ctx, resp); err != nil {
		return models.ProspectJob{}, err
	}

	return result.Data, nil
}

// DownloadProspect implements [APIGateway]. It GETs /prospect/{id} and
// returns the raw export bytes. The response must declare a text/csv media
// type ([ErrWrongFormat]) and carry a non-empty body ([ErrEmptyFile]); a 404
// maps to [ErrNotFound] via the shared status mapping.
func (h *httpGateway) DownloadProspect(ctx context.Context, id int64) (models.ProspectFile, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.ProspectFile{}, err
	}

	resp, err := req.Get(fmt.Sprintf("/prospect/%d", id))
	if err != nil {
		return models.ProspectFile{}, fmt.Errorf("download prospect request: %w", err)
	}
	if err = h.mapAuthedError(ctx, resp); err != nil {
		return models.ProspectFile{}, err
	}

	contentType := resp.Header().Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "text/csv" {
		h.logger.Warn().Str("func", "*httpGateway.DownloadProspect").Str("content_type", contentType).Msg("download is not csv")
		return models.ProspectFile{}, fmt.Errorf("%w: %q", ErrWrongFormat, contentType)
	}

	body := resp.Body()
	if len(body) == 0 {
		return models.ProspectFile{}, ErrEmptyFile
	}

	return models.ProspectFile{ContentType: mediaType, Data: body}, nil
}

// ListUsers implements [APIGateway]. It GETs /auth/users and unwraps the
// "result" envelope.
func (h *httpGateway) ListUsers(ctx context.Context, page, limit int) (models.UserPage, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.UserPage{}, err
	}

	var result models.UserListResponse

	resp, err := req.
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&result).
		Get("/auth/users")
	if err != nil {
		return models.UserPage{}, fmt.Errorf("list users request: %w", err)
	}
	if err = h.mapAuthedError(ctx, resp); err != nil {
		return models.UserPage{}, err
	}

	return result.Result, nil
}

// CreateUser implements [APIGateway]. It POSTs the registration payload to
// POST /auth/register. The remote accepts registration without a bearer
// token, so none is attached and a 401 is reported as-is.
func (h *httpGateway) CreateUser(ctx context.Context, createReq models.CreateUserRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(createReq).
		Post("/auth/register")
	if err != nil {
		return fmt.Errorf("create user request: %w", err)
	}

	return mapHTTPError(resp)
}

// EditUser implements [APIGateway]. It POSTs the patch to
// POST /auth/edit?id={id}. A blank password is absent from the payload via
// the model's omitempty tag.
func (h *httpGateway) EditUser(ctx context.Context, id int64, patch models.EditUserRequest) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetQueryParam("id", strconv.FormatInt(id, 10)).
		SetBody(patch).
		Post("/auth/edit")
	if err != nil {
		return fmt.Errorf("edit user request: %w", err)
	}

	return h.mapAuthedError(ctx, resp)
}

// DashboardStats implements [APIGateway]. It GETs /dashboard and unwraps the
// "result" envelope.
func (h *httpGateway) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}

	var result models.DashboardResponse

	resp, err := req.
		SetResult(&result).
		Get("/dashboard")
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard request: %w", err)
	}
	if err = h.mapAuthedError(ctx, resp); err != nil {
		return models.DashboardStats{}, err
	}

	return result.Result, nil
}
