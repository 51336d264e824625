package stubapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inohub/prospect-console/internal/config"
	"github.com/inohub/prospect-console/internal/logger"
	"github.com/inohub/prospect-console/models"
)

func newTestServer(t *testing.T, readyAfter time.Duration) *httptest.Server {
	t.Helper()

	handler, err := NewHandler(&config.ServerConfig{
		Address:       ":0",
		TokenSignKey:  "test-sign-key",
		TokenDuration: time.Hour,
		ReadyAfter:    readyAfter,
	}, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	return srv
}

func doJSON(t *testing.T, method, url, token string, body, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp
}

func loginSeed(t *testing.T, srv *httptest.Server) models.LoginResult {
	t.Helper()

	var result models.LoginResult
	resp := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "",
		models.Credentials{Username: seedUsername, Password: seedPassword}, &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, result.AccessToken)

	return result
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t, time.Hour)

	got := loginSeed(t, srv)

	assert.Equal(t, seedUsername, got.User)
	assert.Equal(t, int64(1), got.ID)
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := newTestServer(t, time.Hour)

	resp := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "",
		models.Credentials{Username: seedUsername, Password: "wrong"}, nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTraceID_Generated(t *testing.T) {
	srv := newTestServer(t, time.Hour)

	resp := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "",
		models.Credentials{Username: seedUsername, Password: seedPassword}, nil)

	traceID := resp.Header.Get("X-Trace-ID")
	require.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}

func TestTraceID_EchoedFromRequest(t *testing.T) {
	srv := newTestServer(t, time.Hour)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/dashboard", nil)
	require.NoError(t, err)
	req.Header.Set("X-Trace-ID", "caller-supplied-id")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "caller-supplied-id", resp.Header.Get("X-Trace-ID"))
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t, time.Hour)

	for _, path := range []string{"/auth/users", "/prospect/list", "/dashboard"} {
		t.Run(path, func(t *testing.T) {
			resp := doJSON(t, http.MethodGet, srv.URL+path, "", nil, nil)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAuth_GarbageToken(t *testing.T) {
	srv := newTestServer(t, time.Hour)

	resp := doJSON(t, http.MethodGet, srv.URL+"/dashboard", "not-a-jwt", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegister(t *testing.T) {
	srv := newTestServer(t, time.Hour)

	var created models.UserAccount
	resp := doJSON(t, http.MethodPost, srv.URL+"/auth/register", "",
		models.CreateUserRequest{Username: "maria", Email: "maria@inohub.com.br", Password: "Senha#123"}, &created)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "maria", created.Username)
	assert.True(t, created.Active())

	// duplicate username conflicts
	resp = doJSON(t, http.MethodPost, srv.URL+"/auth/register", "",
		models.CreateUserRequest{Username: "maria", Email: "other@inohub.com.br", Password: "Senha#123"}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// the new account can sign in
	resp = doJSON(t, http.MethodPost, srv.URL+"/auth/login", "",
		models.Credentials{Username: "maria", Password: "Senha#123"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListUsers_Pagination(t *testing.T) {
	srv := newTestServer(t, time.Hour)
	token := loginSeed(t, srv).AccessToken

	for i := 0; i < 11; i++ {
		resp := doJSON(t, http.MethodPost, srv.URL+"/auth/register", "",
			models.CreateUserRequest{
				Username: fmt.Sprintf("operator%02d", i),
				Email:    fmt.Sprintf("operator%02d@inohub.com.br", i),
				Password: "Senha#123",
			}, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	// 12 accounts at 5 per page give 3 pages
	var listing models.UserListResponse
	resp := doJSON(t, http.MethodGet, srv.URL+"/auth/users?page=3&limit=5", token, nil, &listing)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 12, listing.Result.Total)
	assert.Equal(t, 3, listing.Result.TotalPages)
	assert.Equal(t, 3, listing.Result.CurrentPage)
	assert.Len(t, listing.Result.Data, 2)
}

func TestEditUser(t *testing.T) {
	srv := newTestServer(t, time.Hour)
	token := loginSeed(t, srv).AccessToken

	resp := doJSON(t, http.MethodPost, srv.URL+"/auth/edit?id=1", token,
		models.EditUserRequest{Email: "root@inohub.com.br", Status: 0}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing models.UserListResponse
	doJSON(t, http.MethodGet, srv.URL+"/auth/users", token, nil, &listing)
	require.NotEmpty(t, listing.Result.Data)
	assert.Equal(t, "root@inohub.com.br", listing.Result.Data[0].Email)
	assert.False(t, listing.Result.Data[0].Active())

	// deactivated accounts cannot sign in anymore
	resp = doJSON(t, http.MethodPost, srv.URL+"/auth/login", "",
		models.Credentials{Username: seedUsername, Password: seedPassword}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEditUser_NotFound(t *testing.T) {
	srv := newTestServer(t, time.Hour)
	token := loginSeed(t, srv).AccessToken

	resp := doJSON(t, http.MethodPost, srv.URL+"/auth/edit?id=999", token,
		models.EditUserRequest{Email: "x@y.com", Status: 1}, nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProspectLifecycle(t *testing.T) {
	srv := newTestServer(t, 0) // jobs are ready immediately
	login := loginSeed(t, srv)

	spec := models.DefaultProspectSpec()
	spec.Name = "Padarias SP"
	spec.States = []string{"SP"}

	var created models.ProspectCreateResponse
	resp := doJSON(t, http.MethodPost, srv.URL+"/prospect", login.AccessToken, spec, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, login.ID, created.Data.UserID)
	assert.Equal(t, "Padarias SP", created.Data.Filter.Name)

	// listed and already ready
	var page models.ProspectPage
	resp = doJSON(t, http.MethodGet, srv.URL+"/prospect/list?page=1&limit=10", login.AccessToken, nil, &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, page.Data, 1)
	assert.True(t, page.Data[0].Status.Ready())

	// download serves csv
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/prospect/%d", srv.URL, created.Data.ID), nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)

	dlResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer dlResp.Body.Close()

	require.Equal(t, http.StatusOK, dlResp.StatusCode)
	assert.Contains(t, dlResp.Header.Get("Content-Type"), "text/csv")

	body, err := io.ReadAll(dlResp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	assert.Equal(t, "cnpj,razao_social,uf,municipio,email,telefone", lines[0])
	assert.Len(t, lines, maxExportRows+1, "quantity above the cap is truncated")
	assert.Contains(t, lines[1], ",SP,")
}

func TestProspectPendingDownloadIs404(t *testing.T) {
	srv := newTestServer(t, time.Hour) // jobs never become ready in this test
	login := loginSeed(t, srv)

	spec := models.DefaultProspectSpec()
	spec.Name = "Ainda pendente"

	var created models.ProspectCreateResponse
	doJSON(t, http.MethodPost, srv.URL+"/prospect", login.AccessToken, spec, &created)

	resp := doJSON(t, http.MethodGet, fmt.Sprintf("%s/prospect/%d", srv.URL, created.Data.ID), login.AccessToken, nil, nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProspectList_Filters(t *testing.T) {
	srv := newTestServer(t, 0)
	login := loginSeed(t, srv)

	for _, state := range []string{"SP", "MG", "SP"} {
		spec := models.DefaultProspectSpec()
		spec.Name = "Empresas " + state
		spec.States = []string{state}
		doJSON(t, http.MethodPost, srv.URL+"/prospect", login.AccessToken, spec, nil)
	}

	query := url.Values{"state": {"sp"}}.Encode()

	var page models.ProspectPage
	resp := doJSON(t, http.MethodGet, srv.URL+"/prospect/list?"+query, login.AccessToken, nil, &page)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, page.Total, "state filter matches case-insensitively")

	// status filter: everything is ready with a zero delay
	var readyPage models.ProspectPage
	doJSON(t, http.MethodGet, srv.URL+"/prospect/list?status=1", login.AccessToken, nil, &readyPage)
	assert.Equal(t, 3, readyPage.Total)

	var pendingPage models.ProspectPage
	doJSON(t, http.MethodGet, srv.URL+"/prospect/list?status=0", login.AccessToken, nil, &pendingPage)
	assert.Zero(t, pendingPage.Total)
}

func TestDashboard(t *testing.T) {
	srv := newTestServer(t, 0)
	login := loginSeed(t, srv)

	spec := models.DefaultProspectSpec()
	spec.Name = "Qualquer"
	doJSON(t, http.MethodPost, srv.URL+"/prospect", login.AccessToken, spec, nil)

	var stats models.DashboardResponse
	resp := doJSON(t, http.MethodGet, srv.URL+"/dashboard", login.AccessToken, nil, &stats)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, stats.Result.Users.Total)
	assert.Equal(t, 1, stats.Result.Users.Active)
	assert.Equal(t, 1, stats.Result.Prospects.Total)
	assert.Equal(t, 1, stats.Result.Prospects.Ready)
	assert.NotZero(t, stats.Result.Companies.Total)
	assert.NotEmpty(t, stats.Result.Companies.ByState)
}
