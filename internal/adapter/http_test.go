package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inohub/prospect-console/internal/config"
	"github.com/inohub/prospect-console/internal/logger"
	"github.com/inohub/prospect-console/models"
)

// fakeSessions is an in-memory SessionSource for gateway tests.
type fakeSessions struct {
	sess    models.Session
	loadErr error
	cleared bool
}

func (f *fakeSessions) Load(context.Context) (models.Session, error) {
	if f.loadErr != nil {
		return models.Session{}, f.loadErr
	}
	return f.sess, nil
}

func (f *fakeSessions) Clear(context.Context) error {
	f.cleared = true
	f.sess = models.Session{}
	return nil
}

func newTestGateway(t *testing.T, handler http.Handler) (APIGateway, *fakeSessions) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sessions := &fakeSessions{sess: models.Session{Token: "test-token"}}
	gw, err := NewHTTPGateway(config.Adapter{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}, sessions, logger.Nop())
	require.NoError(t, err)

	return gw, sessions
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "full url", in: "https://api.inohub.com.br/", want: "https://api.inohub.com.br"},
		{name: "host only gets scheme", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "whitespace trimmed", in: "  http://api.local  ", want: "http://api.local"},
		{name: "empty", in: "", wantErr: true},
		{name: "scheme only", in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPGateway_Login(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "admin", creds.Username)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.LoginResult{
			AccessToken: "fresh-token",
			ID:          7,
			User:        "admin",
		})
	})

	gw, sessions := newTestGateway(t, mux)

	got, err := gw.Login(context.Background(), models.Credentials{Username: "admin", Password: "Secret1!"})

	require.NoError(t, err)
	assert.Empty(t, gotAuth, "login must not carry a bearer token")
	assert.Equal(t, "fresh-token", got.AccessToken)
	assert.Equal(t, models.Session{
		Token:   "fresh-token",
		Profile: models.Profile{ID: 7, Username: "admin"},
	}, got.Session())
	assert.False(t, sessions.cleared)
}

func TestHTTPGateway_Login_BadCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	})

	gw, sessions := newTestGateway(t, mux)

	_, err := gw.Login(context.Background(), models.Credentials{Username: "admin", Password: "wrong"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.False(t, sessions.cleared, "a login 401 must not clear the stored session")
}

func TestHTTPGateway_ListProspects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /prospect/list", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "SP", q.Get("state"))
		assert.Equal(t, "1", q.Get("status"))
		assert.False(t, q.Has("id"), "empty filters must not appear in the query")
		assert.False(t, q.Has("user"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ProspectPage{
			Data: []models.ProspectJob{
				{ID: 11, UserID: 7, Status: models.JobStatusReady},
			},
			Total:      25,
			TotalPages: 3,
		})
	})

	gw, _ := newTestGateway(t, mux)

	got, err := gw.ListProspects(context.Background(), 2, 10, models.ProspectFilters{State: "SP", Status: "1"})

	require.NoError(t, err)
	assert.Equal(t, 25, got.Total)
	assert.Equal(t, 3, got.TotalPages)
	require.Len(t, got.Data, 1)
	assert.True(t, got.Data[0].Status.Ready())
}

func TestHTTPGateway_ExpiredSessionClearsStore(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /prospect/list", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	})

	gw, sessions := newTestGateway(t, mux)

	_, err := gw.ListProspects(context.Background(), 1, 10, models.ProspectFilters{})

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, sessions.cleared, "a 401 on an authenticated endpoint must clear the session before returning")
}

func TestHTTPGateway_CreateProspect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /prospect", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var spec models.ProspectSpec
		require.NoError(t, json.NewDecoder(r.Body).Decode(&spec))
		assert.Equal(t, "Padarias SP", spec.Name)
		assert.Equal(t, 1000, spec.Quantity)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.ProspectCreateResponse{
			Data: models.ProspectJob{ID: 42, UserID: 7, Filter: spec},
		})
	})

	gw, _ := newTestGateway(t, mux)

	spec := models.DefaultProspectSpec()
	spec.Name = "Padarias SP"
	spec.States = []string{"SP"}

	got, err := gw.CreateProspect(context.Background(), spec)

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.False(t, got.Status.Ready())
}

// The gateway forwards whatever spec it is handed; field validation lives in
// the service layer and can be bypassed by calling the gateway directly.
func TestHTTPGateway_CreateProspect_ForwardsEmptyName(t *testing.T) {
	var gotName *string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /prospect", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		name, ok := body["name"].(string)
		require.True(t, ok, "name must be present even when empty")
		gotName = &name

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ProspectCreateResponse{Data: models.ProspectJob{ID: 1}})
	})

	gw, _ := newTestGateway(t, mux)

	_, err := gw.CreateProspect(context.Background(), models.DefaultProspectSpec())

	require.NoError(t, err)
	require.NotNil(t, gotName)
	assert.Empty(t, *gotName)
}

func TestHTTPGateway_DownloadProspect(t *testing.T) {
	csv := "cnpj,name\n123,ACME\n"

	mux := http.NewServeMux()
	mux.HandleFunc("GET /prospect/42", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Write([]byte(csv))
	})

	gw, _ := newTestGateway(t, mux)

	got, err := gw.DownloadProspect(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "text/csv", got.ContentType)
	assert.Equal(t, []byte(csv), got.Data)
}

func TestHTTPGateway_DownloadProspect_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "wrong content type",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"error":"pending"}`))
			},
			wantErr: ErrWrongFormat,
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/csv")
			},
			wantErr: ErrEmptyFile,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "no such job", http.StatusNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /prospect/42", tt.handler)

			gw, _ := newTestGateway(t, mux)

			_, err := gw.DownloadProspect(context.Background(), 42)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPGateway_ListUsers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/users", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.UserListResponse{
			Result: models.UserPage{
				Data:        []models.UserAccount{{ID: 7, Username: "admin", Status: 1}},
				Total:       1,
				TotalPages:  1,
				CurrentPage: 1,
			},
		})
	})

	gw, _ := newTestGateway(t, mux)

	got, err := gw.ListUsers(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)
	require.Len(t, got.Data, 1)
	assert.True(t, got.Data[0].Active())
}

func TestHTTPGateway_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "rejected payload", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "bad credentials", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "unknown record", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "duplicate username", status: http.StatusConflict, wantErr: ErrConflict},
		{name: "internal error", status: http.StatusInternalServerError, wantErr: ErrServerFailure},
		{name: "gateway error", status: http.StatusBadGateway, wantErr: ErrServerFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			})
			gw, _ := newTestGateway(t, mux)

			err := gw.CreateUser(context.Background(), models.CreateUserRequest{
				Username: "maria", Email: "maria@inohub.com.br", Password: "Senha#123",
			})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPGateway_CreateUser_NoBearer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"), "registration is sent without a bearer token")

		var req models.CreateUserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "maria", req.Username)

		w.WriteHeader(http.StatusCreated)
	})

	gw, _ := newTestGateway(t, mux)

	err := gw.CreateUser(context.Background(), models.CreateUserRequest{
		Username: "maria",
		Email:    "maria@inohub.com.br",
		Password: "Secret1!",
	})

	require.NoError(t, err)
}

func TestHTTPGateway_EditUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/edit", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "7", r.URL.Query().Get("id"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "password", "blank password must be omitted from the payload")
		assert.Equal(t, "maria@inohub.com.br", body["email"])

		w.WriteHeader(http.StatusOK)
	})

	gw, _ := newTestGateway(t, mux)

	err := gw.EditUser(context.Background(), 7, models.EditUserRequest{
		Email:  "maria@inohub.com.br",
		Status: 1,
	})

	require.NoError(t, err)
}

func TestHTTPGateway_DashboardStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /dashboard", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.DashboardResponse{
			Result: models.DashboardStats{
				Users:     models.UserStats{Total: 4, Active: 3},
				Prospects: models.ProspectStats{Total: 120, Ready: 98},
				Companies: models.CompanyStats{
					Total:   1_500_000,
					ByState: []models.CountByKey{{Key: "SP", Count: 600_000}},
				},
				Revenue: models.RevenueStats{TotalDeclared: 9.5e9},
			},
		})
	})

	gw, _ := newTestGateway(t, mux)

	got, err := gw.DashboardStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, got.Users.Total)
	assert.Equal(t, 98, got.Prospects.Ready)
	require.Len(t, got.Companies.ByState, 1)
	assert.Equal(t, "SP", got.Companies.ByState[0].Key)
}

func TestHTTPGateway_NoStoredSession(t *testing.T) {
	gw, sessions := newTestGateway(t, http.NewServeMux())
	sessions.loadErr = assert.AnError

	_, err := gw.ListProspects(context.Background(), 1, 10, models.ProspectFilters{})

	assert.ErrorIs(t, err, ErrSessionExpired)
}
