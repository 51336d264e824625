package stubapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/inohub/prospect-console/internal/logger"
	"github.com/inohub/prospect-console/models"
)

// login exchanges credentials for a bearer token. The response mirrors the
// production payload: {access_token, id, user}.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	acc, ok := h.store.authenticate(creds.Username, creds.Password)
	if !ok {
		log.Warn().Str("username", creds.Username).Msg("login rejected")
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := generateToken(acc.ID, h.cfg.TokenDuration, h.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("error issuing token")
		http.Error(w, "error issuing token", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, models.LoginResult{
		AccessToken: token,
		ID:          acc.ID,
		User:        acc.Username,
	})
}

// register creates an operator account. Like the production API it requires
// no bearer token.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "username, email and password are required", http.StatusBadRequest)
		return
	}

	acc, err := h.store.createAccount(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.Err(err).Msg("error creating account")
		http.Error(w, "error creating account", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusCreated, acc)
}

// listUsers returns one page of accounts under the "result" envelope.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	h.writeJSON(w, http.StatusOK, models.UserListResponse{
		Result: h.store.listAccounts(page, limit),
	})
}

// editUser applies a partial update to the account picked by the id query
// parameter.
func (h *Handler) editUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var patch models.EditUserRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if patch.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	if err := h.store.editAccount(id, patch); err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "error updating account", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
