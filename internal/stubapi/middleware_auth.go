package stubapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/inohub/prospect-console/internal/logger"
)

type ctxKey string

// accountIDCtxKey carries the authenticated account ID through the request
// context.
const accountIDCtxKey ctxKey = "accountID"

// auth enforces bearer-token authentication. It extracts the token from the
// Authorization header, validates it, and stores the account ID in the
// request context before delegating to the next handler. Requests with a
// missing, malformed, expired, or otherwise invalid token are rejected with
// HTTP 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		accountID, err := parseToken(tokenString, h.cfg.TokenSignKey)
		if err != nil {
			log.Err(err).Msg("token rejected")
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), accountIDCtxKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getTokenFromAuthHeader(header string) (string, error) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrInvalidAuthorizationHeader
	}

	return strings.TrimSpace(token), nil
}

// accountIDFromContext returns the account ID stored by the auth middleware.
func accountIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(accountIDCtxKey).(int64)
	return id
}
