package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/inohub/prospect-console/internal/adapter"
	"github.com/inohub/prospect-console/internal/logger"
	"github.com/inohub/prospect-console/models"
)

type authService struct {
	adapter  adapter.APIGateway
	sessions SessionStore
	logger   *logger.Logger
}

// NewAuthService constructs an [AuthService] backed by the provided gateway
// and session store.
func NewAuthService(gateway adapter.APIGateway, sessions SessionStore, logger *logger.Logger) AuthService {
	return &authService{adapter: gateway, sessions: sessions, logger: logger}
}

// Login implements [AuthService]. It exchanges the credentials for a bearer
// token and profile, persists them as one session, and returns it. If the
// session cannot be persisted the login is reported as failed, so the caller
// never holds a token the next run would not see.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return models.Session{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	result, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Session{}, err
	}

	sess := result.Session()
	if err := a.sessions.Save(ctx, sess); err != nil {
		a.logger.Err(err).Str("func", "*authService.Login").Msg("error persisting session")
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}

	a.logger.Debug().Str("func", "*authService.Login").Str("user", sess.Profile.Username).Msg("operator signed in")
	return sess, nil
}

// Restore implements [AuthService]. It loads the session persisted by a
// previous run; session.ErrNoSession means the operator must sign in.
func (a *authService) Restore(ctx context.Context) (models.Session, error) {
	return a.sessions.Load(ctx)
}

// Logout implements [AuthService].
func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		a.logger.Err(err).Str("func", "*authService.Logout").Msg("error clearing session")
		return err
	}

	a.logger.Debug().Str("func", "*authService.Logout").Msg("operator signed out")
	return nil
}
