package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/inohub/prospect-console/internal/logger"
	"github.com/inohub/prospect-console/internal/service"
	"github.com/inohub/prospect-console/internal/session"
	"github.com/inohub/prospect-console/internal/tui"
)

type App struct {
	services *service.Services
	tui      *tui.TUI

	logger *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, log *logger.Logger) *App {
	return &App{services: services, tui: ui, logger: log}
}

// Run drives the console lifecycle: restore the persisted session or run the
// login flow, then hand control to the admin loop. A logout (explicit or a
// rejected token) loops back to login.
func (a *App) Run() error {
	ctx := context.Background()

	sess, err := a.services.AuthService.Restore(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			return fmt.Errorf("error occured during session restore: %w", err)
		}

		sess, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	} else {
		a.logger.Info().Str("func", "*App.Run").
			Str("operator", sess.Profile.Username).
			Msg("session restored")
	}

	logout, err := a.tui.MainLoop(ctx, sess)
	if err != nil {
		return err
	}
	if logout {
		if err = a.services.AuthService.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("error occured during logout")
		}
		return a.Run()
	}

	return nil
}

var _ Client = (*App)(nil)
