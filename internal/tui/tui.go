// Package tui implements the interactive terminal console: a login flow and
// the main admin loop with dashboard, prospect, and account pages.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inohub/prospect-console/internal/config"
	"github.com/inohub/prospect-console/internal/logger"
	"github.com/inohub/prospect-console/internal/service"
	"github.com/inohub/prospect-console/models"
)

// ErrUserQuit reports that the operator closed the program from the login
// screen instead of signing in.
var ErrUserQuit = errors.New("saiu do programa")

type TUI struct {
	services *service.Services
	cfg      *config.ConsoleConfig

	logger *logger.Logger
}

func New(services *service.Services, cfg *config.ConsoleConfig, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, cfg: cfg, logger: log}, nil
}

// LoginFlow runs the sign-in program and returns the freshly persisted
// session. Returns [ErrUserQuit] when the operator quits without signing in.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	root := NewRootModel(map[string]tea.Model{
		"login": NewLoginModel(ctx, t.services.AuthService),
	}, "login")

	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the admin program for a signed-in operator. logout reports
// that the operator must go through sign-in again, either because they logged
// out or because the server rejected the stored token.
func (t *TUI) MainLoop(ctx context.Context, sess models.Session) (logout bool, err error) {
	model := newMainModel(ctx, t.services, t.cfg, sess)

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
