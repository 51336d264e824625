package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inohub/prospect-console/internal/adapter"
	"github.com/inohub/prospect-console/internal/config"
	"github.com/inohub/prospect-console/internal/service"
	"github.com/inohub/prospect-console/models"
)

// pageModel is a routed page of the main loop. capturingInput reports that
// the page currently owns the keyboard (a focused text input or an open
// form), which suspends the global page-switching hotkeys.
type pageModel interface {
	tea.Model
	capturingInput() bool
}

// mainModel routes between the admin pages once the operator is signed in.
// It owns the global hotkeys (page switching, logout, quit) and converts an
// expired session reported by any page into a logout, sending the operator
// back through the sign-in flow.
type mainModel struct {
	ctx      context.Context
	services *service.Services
	session  models.Session

	pages   map[string]pageModel
	current string

	logout bool
}

func newMainModel(ctx context.Context, services *service.Services, cfg *config.ConsoleConfig, sess models.Session) mainModel {
	prospects := newProspectsModel(ctx, services.ProspectService, cfg.Storage.DownloadDir)

	return mainModel{
		ctx:      ctx,
		services: services,
		session:  sess,
		pages: map[string]pageModel{
			"dashboard":     newDashboardModel(ctx, services.DashboardService),
			"prospects":     prospects,
			"prospect-form": newProspectFormModel(ctx, services.ProspectService),
			"users":         newUsersModel(ctx, services.UserService),
			"user-form":     newUserFormModel(ctx, services.UserService),
		},
		current: "dashboard",
	}
}

func (m mainModel) Init() tea.Cmd {
	return m.pages[m.current].Init()
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// An expired session on any page ends the loop; the store is already
	// cleared by the time the gateway reports it.
	if err := messageError(msg); err != nil && errors.Is(err, adapter.ErrSessionExpired) {
		m.logout = true
		return m, tea.Quit
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if !m.pages[m.current].capturingInput() {
			switch key.String() {
			case "1":
				return m.switchTo("dashboard")
			case "2":
				return m.switchTo("prospects")
			case "3":
				return m.switchTo("users")
			case "l":
				m.logout = true
				return m, tea.Quit
			case "q":
				return m, tea.Quit
			}
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		if _, exists := m.pages[nav.Page]; !exists {
			return m, nil
		}

		m.current = nav.Page
		if nav.Payload != nil {
			return m, func() tea.Msg { return nav.Payload }
		}
		return m, m.pages[m.current].Init()
	}

	updated, cmd := m.pages[m.current].Update(msg)
	if page, ok := updated.(pageModel); ok {
		m.pages[m.current] = page
	}
	return m, cmd
}

func (m mainModel) View() string {
	header := fmt.Sprintf("INOHUB PROSPECT  •  operador: %s  •  1: painel │ 2: prospecções │ 3: usuários │ l: sair da conta",
		m.session.Profile.Username)

	return titleStyle.Render(header) + "\n" + m.pages[m.current].View()
}

func (m mainModel) switchTo(page string) (tea.Model, tea.Cmd) {
	if m.current == page {
		return m, nil
	}
	m.current = page
	return m, m.pages[page].Init()
}

// messageError extracts the error carried by async result messages.
func messageError(msg tea.Msg) error {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		return msg.err
	case prospectsLoadedMsg:
		return msg.err
	case prospectCreatedMsg:
		return msg.err
	case downloadDoneMsg:
		return msg.err
	case usersLoadedMsg:
		return msg.err
	case userSavedMsg:
		return msg.err
	default:
		return nil
	}
}
