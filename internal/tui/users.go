package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inohub/prospect-console/internal/service"
	"github.com/inohub/prospect-console/models"
)

// usersModel is the operator account listing page. Fetches carry the same
// generation counter as the prospect listing so stale responses are dropped.
type usersModel struct {
	ctx   context.Context
	users service.UserService

	accounts   []models.UserAccount
	idx        int
	page       int
	totalPages int
	total      int
	limit      int

	gen     int
	loading bool
	status  string
	errMsg  string
}

func newUsersModel(ctx context.Context, users service.UserService) *usersModel {
	return &usersModel{
		ctx:     ctx,
		users:   users,
		page:    1,
		limit:   defaultPageLimit,
		loading: true,
	}
}

func (m *usersModel) capturingInput() bool { return false }

func (m *usersModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *usersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		if msg.gen != m.gen {
			// superseded by a newer request
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.accounts = msg.page.Data
		m.total = msg.page.Total
		m.totalPages = msg.page.TotalPages
		m.page = msg.page.CurrentPage
		if m.idx >= len(m.accounts) {
			m.idx = len(m.accounts) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case statusNoticeMsg:
		m.status = msg.text
		m.loading = true
		return m, m.cmdLoad()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "E-mail copiado para a área de transferência"
		return m, nil

	case tea.KeyMsg:
		return m.updateList(msg)
	}

	return m, nil
}

func (m *usersModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.accounts)-1 {
			m.idx++
		}
	case "left":
		if m.page > 1 && !m.loading {
			m.page--
			m.loading = true
			return m, m.cmdLoad()
		}
	case "right":
		if m.page < m.totalPages && !m.loading {
			m.page++
			m.loading = true
			return m, m.cmdLoad()
		}
	case "r":
		if !m.loading {
			m.loading = true
			return m, m.cmdLoad()
		}
	case "n":
		m.status = ""
		return m, func() tea.Msg { return NavigateTo{Page: "user-form"} }
	case "e":
		if acc, ok := m.currentAccount(); ok {
			m.status = ""
			return m, func() tea.Msg {
				return NavigateTo{Page: "user-form", Payload: editUserMsg{account: acc}}
			}
		}
	case "c":
		if acc, ok := m.currentAccount(); ok {
			email := acc.Email
			return m, func() tea.Msg {
				return copiedMsg{err: clipboard.WriteAll(email)}
			}
		}
	}

	return m, nil
}

func (m *usersModel) currentAccount() (models.UserAccount, bool) {
	if len(m.accounts) == 0 || m.idx < 0 || m.idx >= len(m.accounts) {
		return models.UserAccount{}, false
	}
	return m.accounts[m.idx], true
}

func (m *usersModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Carregando...\n")
	case len(m.accounts) == 0:
		b.WriteString("Nenhum usuário encontrado\n")
	default:
		b.WriteString(fmt.Sprintf("  %-6s │ %-16s │ %-30s │ %s\n", "ID", "Usuário", "E-mail", "Situação"))
		b.WriteString("  " + strings.Repeat("─", 70) + "\n")
		for i, acc := range m.accounts {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			situation := "ativo"
			if !acc.Active() {
				situation = "inativo"
			}
			b.WriteString(fmt.Sprintf("%s%-6d │ %-16s │ %-30s │ %s\n",
				cursor, acc.ID, fitText(acc.Username, 16), fitText(acc.Email, 30), situation))
		}
	}

	b.WriteString(fmt.Sprintf("\npágina %d/%d │ %d registros",
		m.page, maxInt(m.totalPages, 1), m.total))

	if m.status != "" {
		b.WriteString("\nOK: " + m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	return renderPage("USUÁRIOS", strings.TrimRight(b.String(), "\n"),
		"n: novo │ e: editar │ c: copiar e-mail │ ←/→: página │ r: atualizar")
}

func (m *usersModel) cmdLoad() tea.Cmd {
	m.gen++

	ctx := m.ctx
	users := m.users
	gen := m.gen
	page, limit := m.page, m.limit

	return func() tea.Msg {
		result, err := users.List(ctx, page, limit)
		return usersLoadedMsg{page: result, gen: gen, err: err}
	}
}
