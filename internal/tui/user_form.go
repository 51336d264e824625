package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inohub/prospect-console/internal/service"
	"github.com/inohub/prospect-console/models"
)

const (
	userFieldUsername = iota
	userFieldEmail
	userFieldPassword
	userFieldStatus
	userFieldCount
)

// userFormModel serves both account creation and editing. In edit mode the
// username is fixed, a blank password keeps the current one, and the status
// field becomes editable.
type userFormModel struct {
	ctx   context.Context
	users service.UserService

	editing bool
	account models.UserAccount

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newUserFormModel(ctx context.Context, users service.UserService) *userFormModel {
	inputs := make([]textinput.Model, userFieldCount)

	usernameInput := textinput.New()
	usernameInput.Placeholder = "usuário"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	inputs[userFieldUsername] = usernameInput

	emailInput := textinput.New()
	emailInput.Placeholder = "e-mail"
	emailInput.CharLimit = 128
	emailInput.Width = 40
	inputs[userFieldEmail] = emailInput

	passwordInput := textinput.New()
	passwordInput.Placeholder = "senha"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	inputs[userFieldPassword] = passwordInput

	statusInput := textinput.New()
	statusInput.Placeholder = "situação: 1 ativo, 0 inativo"
	statusInput.CharLimit = 1
	statusInput.Width = 10
	inputs[userFieldStatus] = statusInput

	return &userFormModel{
		ctx:    ctx,
		users:  users,
		inputs: inputs,
	}
}

func (m *userFormModel) capturingInput() bool { return true }

// Init prepares the form in create mode. Edit mode arrives afterwards as an
// [editUserMsg] navigation payload.
func (m *userFormModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m *userFormModel) reset() {
	m.editing = false
	m.account = models.UserAccount{}
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = userFieldUsername
	m.inputs[m.focus].Focus()
	m.submitting = false
	m.errMsg = ""
}

func (m *userFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editUserMsg:
		m.reset()
		m.editing = true
		m.account = msg.account
		m.inputs[userFieldUsername].SetValue(msg.account.Username)
		m.inputs[userFieldEmail].SetValue(msg.account.Email)
		m.inputs[userFieldStatus].SetValue(fmt.Sprintf("%d", msg.account.Status))
		m.focusField(userFieldEmail)
		return m, textinput.Blink

	case userSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}

		notice := "Usuário criado"
		if !msg.created {
			notice = "Usuário atualizado"
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: "users", Payload: statusNoticeMsg{text: notice}}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "users"} }
		case "tab", "down":
			m.focusField(m.nextField(1))
			return m, nil
		case "shift+tab", "up":
			m.focusField(m.nextField(-1))
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	return m, nil
}

// nextField steps the focus, skipping fields the current mode locks: the
// username is fixed in edit mode and the status is fixed on creation.
func (m *userFormModel) nextField(step int) int {
	idx := m.focus
	for {
		idx = (idx + step + len(m.inputs)) % len(m.inputs)
		if m.editing && idx == userFieldUsername {
			continue
		}
		if !m.editing && idx == userFieldStatus {
			continue
		}
		return idx
	}
}

func (m *userFormModel) focusField(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

func (m *userFormModel) submit() (tea.Model, tea.Cmd) {
	email := strings.TrimSpace(m.inputs[userFieldEmail].Value())
	password := m.inputs[userFieldPassword].Value()

	if m.editing {
		var status int
		switch strings.TrimSpace(m.inputs[userFieldStatus].Value()) {
		case "0":
			status = 0
		case "1":
			status = 1
		default:
			m.errMsg = "Situação deve ser 0 ou 1"
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdEdit(m.account.ID, models.EditUserRequest{
			Email:    email,
			Password: password,
			Status:   status,
		})
	}

	username := strings.TrimSpace(m.inputs[userFieldUsername].Value())
	if username == "" || email == "" || password == "" {
		m.errMsg = "Usuário, e-mail e senha são obrigatórios"
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true
	return m, m.cmdCreate(models.CreateUserRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
}

func (m *userFormModel) View() string {
	title := "NOVO USUÁRIO"
	if m.editing {
		title = fmt.Sprintf("EDITAR USUÁRIO %d", m.account.ID)
	}

	var b strings.Builder
	b.WriteString("Campo     │ Valor\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")

	if m.editing {
		b.WriteString(fmt.Sprintf("Usuário   │ %s (fixo)\n", m.account.Username))
	} else {
		b.WriteString(fmt.Sprintf("Usuário   │ [%s]\n", m.inputs[userFieldUsername].View()))
	}
	b.WriteString(fmt.Sprintf("E-mail    │ [%s]\n", m.inputs[userFieldEmail].View()))
	b.WriteString(fmt.Sprintf("Senha     │ [%s]\n", m.inputs[userFieldPassword].View()))
	if m.editing {
		b.WriteString(helpStyle.Render("            senha vazia mantém a atual") + "\n")
		b.WriteString(fmt.Sprintf("Situação  │ [%s]\n", m.inputs[userFieldStatus].View()))
	}

	if m.submitting {
		b.WriteString("\n[Salvando...]\n")
	} else {
		b.WriteString("\n[Salvar]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nErro: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: próximo campo │ enter: salvar │ esc: voltar")
}

func (m *userFormModel) cmdCreate(req models.CreateUserRequest) tea.Cmd {
	ctx := m.ctx
	users := m.users

	return func() tea.Msg {
		return userSavedMsg{created: true, err: users.Create(ctx, req)}
	}
}

func (m *userFormModel) cmdEdit(id int64, patch models.EditUserRequest) tea.Cmd {
	ctx := m.ctx
	users := m.users

	return func() tea.Msg {
		return userSavedMsg{created: false, err: users.Edit(ctx, id, patch)}
	}
}
