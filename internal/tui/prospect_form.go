package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inohub/prospect-console/internal/service"
	"github.com/inohub/prospect-console/models"
)

const (
	prospectFieldName = iota
	prospectFieldStates
	prospectFieldCities
	prospectFieldNeighborhoods
	prospectFieldQuantity
	prospectFieldFormat
	prospectFieldCount
)

// prospectFormModel is the "new prospect" form. It collects the fields an
// operator actually fills in and submits a spec built on top of the console
// defaults; everything else keeps its zero value.
type prospectFormModel struct {
	ctx       context.Context
	prospects service.ProspectService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newProspectFormModel(ctx context.Context, prospects service.ProspectService) *prospectFormModel {
	labels := []struct {
		placeholder string
		width       int
	}{
		{placeholder: "nome da prospecção", width: 40},
		{placeholder: "UFs separadas por vírgula (ex: SP,MG)", width: 40},
		{placeholder: "municípios separados por vírgula", width: 40},
		{placeholder: "bairros separados por vírgula", width: 40},
		{placeholder: "quantidade (padrão 1000)", width: 20},
		{placeholder: "formato: csv ou xlsx (padrão csv)", width: 20},
	}

	inputs := make([]textinput.Model, prospectFieldCount)
	for i, l := range labels {
		in := textinput.New()
		in.Placeholder = l.placeholder
		in.CharLimit = 256
		in.Width = l.width
		inputs[i] = in
	}
	inputs[prospectFieldName].Focus()

	return &prospectFormModel{
		ctx:       ctx,
		prospects: prospects,
		inputs:    inputs,
	}
}

func (m *prospectFormModel) capturingInput() bool { return true }

func (m *prospectFormModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m *prospectFormModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = prospectFieldName
	m.inputs[m.focus].Focus()
	m.submitting = false
	m.errMsg = ""
}

func (m *prospectFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(prospectCreatedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}

		notice := fmt.Sprintf("Prospecção %d criada", result.job.ID)
		return m, func() tea.Msg {
			return NavigateTo{Page: "prospects", Payload: statusNoticeMsg{text: notice}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "prospects"} }
		case "tab", "down":
			m.focusField((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.focusField((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			spec, err := m.buildSpec()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdCreate(spec)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *prospectFormModel) focusField(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

// buildSpec assembles the job spec from the form, applying the console
// defaults for everything the operator left blank.
func (m *prospectFormModel) buildSpec() (models.ProspectSpec, error) {
	spec := models.DefaultProspectSpec()

	spec.Name = strings.TrimSpace(m.inputs[prospectFieldName].Value())
	if spec.Name == "" {
		return models.ProspectSpec{}, fmt.Errorf("o nome é obrigatório")
	}

	spec.States = splitCSVField(m.inputs[prospectFieldStates].Value())
	for i := range spec.States {
		spec.States[i] = strings.ToUpper(spec.States[i])
	}
	spec.Cities = splitCSVField(m.inputs[prospectFieldCities].Value())
	spec.Neighborhoods = splitCSVField(m.inputs[prospectFieldNeighborhoods].Value())

	if raw := strings.TrimSpace(m.inputs[prospectFieldQuantity].Value()); raw != "" {
		quantity, err := strconv.Atoi(raw)
		if err != nil || quantity <= 0 {
			return models.ProspectSpec{}, fmt.Errorf("quantidade inválida")
		}
		spec.Quantity = quantity
	}

	if raw := strings.ToLower(strings.TrimSpace(m.inputs[prospectFieldFormat].Value())); raw != "" {
		if raw != "csv" && raw != "xlsx" {
			return models.ProspectSpec{}, fmt.Errorf("formato deve ser csv ou xlsx")
		}
		spec.FileFormatting = raw
	}

	return spec, nil
}

func splitCSVField(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (m *prospectFormModel) View() string {
	labels := []string{"Nome", "UFs", "Municípios", "Bairros", "Quantidade", "Formato"}

	var b strings.Builder
	b.WriteString("Campo       │ Valor\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(fmt.Sprintf("%-11s │ [%s]\n", label, m.inputs[i].View()))
	}

	if m.submitting {
		b.WriteString("\n[Criando...]\n")
	} else {
		b.WriteString("\n[Criar]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nErro: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("NOVA PROSPECÇÃO", strings.TrimRight(b.String(), "\n"),
		"tab: próximo campo │ enter: criar │ esc: voltar")
}

func (m *prospectFormModel) cmdCreate(spec models.ProspectSpec) tea.Cmd {
	ctx := m.ctx
	prospects := m.prospects

	return func() tea.Msg {
		job, err := prospects.Create(ctx, spec)
		return prospectCreatedMsg{job: job, err: err}
	}
}
