package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inohub/prospect-console/internal/service"
	"github.com/inohub/prospect-console/models"
)

const defaultPageLimit = 10

// Filter row fields, in display order.
var prospectFilterLabels = []string{"id", "usuário", "uf", "quantidade", "formato", "status"}

// prospectsModel is the prospect listing page: a paginated table with an
// optional filter row, per-row download, and copy-id.
//
// Every fetch carries a generation number; responses whose generation is
// older than the model's current one are discarded, so a slow page-1 reply
// can never overwrite the page-2 listing requested after it.
type prospectsModel struct {
	ctx         context.Context
	prospects   service.ProspectService
	downloadDir string

	jobs       []models.ProspectJob
	idx        int
	page       int
	totalPages int
	total      int
	limit      int

	filters      models.ProspectFilters
	filterInputs []textinput.Model
	filterFocus  int
	filterOpen   bool

	gen         int
	loading     bool
	downloading bool
	status      string
	errMsg      string
}

func newProspectsModel(ctx context.Context, prospects service.ProspectService, downloadDir string) *prospectsModel {
	inputs := make([]textinput.Model, len(prospectFilterLabels))
	for i, label := range prospectFilterLabels {
		in := textinput.New()
		in.Placeholder = label
		in.CharLimit = 32
		in.Width = 14
		inputs[i] = in
	}

	return &prospectsModel{
		ctx:          ctx,
		prospects:    prospects,
		downloadDir:  downloadDir,
		page:         1,
		limit:        defaultPageLimit,
		filterInputs: inputs,
		loading:      true,
	}
}

func (m *prospectsModel) capturingInput() bool { return m.filterOpen }

func (m *prospectsModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *prospectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case prospectsLoadedMsg:
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
		m.jobs = msg.page.Data
		m.total = msg.page.Total
		m.totalPages = msg.page.TotalPages
		m.page = msg.page.CurrentPage
		if m.idx >= len(m.jobs) {
			m.idx = len(m.jobs) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case downloadDoneMsg:
		m.downloading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Arquivo salvo em " + msg.path
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
		m.status = "ID copiado para a área de transferência"
		return m, nil

	case tea.KeyMsg:
		if m.filterOpen {
			return m.updateFilterRow(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *prospectsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.jobs)-1 {
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
	case "+":
		if m.limit < 50 && !m.loading {
			m.limit += 5
			if m.limit > 50 {
				m.limit = 50
			}
			m.page = 1
			m.loading = true
			return m, m.cmdLoad()
		}
	case "-":
		if m.limit > 1 && !m.loading {
			m.limit -= 5
			if m.limit < 1 {
				m.limit = 1
			}
			m.page = 1
			m.loading = true
			return m, m.cmdLoad()
		}
	case "f":
		m.openFilterRow()
	case "r":
		if !m.loading {
			m.loading = true
			return m, m.cmdLoad()
		}
	case "n":
		m.status = ""
		return m, func() tea.Msg { return NavigateTo{Page: "prospect-form"} }
	case "d":
		if job, ok := m.currentJob(); ok && !m.downloading {
			if !job.Status.Ready() {
				m.errMsg = "A prospecção ainda não está pronta para download"
				return m, nil
			}
			m.errMsg = ""
			m.downloading = true
			return m, m.cmdDownload(job)
		}
	case "c":
		if job, ok := m.currentJob(); ok {
			return m, cmdCopyID(job.ID)
		}
	}

	return m, nil
}

func (m *prospectsModel) updateFilterRow(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filterOpen = false
		m.filterInputs[m.filterFocus].Blur()
		return m, nil
	case "tab":
		m.filterInputs[m.filterFocus].Blur()
		m.filterFocus = (m.filterFocus + 1) % len(m.filterInputs)
		m.filterInputs[m.filterFocus].Focus()
		return m, nil
	case "shift+tab":
		m.filterInputs[m.filterFocus].Blur()
		m.filterFocus = (m.filterFocus - 1 + len(m.filterInputs)) % len(m.filterInputs)
		m.filterInputs[m.filterFocus].Focus()
		return m, nil
	case "enter":
		m.filters = models.ProspectFilters{
			ID:       strings.TrimSpace(m.filterInputs[0].Value()),
			User:     strings.TrimSpace(m.filterInputs[1].Value()),
			State:    strings.TrimSpace(m.filterInputs[2].Value()),
			Quantity: strings.TrimSpace(m.filterInputs[3].Value()),
			Format:   strings.TrimSpace(m.filterInputs[4].Value()),
			Status:   strings.TrimSpace(m.filterInputs[5].Value()),
		}
		m.filterOpen = false
		m.filterInputs[m.filterFocus].Blur()
		m.page = 1
		m.loading = true
		return m, m.cmdLoad()
	}

	var cmd tea.Cmd
	m.filterInputs[m.filterFocus], cmd = m.filterInputs[m.filterFocus].Update(msg)
	return m, cmd
}

func (m *prospectsModel) openFilterRow() {
	m.filterOpen = true
	m.filterFocus = 0
	for i := range m.filterInputs {
		m.filterInputs[i].Blur()
	}
	m.filterInputs[0].Focus()
}

func (m *prospectsModel) currentJob() (models.ProspectJob, bool) {
	if len(m.jobs) == 0 || m.idx < 0 || m.idx >= len(m.jobs) {
		return models.ProspectJob{}, false
	}
	return m.jobs[m.idx], true
}

func (m *prospectsModel) View() string {
	var b strings.Builder

	if m.filterOpen {
		b.WriteString("Filtros: ")
		for i := range m.filterInputs {
			b.WriteString("[")
			b.WriteString(m.filterInputs[i].View())
			b.WriteString("] ")
		}
		b.WriteString("\n\n")
	} else if !m.filters.IsZero() {
		b.WriteString(helpStyle.Render("Filtros aplicados (f para alterar)"))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Carregando...\n")
	case len(m.jobs) == 0:
		b.WriteString("Nenhuma prospecção encontrada\n")
	default:
		b.WriteString(fmt.Sprintf("  %-6s │ %-24s │ %-8s │ %-10s │ %-7s │ %s\n",
			"ID", "Nome", "Usuário", "Quantidade", "Formato", "Status"))
		b.WriteString("  " + strings.Repeat("─", 78) + "\n")
		for i, job := range m.jobs {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-6d │ %-24s │ %-8d │ %-10d │ %-7s │ %s\n",
				cursor,
				job.ID,
				fitText(valueOrDash(job.Filter.Name), 24),
				job.UserID,
				job.Filter.Quantity,
				valueOrDash(job.Filter.FileFormatting),
				statusLabel(job.Status),
			))
		}
	}

	b.WriteString(fmt.Sprintf("\npágina %d/%d │ %d registros │ limite %d",
		m.page, maxInt(m.totalPages, 1), m.total, m.limit))

	if m.downloading {
		b.WriteString("\nBaixando...")
	}
	if m.status != "" {
		b.WriteString("\nOK: " + m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Erro: "+m.errMsg))
	}

	hotKeys := "f: filtros │ n: nova │ d: baixar │ c: copiar id │ ←/→: página │ +/-: limite │ r: atualizar"
	if m.filterOpen {
		hotKeys = "tab: próximo filtro │ enter: aplicar │ esc: fechar"
	}

	return renderPage("PROSPECÇÕES", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func statusLabel(s models.JobStatus) string {
	if s.Ready() {
		return "PRONTA"
	}
	return "PENDENTE"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (m *prospectsModel) cmdLoad() tea.Cmd {
	m.gen++

	ctx := m.ctx
	prospects := m.prospects
	gen := m.gen
	page, limit, filters := m.page, m.limit, m.filters

	return func() tea.Msg {
		result, err := prospects.List(ctx, page, limit, filters)
		return prospectsLoadedMsg{page: result, gen: gen, err: err}
	}
}

func (m *prospectsModel) cmdDownload(job models.ProspectJob) tea.Cmd {
	ctx := m.ctx
	prospects := m.prospects
	dir := m.downloadDir

	return func() tea.Msg {
		path, err := prospects.Download(ctx, job, dir)
		return downloadDoneMsg{path: path, err: err}
	}
}

func cmdCopyID(id int64) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(strconv.FormatInt(id, 10))}
	}
}
