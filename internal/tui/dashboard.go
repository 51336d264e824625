package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inohub/prospect-console/internal/service"
	"github.com/inohub/prospect-console/models"
)

// dashboardModel renders the precomputed statistics page. It is a plain
// loading/error/populated state machine with a manual refresh key.
type dashboardModel struct {
	ctx       context.Context
	dashboard service.DashboardService

	loading bool
	stats   models.DashboardStats
	errMsg  string
}

func newDashboardModel(ctx context.Context, dashboard service.DashboardService) *dashboardModel {
	return &dashboardModel{
		ctx:       ctx,
		dashboard: dashboard,
		loading:   true,
	}
}

func (m *dashboardModel) capturingInput() bool { return false }

func (m *dashboardModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoadStats()
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.stats = msg.stats
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "r" && !m.loading {
			m.loading = true
			return m, m.cmdLoadStats()
		}
	}

	return m, nil
}

func (m *dashboardModel) View() string {
	if m.loading {
		return renderPage("PAINEL", "Carregando...", "r: atualizar")
	}
	if m.errMsg != "" {
		return renderPage("PAINEL", errorStyle.Render("Erro: "+m.errMsg), "r: tentar novamente")
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Usuários       %d (%d ativos)\n", m.stats.Users.Total, m.stats.Users.Active))
	b.WriteString(fmt.Sprintf("Prospecções    %d (%d prontas)\n", m.stats.Prospects.Total, m.stats.Prospects.Ready))
	if len(m.stats.Prospects.ByUser) > 0 {
		b.WriteString("  por usuário: ")
		b.WriteString(renderBreakdown(m.stats.Prospects.ByUser, 4))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Empresas       %d\n", m.stats.Companies.Total))
	writeBreakdownLine(&b, "por UF", m.stats.Companies.ByState)
	writeBreakdownLine(&b, "por município", m.stats.Companies.ByCity)
	writeBreakdownLine(&b, "por CNAE", m.stats.Companies.ByCNAE)
	writeBreakdownLine(&b, "por porte", m.stats.Companies.BySize)
	writeBreakdownLine(&b, "por nat. jurídica", m.stats.Companies.ByLegalNature)
	writeBreakdownLine(&b, "por ano de criação", m.stats.Companies.ByCreationYear)
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Faturamento    total declarado R$ %.2f │ média por empresa R$ %.2f",
		m.stats.Revenue.TotalDeclared, m.stats.Revenue.AveragePerCompany))

	return renderPage("PAINEL", strings.TrimRight(b.String(), "\n"), "r: atualizar")
}

func writeBreakdownLine(b *strings.Builder, label string, items []models.CountByKey) {
	if len(items) == 0 {
		return
	}
	b.WriteString(fmt.Sprintf("  %-19s %s\n", label+":", renderBreakdown(items, 5)))
}

func renderBreakdown(items []models.CountByKey, max int) string {
	parts := make([]string, 0, max)
	for i, item := range items {
		if i >= max {
			parts = append(parts, "...")
			break
		}
		parts = append(parts, fmt.Sprintf("%s %d", item.Key, item.Count))
	}
	return strings.Join(parts, " │ ")
}

func (m *dashboardModel) cmdLoadStats() tea.Cmd {
	ctx := m.ctx
	dashboard := m.dashboard

	return func() tea.Msg {
		stats, err := dashboard.Stats(ctx)
		return dashboardLoadedMsg{stats: stats, err: err}
	}
}
