package tui

import (
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/fotoagenda/internal/agenda"
	"github.com/sadopc/fotoagenda/internal/model"
)

// dashboardModel shows the money roll-ups, the next shoots and the
// six-month revenue chart. Everything is derived on setData; the view
// itself holds no aggregation state.
type dashboardModel struct {
	width  int
	height int

	clients []model.Client
	shoots  []model.Shoot

	monthRevenue float64
	outstanding  float64
	upcoming     []model.Shoot
	series       []agenda.MonthTotal

	chart barchart.Model
}

func newDashboardModel() dashboardModel {
	return dashboardModel{
		chart: barchart.New(48, 10),
	}
}

func (m *dashboardModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.buildChart()
}

func (m *dashboardModel) setData(clients []model.Client, shoots []model.Shoot) {
	now := time.Now()
	m.clients = clients
	m.shoots = shoots
	m.monthRevenue = agenda.MonthRevenue(shoots, now)
	m.outstanding = agenda.OutstandingBalance(shoots)
	m.upcoming = agenda.Upcoming(shoots)
	m.series = agenda.RevenueSeries(shoots, now)
	m.buildChart()
}

func (m *dashboardModel) buildChart() {
	chartWidth := m.width - 10
	if chartWidth < 24 {
		chartWidth = 24
	}
	chartHeight := 10
	if m.height > 34 {
		chartHeight = 14
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	barStyle := lipgloss.NewStyle().Foreground(colorPrimary)
	for _, mt := range m.series {
		m.chart.Push(barchart.BarData{
			Label: mt.Label,
			Values: []barchart.BarValue{
				{Name: mt.Label, Value: mt.Total, Style: barStyle},
			},
		})
	}
	m.chart.Draw()
}

func (m dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.New):
		return m, func() tea.Msg { return openShootFormMsg{} }
	case key.Matches(keyMsg, keys.Enter):
		if len(m.upcoming) > 0 {
			s := m.upcoming[0]
			return m, func() tea.Msg { return openShootFormMsg{existing: &s} }
		}
	}
	return m, nil
}

func (m dashboardModel) view() string {
	if m.width < 20 {
		return "Terminal muito pequeno"
	}

	contentWidth := m.width - 4

	stats := m.renderStatCards(contentWidth)
	next := m.renderUpcomingPanel(contentWidth)
	chart := m.renderChartPanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, stats, next, chart)
}

func (m dashboardModel) renderStatCards(w int) string {
	cardWidth := (w - 2) / 2

	revenue := panelStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			statTitleStyle.Render("Faturamento (Mês)"),
			statValueStyle.Render(formatMoney(m.monthRevenue)),
			mutedStyle.Render("Receita projetada"),
		),
	)

	owed := panelStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			statTitleStyle.Render("A Receber"),
			statValueStyle.Render(formatMoney(m.outstanding)),
			mutedStyle.Render("Saldos pendentes"),
		),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, revenue, " ", owed)
}

func (m dashboardModel) renderUpcomingPanel(w int) string {
	title := titleStyle.Render("Próximos Compromissos")

	if len(m.upcoming) == 0 {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				title,
				mutedStyle.Render("Nenhum compromisso agendado. Pressione n para agendar."),
			),
		)
	}

	rows := []string{title}
	for _, s := range m.upcoming[:min(5, len(m.upcoming))] {
		rows = append(rows, renderShootRow(s, m.clients, false))
	}
	if len(m.upcoming) > 5 {
		rows = append(rows, mutedStyle.Render("  2: ver todos na agenda"))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (m dashboardModel) renderChartPanel(w int) string {
	title := titleStyle.Render("Histórico de Faturamento")
	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", m.chart.View()),
	)
}
