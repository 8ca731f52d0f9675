package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/fotoagenda/internal/agenda"
	"github.com/sadopc/fotoagenda/internal/model"
)

// historyModel lists completed and cancelled shoots, oldest first, grouped
// by month.
type historyModel struct {
	width  int
	height int

	clients []model.Client
	shoots  []model.Shoot

	cursor    int
	search    textinput.Model
	searching bool
}

func newHistoryModel() historyModel {
	ti := textinput.New()
	ti.Placeholder = "Buscar no histórico..."
	ti.CharLimit = 64
	return historyModel{search: ti}
}

func (m *historyModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *historyModel) setData(clients []model.Client, shoots []model.Shoot) {
	m.clients = clients
	m.shoots = shoots
	if m.cursor >= len(m.visible()) {
		m.cursor = max(0, len(m.visible())-1)
	}
}

func (m historyModel) visible() []model.Shoot {
	history := agenda.History(m.shoots)
	if m.search.Value() == "" {
		return history
	}
	var out []model.Shoot
	for _, s := range history {
		if shootMatches(s, m.search.Value()) {
			out = append(out, s)
		}
	}
	return out
}

func (m historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		switch keyMsg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			return m, nil
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.cursor = 0
		return m, cmd
	}

	visible := m.visible()
	switch {
	case key.Matches(keyMsg, keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Enter):
		if len(visible) > 0 {
			s := visible[m.cursor]
			return m, func() tea.Msg { return openShootFormMsg{existing: &s} }
		}
	}
	return m, nil
}

func (m historyModel) view() string {
	w := m.width - 4
	title := titleStyle.Render("Histórico")

	searchView := m.search.View()
	if m.searching {
		searchView = activePanelStyle.Padding(0, 1).Render(searchView)
	} else {
		searchView = panelStyle.Padding(0, 1).Render(searchView)
	}

	visible := m.visible()
	if len(visible) == 0 {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				title, "", searchView, "",
				mutedStyle.Render("Nenhum trabalho realizado ainda."),
			),
		)
	}

	rows := []string{title, "", searchView, ""}
	rows = append(rows, renderGroupedShoots(visible, m.clients, m.cursor)...)
	rows = append(rows, "", mutedStyle.Render("  enter: editar  /: buscar"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
