package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/fotoagenda/internal/agenda"
	"github.com/sadopc/fotoagenda/internal/model"
)

// agendaModel renders the upcoming shoots grouped by month, with a text
// search over title and location.
type agendaModel struct {
	width  int
	height int

	clients []model.Client
	shoots  []model.Shoot

	cursor    int
	search    textinput.Model
	searching bool
}

func newAgendaModel() agendaModel {
	ti := textinput.New()
	ti.Placeholder = "Buscar eventos..."
	ti.CharLimit = 64
	return agendaModel{search: ti}
}

func (m *agendaModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *agendaModel) setData(clients []model.Client, shoots []model.Shoot) {
	m.clients = clients
	m.shoots = shoots
	if m.cursor >= len(m.visible()) {
		m.cursor = max(0, len(m.visible())-1)
	}
}

func (m agendaModel) visible() []model.Shoot {
	upcoming := agenda.Upcoming(m.shoots)
	if m.search.Value() == "" {
		return upcoming
	}
	var out []model.Shoot
	for _, s := range upcoming {
		if shootMatches(s, m.search.Value()) {
			out = append(out, s)
		}
	}
	return out
}

func (m agendaModel) update(msg tea.Msg) (agendaModel, tea.Cmd) {
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
	case key.Matches(keyMsg, keys.New):
		return m, func() tea.Msg { return openShootFormMsg{} }
	case key.Matches(keyMsg, keys.Enter):
		if len(visible) > 0 {
			s := visible[m.cursor]
			return m, func() tea.Msg { return openShootFormMsg{existing: &s} }
		}
	case key.Matches(keyMsg, keys.Delete):
		if len(visible) > 0 {
			id := visible[m.cursor].ID
			return m, func() tea.Msg { return deleteShootMsg{id: id} }
		}
	}
	return m, nil
}

func (m agendaModel) view() string {
	w := m.width - 4
	title := titleStyle.Render("Agenda")

	searchView := m.search.View()
	if m.searching {
		searchView = activePanelStyle.Padding(0, 1).Render(searchView)
	} else {
		searchView = panelStyle.Padding(0, 1).Render(searchView)
	}

	visible := m.visible()
	if len(visible) == 0 {
		empty := mutedStyle.Render("Nenhum evento futuro encontrado.")
		if m.search.Value() == "" {
			empty = mutedStyle.Render("Nenhum compromisso agendado. Pressione n para agendar.")
		}
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", searchView, "", empty),
		)
	}

	rows := []string{title, "", searchView, ""}
	rows = append(rows, renderGroupedShoots(visible, m.clients, m.cursor)...)
	rows = append(rows, "", mutedStyle.Render("  n: novo  enter: editar  d: excluir  /: buscar"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

// renderGroupedShoots renders a date-sorted shoot list with month headers
// in first-seen order. The cursor index counts shoots only, not headers.
func renderGroupedShoots(shoots []model.Shoot, clients []model.Client, cursor int) []string {
	var rows []string
	idx := 0
	for _, group := range agenda.GroupByMonth(shoots) {
		rows = append(rows, monthHeaderStyle.Render(strings.ToUpper(group.Label)))
		for _, s := range group.Shoots {
			rows = append(rows, renderShootRow(s, clients, idx == cursor))
			idx++
		}
		rows = append(rows, "")
	}
	if len(rows) > 0 {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func renderShootRow(s model.Shoot, clients []model.Client, selected bool) string {
	marker := "  "
	style := normalItemStyle
	if selected {
		marker = "> "
		style = selectedItemStyle
	}

	dot := highlightStyle.Render("●")
	who := ""
	if s.IsPersonal {
		dot = personalStyle.Render("●")
		who = personalStyle.Render("Pessoal")
	} else if c := clientByID(clients, s.ClientID); c != nil {
		who = mutedStyle.Render(c.Name)
	}

	when := fmt.Sprintf("%s %s", shortDate(s.Date), s.Time)
	line := style.Render(fmt.Sprintf("%s%s %-9s %s", marker, dot, when, s.Title))
	if who != "" {
		line += "  " + who
	}
	if !s.IsPersonal && s.Price > 0 {
		line += "  " + mutedStyle.Render(formatMoney(s.Price)+" · "+paymentLabel(s.PaymentStatus))
	}
	switch s.Status {
	case model.StatusCompleted:
		line += "  " + successStyle.Render(statusLabel(s.Status))
	case model.StatusCancelled:
		line += "  " + errorStyle.Render(statusLabel(s.Status))
	default:
		if s.ReminderMinutes > 0 && !s.ReminderSent {
			line += "  " + warningStyle.Render("⏰")
		}
	}
	return line
}

var shortWeekdays = [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}

func shortDate(date string) string {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %02d", shortWeekdays[d.Weekday()], d.Day())
}
