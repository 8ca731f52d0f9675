package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/fotoagenda/internal/model"
)

type clientsModel struct {
	width  int
	height int

	clients []model.Client
	cursor  int

	search    textinput.Model
	searching bool

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formName  *string
	formPhone *string
	formEmail *string
	formNotes *string
}

func newClientsModel() clientsModel {
	ti := textinput.New()
	ti.Placeholder = "Buscar clientes..."
	ti.CharLimit = 64

	name, phone, email, notes := "", "", "", ""
	return clientsModel{
		search:    ti,
		formName:  &name,
		formPhone: &phone,
		formEmail: &email,
		formNotes: &notes,
	}
}

func (m *clientsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *clientsModel) setData(clients []model.Client) {
	m.clients = clients
	if m.cursor >= len(m.visible()) {
		m.cursor = max(0, len(m.visible())-1)
	}
}

func (m clientsModel) visible() []model.Client {
	term := strings.ToLower(m.search.Value())
	if term == "" {
		return m.clients
	}
	var out []model.Client
	for _, c := range m.clients {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Email), term) ||
			strings.Contains(c.Phone, term) {
			out = append(out, c)
		}
	}
	return out
}

func (m clientsModel) update(msg tea.Msg) (clientsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

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

	switch {
	case key.Matches(keyMsg, keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.New):
		return m.showForm()
	}
	return m, nil
}

func (m clientsModel) showForm() (clientsModel, tea.Cmd) {
	*m.formName = ""
	*m.formPhone = ""
	*m.formEmail = ""
	*m.formNotes = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Nome").Value(m.formName).
				Validate(required("nome")),
			huh.NewInput().Title("Telefone").Value(m.formPhone),
			huh.NewInput().Title("E-mail").Value(m.formEmail),
			huh.NewText().Title("Observações").Value(m.formNotes),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m clientsModel) updateForm(msg tea.Msg) (clientsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		if *m.formName != "" {
			c := model.NewClient(*m.formName, *m.formPhone, *m.formEmail, *m.formNotes)
			return m, func() tea.Msg { return saveClientMsg{client: c} }
		}
		return m, nil
	}

	return m, cmd
}

func (m clientsModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("Novo Cliente")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	title := titleStyle.Render("Clientes")

	searchView := m.search.View()
	if m.searching {
		searchView = activePanelStyle.Padding(0, 1).Render(searchView)
	} else {
		searchView = panelStyle.Padding(0, 1).Render(searchView)
	}

	visible := m.visible()
	if len(visible) == 0 {
		hint := mutedStyle.Render("Nenhum cliente encontrado.")
		if m.search.Value() == "" {
			hint = mutedStyle.Render("Nenhum cliente ainda. Pressione n para cadastrar o primeiro.")
		}
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", searchView, "", hint),
		)
	}

	rows := []string{title, "", searchView, ""}
	for i, c := range visible {
		marker := "  "
		style := normalItemStyle
		if i == m.cursor {
			marker = "> "
			style = selectedItemStyle
		}
		initial := "?"
		if r := []rune(c.Name); len(r) > 0 {
			initial = strings.ToUpper(string(r[0]))
		}
		row := style.Render(fmt.Sprintf("%s(%s) %-24s", marker, initial, c.Name)) +
			mutedStyle.Render(fmt.Sprintf("  %s  %s", c.Phone, c.Email))
		rows = append(rows, row)
		if i == m.cursor && c.Notes != "" {
			rows = append(rows, mutedStyle.Render("       "+c.Notes))
		}
	}
	rows = append(rows, "", mutedStyle.Render("  n: novo cliente  /: buscar"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
