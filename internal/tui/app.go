package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/sadopc/fotoagenda/internal/export"
	"github.com/sadopc/fotoagenda/internal/model"
	"github.com/sadopc/fotoagenda/internal/notify"
	"github.com/sadopc/fotoagenda/internal/reminder"
	"github.com/sadopc/fotoagenda/internal/store"
)

// App is the root Bubble Tea model. It owns the single mutable copy of
// both entity collections; every mutation flows through Update, so the
// reminder scheduler and the views never race each other.
type App struct {
	store     *store.Store
	notifier  notify.Notifier
	scheduler *reminder.Scheduler

	width  int
	height int

	clients []model.Client
	shoots  []model.Shoot

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	// Shoot modal, shared by dashboard, agenda and history.
	shootForm *shootForm

	dashboard dashboardModel
	agenda    agendaModel
	clientsV  clientsModel
	history   historyModel

	pollInterval time.Duration

	help   help.Model
	status string
}

func NewApp(s *store.Store, n notify.Notifier) App {
	h := help.New()
	h.ShowAll = false

	return App{
		store:        s,
		notifier:     n,
		scheduler:    reminder.New(s, n),
		activeView:   viewDashboard,
		dashboard:    newDashboardModel(),
		agenda:       newAgendaModel(),
		clientsV:     newClientsModel(),
		history:      newHistoryModel(),
		pollInterval: pollInterval(s),
		help:         h,
	}
}

func pollInterval(s *store.Store) time.Duration {
	if v, err := s.GetSetting("reminder_poll_seconds"); err == nil {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return time.Minute
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.loadCollections(),
		a.reminderTickCmd(),
	)
}

func (a App) loadCollections() tea.Cmd {
	return func() tea.Msg {
		clients, err := a.store.LoadClients()
		if err != nil {
			log.Error().Err(err).Msg("load clients")
			return statusMsg{text: fmt.Sprintf("Erro ao carregar clientes: %v", err), isError: true}
		}
		shoots, err := a.store.LoadShoots()
		if err != nil {
			log.Error().Err(err).Msg("load shoots")
			return statusMsg{text: fmt.Sprintf("Erro ao carregar compromissos: %v", err), isError: true}
		}
		return collectionsMsg{clients: clients, shoots: shoots}
	}
}

func (a App) reminderTickCmd() tea.Cmd {
	return tea.Tick(a.pollInterval, func(t time.Time) tea.Msg {
		return reminderTickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.agenda.setSize(a.width, contentHeight)
		a.clientsV.setSize(a.width, contentHeight)
		a.history.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// Shoot modal captures all input while open.
		if a.shootForm != nil {
			return a.updateShootForm(msg)
		}
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}
		// If a child view is capturing input (form or search), delegate.
		if a.isCapturing() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewAgenda
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewClients
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewHistory
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 4
			return a, nil
		}

	case collectionsMsg:
		a.clients = msg.clients
		a.shoots = msg.shoots
		a.syncData()
		// The scheduler also runs once at startup and on every collection
		// change, not just on the periodic tick.
		return a.runReminderScan()

	case reminderTickMsg:
		next := a.reminderTickCmd()
		updated, cmd := a.runReminderScan()
		return updated, tea.Batch(next, cmd)

	case openShootFormMsg:
		a.shootForm = newShootForm(a.clients, msg.existing)
		return a, a.shootForm.form.Init()

	case saveClientMsg:
		return a.saveClient(msg.client)

	case deleteShootMsg:
		return a.deleteShoot(msg.id)

	case statusMsg:
		a.status = msg.text
		return a, nil

	case exportDoneMsg:
		a.status = "Exportado para " + msg.path
		a.exportPicking = false
		return a, nil
	}

	// huh forms drive themselves with internal (non-key) messages; keep
	// feeding the modal while it is open.
	if a.shootForm != nil {
		return a.updateShootForm(msg)
	}
	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewAgenda:
		a.agenda, cmd = a.agenda.update(msg)
	case viewClients:
		a.clientsV, cmd = a.clientsV.update(msg)
	case viewHistory:
		a.history, cmd = a.history.update(msg)
	}
	return a, cmd
}

func (a App) isCapturing() bool {
	switch a.activeView {
	case viewAgenda:
		return a.agenda.searching
	case viewClients:
		return a.clientsV.formActive || a.clientsV.searching
	case viewHistory:
		return a.history.searching
	}
	return false
}

// syncData pushes the authoritative collections into every child view.
func (a *App) syncData() {
	a.dashboard.setData(a.clients, a.shoots)
	a.agenda.setData(a.clients, a.shoots)
	a.clientsV.setData(a.clients)
	a.history.setData(a.clients, a.shoots)
}

// runReminderScan executes one scheduler tick against the in-memory
// collection and swaps in the returned slice as a single replacement.
func (a App) runReminderScan() (tea.Model, tea.Cmd) {
	updated, fired, err := a.scheduler.Scan(time.Now(), a.shoots)
	if err != nil {
		log.Error().Err(err).Msg("reminder scan")
		a.shoots = updated
		a.syncData()
		a.status = "Erro ao salvar lembretes enviados"
		return a, nil
	}
	if fired > 0 {
		a.shoots = updated
		a.syncData()
		if fired == 1 {
			a.status = "1 lembrete enviado"
		} else {
			a.status = fmt.Sprintf("%d lembretes enviados", fired)
		}
	}
	return a, nil
}

// --- Shoot modal ---

func (a App) updateShootForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" {
			a.shootForm = nil
			return a, nil
		}
	}

	form, cmd := a.shootForm.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.shootForm.form = f
	}

	if a.shootForm.form.State == huh.StateCompleted {
		f := a.shootForm
		a.shootForm = nil
		// Permission is requested at configuration time, never by the
		// scheduler itself.
		if f.wantsReminder() && !a.notifier.PermissionGranted() {
			a.notifier.RequestPermission()
		}
		return a.saveShoot(f.result())
	}

	return a, cmd
}

// saveShoot applies the optimistic in-memory upsert, persists, and reruns
// the reminder scan since the collection changed. A failed save keeps the
// in-memory value and surfaces the error in the status bar.
func (a App) saveShoot(s model.Shoot) (tea.Model, tea.Cmd) {
	found := false
	for i := range a.shoots {
		if a.shoots[i].ID == s.ID {
			a.shoots[i] = s
			found = true
			break
		}
	}
	if !found {
		a.shoots = append(a.shoots, s)
	}
	a.syncData()

	if err := a.store.SaveShoot(s); err != nil {
		log.Error().Err(err).Str("shoot", s.ID).Msg("save shoot")
		a.status = "Erro ao salvar compromisso."
		return a, nil
	}
	a.status = "Compromisso salvo com sucesso!"
	return a.runReminderScan()
}

func (a App) deleteShoot(id string) (tea.Model, tea.Cmd) {
	kept := a.shoots[:0]
	for _, s := range a.shoots {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	a.shoots = kept
	a.syncData()

	if err := a.store.DeleteShoot(id); err != nil {
		log.Error().Err(err).Str("shoot", id).Msg("delete shoot")
		a.status = "Erro ao excluir compromisso."
		return a, nil
	}
	a.status = "Compromisso excluído."
	return a.runReminderScan()
}

func (a App) saveClient(c model.Client) (tea.Model, tea.Cmd) {
	found := false
	for i := range a.clients {
		if a.clients[i].ID == c.ID {
			a.clients[i] = c
			found = true
			break
		}
	}
	if !found {
		a.clients = append(a.clients, c)
	}
	a.syncData()

	if err := a.store.SaveClient(c); err != nil {
		log.Error().Err(err).Str("client", c.ID).Msg("save client")
		a.status = "Erro ao salvar cliente."
		return a, nil
	}
	a.status = "Cliente cadastrado com sucesso!"
	return a, nil
}

// --- View ---

func (a App) View() string {
	if a.width == 0 {
		return "Carregando..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewAgenda:
		content = a.agenda.view()
	case viewClients:
		content = a.clientsV.view()
	case viewHistory:
		content = a.history.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.shootForm != nil {
		content = a.renderShootFormOverlay()
	} else if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("fotoagenda")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)
	right := status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderShootFormOverlay() string {
	title := titleStyle.Render("Novo Compromisso")
	if a.shootForm.editing != nil {
		title = titleStyle.Render("Editar Compromisso")
	}
	w := a.width - 4
	return activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", a.shootForm.form.View()),
	)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Formato de Exportação")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: exportar  esc: cancelar"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	shoots := append([]model.Shoot(nil), a.shoots...)
	clients := make(map[string]*model.Client, len(a.clients))
	for i := range a.clients {
		clients[a.clients[i].ID] = &a.clients[i]
	}

	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("fotoagenda-export-%s.csv", dateStr))
			if err := export.ToCSV(shoots, clients, path); err != nil {
				return statusMsg{text: fmt.Sprintf("Erro no CSV: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("fotoagenda-export-%s.json", dateStr))
			if err := export.ToJSON(shoots, clients, path); err != nil {
				return statusMsg{text: fmt.Sprintf("Erro no JSON: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
