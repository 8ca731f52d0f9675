package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/sadopc/fotoagenda/internal/model"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewAgenda
	viewClients
	viewHistory
)

var viewNames = []string{"Dashboard", "Agenda", "Clientes", "Histórico"}

// --- Messages ---

// collectionsMsg carries the freshly loaded entity collections.
type collectionsMsg struct {
	clients []model.Client
	shoots  []model.Shoot
}

// openShootFormMsg asks the app shell to open the shoot modal, optionally
// pre-filled with an existing record.
type openShootFormMsg struct {
	existing *model.Shoot
}

type deleteShootMsg struct {
	id string
}

type saveClientMsg struct {
	client model.Client
}

type statusMsg struct {
	text    string
	isError bool
}

// reminderTickMsg drives the reminder scheduler poll.
type reminderTickMsg time.Time

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatMoney(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.Replace(s, ".", ",", 1)
	return "R$ " + s
}

func statusLabel(s model.ShootStatus) string {
	switch s {
	case model.StatusScheduled:
		return "Agendado"
	case model.StatusCompleted:
		return "Realizado"
	case model.StatusCancelled:
		return "Cancelado"
	}
	return string(s)
}

func paymentLabel(p model.PaymentStatus) string {
	switch p {
	case model.PaymentPending:
		return "Pendente"
	case model.PaymentPartial:
		return "Parcial"
	case model.PaymentPaid:
		return "Pago"
	}
	return string(p)
}

func shootMatches(s model.Shoot, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(s.Title), term) ||
		strings.Contains(strings.ToLower(s.Location), term)
}

func clientByID(clients []model.Client, id string) *model.Client {
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i]
		}
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
