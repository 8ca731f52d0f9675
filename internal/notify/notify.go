// Package notify wraps the platform notification facility behind the
// contract the reminder scheduler consumes: capability check, permission
// check, permission request and best-effort display.
package notify

import (
	"github.com/gen2brain/beeep"
	"github.com/sadopc/fotoagenda/internal/store"
)

type Notifier interface {
	Supported() bool
	PermissionGranted() bool
	// RequestPermission records the user's opt-in. It is invoked when a
	// reminder is configured on a shoot, never by the scheduler.
	RequestPermission() bool
	Display(title, body string) error
}

const enabledKey = "notifications_enabled"

// Desktop delivers notifications through the OS notification daemon. The
// permission model is an explicit opt-in persisted in settings.
type Desktop struct {
	store *store.Store
}

func NewDesktop(s *store.Store) *Desktop {
	return &Desktop{store: s}
}

func (d *Desktop) Supported() bool {
	return true
}

func (d *Desktop) PermissionGranted() bool {
	v, err := d.store.GetSetting(enabledKey)
	if err != nil {
		return false
	}
	return v == "1"
}

func (d *Desktop) RequestPermission() bool {
	if err := d.store.SetSetting(enabledKey, "1"); err != nil {
		return false
	}
	return true
}

func (d *Desktop) Display(title, body string) error {
	return beeep.Notify(title, body, "")
}
