// Package reminder implements the polling reminder scheduler: each scan
// walks the shoot collection, fires a notification for every shoot whose
// reminder window now contains the clock, and marks it sent exactly once.
package reminder

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sadopc/fotoagenda/internal/model"
	"github.com/sadopc/fotoagenda/internal/notify"
	"github.com/sadopc/fotoagenda/internal/store"
)

// NotificationTitle is the fixed title of every reminder notification.
const NotificationTitle = "Lembrete 📸"

type Scheduler struct {
	store    *store.Store
	notifier notify.Notifier
}

func New(s *store.Store, n notify.Notifier) *Scheduler {
	return &Scheduler{store: s, notifier: n}
}

// Scan runs one tick against the given collection. When any reminders
// fire it persists the entire updated collection and returns the new
// slice for the caller to swap in as a single replacement; otherwise the
// input slice comes back untouched. The returned count is the number of
// reminders marked this tick.
//
// Delivery is at-most-once: a failed display is logged and the shoot is
// still marked, never retried. A shoot whose event instant has already
// passed is skipped permanently.
func (r *Scheduler) Scan(now time.Time, shoots []model.Shoot) ([]model.Shoot, int, error) {
	// Permission is checked once per tick, not per shoot.
	if !r.notifier.Supported() || !r.notifier.PermissionGranted() {
		return shoots, 0, nil
	}

	var updated []model.Shoot
	marked := 0

	for i, s := range shoots {
		if !reminderArmed(s) {
			continue
		}

		eventAt, err := s.StartsAt()
		if err != nil {
			log.Warn().Err(err).Str("shoot", s.ID).Msg("skipping reminder with unparseable date")
			continue
		}
		remindAt := eventAt.Add(-time.Duration(s.ReminderMinutes) * time.Minute)

		// Due window is inclusive on both ends.
		if now.Before(remindAt) || now.After(eventAt) {
			continue
		}

		body := fmt.Sprintf("O evento %q começa em %d minutos!", s.Title, s.ReminderMinutes)
		if err := r.notifier.Display(NotificationTitle, body); err != nil {
			log.Error().Err(err).Str("shoot", s.ID).Msg("notification display failed")
		}

		if updated == nil {
			updated = append(updated, shoots...)
		}
		updated[i].ReminderSent = true
		marked++
	}

	if marked == 0 {
		return shoots, 0, nil
	}

	// On persist failure the in-memory marks are kept anyway: re-firing a
	// delivered reminder is worse than losing the flag on next reload.
	if err := r.store.SaveShoots(updated); err != nil {
		return updated, marked, fmt.Errorf("persist reminder marks: %w", err)
	}
	return updated, marked, nil
}

func reminderArmed(s model.Shoot) bool {
	return s.Status == model.StatusScheduled && s.ReminderMinutes > 0 && !s.ReminderSent
}
