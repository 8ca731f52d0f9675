// Package agenda derives dashboard metrics and grouped views from the
// in-memory shoot collection. Every function is pure: the collection and
// the reference instant come in as arguments, nothing is cached and
// recomputation is idempotent.
package agenda

import (
	"sort"
	"time"

	"github.com/sadopc/fotoagenda/internal/model"
)

// MonthTotal is one bar of the revenue series.
type MonthTotal struct {
	Label string
	Total float64
}

// MonthGroup is a contiguous month bucket of an already-sorted shoot list.
type MonthGroup struct {
	Label  string
	Shoots []model.Shoot
}

// Upcoming returns the scheduled shoots sorted ascending by start instant.
// Identical instants keep their collection order.
func Upcoming(shoots []model.Shoot) []model.Shoot {
	return sortedByStart(filter(shoots, func(s model.Shoot) bool {
		return s.Status == model.StatusScheduled
	}))
}

// History returns completed and cancelled shoots sorted ascending by start
// instant. Oldest first is deliberate for this view.
func History(shoots []model.Shoot) []model.Shoot {
	return sortedByStart(filter(shoots, func(s model.Shoot) bool {
		return s.Status != model.StatusScheduled
	}))
}

// MonthRevenue sums Price over non-personal, non-cancelled shoots whose
// date falls in now's calendar month and year.
func MonthRevenue(shoots []model.Shoot, now time.Time) float64 {
	return revenueFor(shoots, now.Year(), now.Month())
}

// OutstandingBalance sums Price-Deposit over every non-personal,
// non-cancelled shoot that is not fully paid. It is a running total across
// all time, not month-scoped; pending shoots contribute the same
// Price-Deposit as partial ones.
func OutstandingBalance(shoots []model.Shoot) float64 {
	var total float64
	for _, s := range shoots {
		if s.IsPersonal || s.Status == model.StatusCancelled || s.PaymentStatus == model.PaymentPaid {
			continue
		}
		total += s.Balance()
	}
	return total
}

// RevenueSeries returns one total per calendar month for the 6 months
// ending with now's month, oldest first. Each total follows the
// MonthRevenue filtering rules for that month.
func RevenueSeries(shoots []model.Shoot, now time.Time) []MonthTotal {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	series := make([]MonthTotal, 0, 6)
	for i := 5; i >= 0; i-- {
		m := firstOfMonth.AddDate(0, -i, 0)
		series = append(series, MonthTotal{
			Label: shortMonthNames[m.Month()-1],
			Total: revenueFor(shoots, m.Year(), m.Month()),
		})
	}
	return series
}

// GroupByMonth partitions an already-sorted list into month/year buckets
// in first-seen order; the input is not re-sorted and members keep their
// relative order.
func GroupByMonth(shoots []model.Shoot) []MonthGroup {
	var groups []MonthGroup
	index := make(map[string]int)

	for _, s := range shoots {
		label := MonthLabel(s.Date)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, MonthGroup{Label: label})
		}
		groups[i].Shoots = append(groups[i].Shoots, s)
	}
	return groups
}

// MonthLabel renders a shoot date as the capitalized Portuguese month plus
// year, e.g. "Janeiro de 2024".
func MonthLabel(date string) string {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return date
	}
	return monthNames[d.Month()-1] + " de " + d.Format("2006")
}

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var shortMonthNames = [12]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

func revenueFor(shoots []model.Shoot, year int, month time.Month) float64 {
	var total float64
	for _, s := range shoots {
		if s.IsPersonal || s.Status == model.StatusCancelled {
			continue
		}
		d, err := time.ParseInLocation("2006-01-02", s.Date, time.Local)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month {
			total += s.Price
		}
	}
	return total
}

func filter(shoots []model.Shoot, keep func(model.Shoot) bool) []model.Shoot {
	out := make([]model.Shoot, 0, len(shoots))
	for _, s := range shoots {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func sortedByStart(shoots []model.Shoot) []model.Shoot {
	sort.SliceStable(shoots, func(i, j int) bool {
		return startKey(shoots[i]).Before(startKey(shoots[j]))
	})
	return shoots
}

func startKey(s model.Shoot) time.Time {
	t, err := s.StartsAt()
	if err != nil {
		return time.Time{}
	}
	return t
}
