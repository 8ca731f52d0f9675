package agenda

import (
	"reflect"
	"testing"
	"time"

	"github.com/sadopc/fotoagenda/internal/model"
)

// now is fixed mid-January so month boundaries in the fixtures are stable.
var now = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.Local)

func workShoot(id, date, timeOfDay string, price, deposit float64, pay model.PaymentStatus, status model.ShootStatus) model.Shoot {
	return model.Shoot{
		ID:            id,
		ClientID:      "c1",
		Title:         "Ensaio " + id,
		Date:          date,
		Time:          timeOfDay,
		Price:         price,
		Deposit:       deposit,
		PaymentStatus: pay,
		Status:        status,
	}
}

func personalEvent(id, date, timeOfDay string) model.Shoot {
	s := model.Shoot{
		ID:     id,
		Title:  "Pessoal " + id,
		Date:   date,
		Time:   timeOfDay,
		Status: model.StatusScheduled,
	}
	s.IsPersonal = true
	s.Normalize()
	return s
}

// ============================================================
// Upcoming / History
// ============================================================

func TestUpcomingOnlyScheduledSortedAscending(t *testing.T) {
	shoots := []model.Shoot{
		workShoot("late", "2024-02-10", "10:00", 100, 0, model.PaymentPending, model.StatusScheduled),
		workShoot("done", "2024-01-05", "09:00", 100, 0, model.PaymentPaid, model.StatusCompleted),
		workShoot("early", "2024-01-20", "10:00", 100, 0, model.PaymentPending, model.StatusScheduled),
	}

	got := Upcoming(shoots)
	if len(got) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(got))
	}
	if got[0].ID != "early" || got[1].ID != "late" {
		t.Fatalf("wrong order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestUpcomingStableOnIdenticalInstants(t *testing.T) {
	shoots := []model.Shoot{
		workShoot("a", "2024-01-20", "10:00", 100, 0, model.PaymentPending, model.StatusScheduled),
		workShoot("b", "2024-01-20", "10:00", 100, 0, model.PaymentPending, model.StatusScheduled),
		workShoot("c", "2024-01-20", "10:00", 100, 0, model.PaymentPending, model.StatusScheduled),
	}

	got := Upcoming(shoots)
	for i, want := range []string{"a", "b", "c"} {
		if got[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, got[i].ID)
		}
	}
}

func TestHistoryOldestFirst(t *testing.T) {
	shoots := []model.Shoot{
		workShoot("mar", "2024-03-05", "10:00", 100, 0, model.PaymentPaid, model.StatusCompleted),
		workShoot("jan", "2024-01-10", "10:00", 100, 0, model.PaymentPaid, model.StatusCancelled),
		workShoot("open", "2024-02-01", "10:00", 100, 0, model.PaymentPending, model.StatusScheduled),
	}

	got := History(shoots)
	if len(got) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(got))
	}
	if got[0].ID != "jan" || got[1].ID != "mar" {
		t.Fatalf("wrong order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestSortPushesUnparsableDatesFirst(t *testing.T) {
	shoots := []model.Shoot{
		workShoot("ok", "2024-01-20", "10:00", 100, 0, model.PaymentPending, model.StatusScheduled),
		workShoot("bad", "not-a-date", "10:00", 100, 0, model.PaymentPending, model.StatusScheduled),
	}

	got := Upcoming(shoots)
	if got[0].ID != "bad" {
		t.Fatalf("expected unparsable date first, got %s", got[0].ID)
	}
}

// ============================================================
// Month revenue
// ============================================================

func TestMonthRevenueCurrentMonthOnly(t *testing.T) {
	shoots := []model.Shoot{
		workShoot("in1", "2024-01-05", "10:00", 500, 150, model.PaymentPartial, model.StatusScheduled),
		workShoot("in2", "2024-01-28", "10:00", 300, 0, model.PaymentPending, model.StatusCompleted),
		workShoot("out", "2024-02-02", "10:00", 900, 0, model.PaymentPending, model.StatusScheduled),
		workShoot("lastyear", "2023-01-10", "10:00", 900, 0, model.PaymentPending, model.StatusScheduled),
	}

	if got := MonthRevenue(shoots, now); got != 800 {
		t.Fatalf("expected 800, got %v", got)
	}
}

func TestMonthRevenueExcludesPersonalAndCancelled(t *testing.T) {
	shoots := []model.Shoot{
		workShoot("kept", "2024-01-05", "10:00", 500, 0, model.PaymentPending, model.StatusScheduled),
		workShoot("cancelled", "2024-01-06", "10:00", 400, 0, model.PaymentPending, model.StatusCancelled),
		personalEvent("p1", "2024-01-07", "08:00"),
	}

	if got := MonthRevenue(shoots, now); got != 500 {
		t.Fatalf("expected 500, got %v", got)
	}
}

// ============================================================
// Outstanding balance
// ============================================================

func TestOutstandingBalance(t *testing.T) {
	shoots := []model.Shoot{
		// partial: 500 - 150 = 350
		workShoot("partial", "2024-01-05", "10:00", 500, 150, model.PaymentPartial, model.StatusScheduled),
		// pending contributes price minus deposit too
		workShoot("pending", "2023-11-05", "10:00", 800, 200, model.PaymentPending, model.StatusCompleted),
		// paid contributes nothing
		workShoot("paid", "2024-01-06", "10:00", 900, 900, model.PaymentPaid, model.StatusScheduled),
		// cancelled is never owed
		workShoot("cancelled", "2024-01-07", "10:00", 400, 0, model.PaymentPending, model.StatusCancelled),
		personalEvent("p1", "2024-01-08", "08:00"),
	}

	if got := OutstandingBalance(shoots); got != 950 {
		t.Fatalf("expected 950, got %v", got)
	}
}

func TestOutstandingBalanceNotMonthScoped(t *testing.T) {
	shoots := []model.Shoot{
		workShoot("old", "2022-06-01", "10:00", 100, 0, model.PaymentPending, model.StatusCompleted),
	}
	if got := OutstandingBalance(shoots); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

// ============================================================
// Revenue series
// ============================================================

func TestRevenueSeriesSixMonthsEndingNow(t *testing.T) {
	shoots := []model.Shoot{
		workShoot("aug", "2023-08-10", "10:00", 100, 0, model.PaymentPending, model.StatusScheduled),
		workShoot("nov", "2023-11-10", "10:00", 250, 0, model.PaymentPending, model.StatusScheduled),
		workShoot("jan", "2024-01-10", "10:00", 500, 0, model.PaymentPending, model.StatusScheduled),
	}

	series := RevenueSeries(shoots, now)
	if len(series) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(series))
	}

	wantLabels := []string{"ago", "set", "out", "nov", "dez", "jan"}
	wantTotals := []float64{100, 0, 0, 250, 0, 500}
	for i := range series {
		if series[i].Label != wantLabels[i] {
			t.Errorf("entry %d: expected label %s, got %s", i, wantLabels[i], series[i].Label)
		}
		if series[i].Total != wantTotals[i] {
			t.Errorf("entry %d: expected total %v, got %v", i, wantTotals[i], series[i].Total)
		}
	}
}

func TestRevenueSeriesMatchesMonthRevenue(t *testing.T) {
	shoots := []model.Shoot{
		workShoot("a", "2023-09-10", "10:00", 120, 0, model.PaymentPending, model.StatusScheduled),
		workShoot("b", "2023-12-24", "10:00", 340, 0, model.PaymentPending, model.StatusScheduled),
		workShoot("c", "2024-01-02", "10:00", 560, 0, model.PaymentPending, model.StatusScheduled),
	}

	series := RevenueSeries(shoots, now)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := range series {
		m := firstOfMonth.AddDate(0, i-5, 0)
		if want := MonthRevenue(shoots, m); series[i].Total != want {
			t.Errorf("entry %d (%s): expected %v, got %v", i, series[i].Label, want, series[i].Total)
		}
	}
}

// End of January plus five months back must not skid into the wrong month
// the way naive day arithmetic around the 29th-31st would.
func TestRevenueSeriesMonthBoundaries(t *testing.T) {
	endOfMarch := time.Date(2024, time.March, 31, 23, 0, 0, 0, time.Local)
	series := RevenueSeries(nil, endOfMarch)

	wantLabels := []string{"out", "nov", "dez", "jan", "fev", "mar"}
	for i := range series {
		if series[i].Label != wantLabels[i] {
			t.Fatalf("entry %d: expected %s, got %s", i, wantLabels[i], series[i].Label)
		}
	}
}

// ============================================================
// Month grouping
// ============================================================

func TestGroupByMonth(t *testing.T) {
	shoots := []model.Shoot{
		workShoot("a", "2024-01-10", "10:00", 100, 0, model.PaymentPending, model.StatusScheduled),
		workShoot("b", "2024-02-01", "10:00", 100, 0, model.PaymentPending, model.StatusScheduled),
		workShoot("c", "2024-01-20", "10:00", 100, 0, model.PaymentPending, model.StatusScheduled),
	}

	groups := GroupByMonth(shoots)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Label != "Janeiro de 2024" || groups[1].Label != "Fevereiro de 2024" {
		t.Fatalf("wrong labels: %s, %s", groups[0].Label, groups[1].Label)
	}
	if groups[0].Shoots[0].ID != "a" || groups[0].Shoots[1].ID != "c" {
		t.Fatalf("wrong january members: %s, %s", groups[0].Shoots[0].ID, groups[0].Shoots[1].ID)
	}
	if len(groups[1].Shoots) != 1 || groups[1].Shoots[0].ID != "b" {
		t.Fatal("wrong february members")
	}
}

func TestGroupByMonthEmpty(t *testing.T) {
	if groups := GroupByMonth(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel("2024-01-10"); got != "Janeiro de 2024" {
		t.Fatalf("expected Janeiro de 2024, got %s", got)
	}
	if got := MonthLabel("2025-12-31"); got != "Dezembro de 2025" {
		t.Fatalf("expected Dezembro de 2025, got %s", got)
	}
	// Unparsable dates fall back to the raw string
	if got := MonthLabel("garbage"); got != "garbage" {
		t.Fatalf("expected passthrough, got %s", got)
	}
}

// ============================================================
// Idempotence
// ============================================================

func TestAggregationsAreIdempotent(t *testing.T) {
	shoots := []model.Shoot{
		workShoot("a", "2024-01-10", "10:00", 500, 150, model.PaymentPartial, model.StatusScheduled),
		workShoot("b", "2023-12-01", "09:00", 300, 0, model.PaymentPending, model.StatusCompleted),
		personalEvent("p", "2024-01-12", "08:00"),
	}

	up1, up2 := Upcoming(shoots), Upcoming(shoots)
	if !reflect.DeepEqual(up1, up2) {
		t.Fatal("Upcoming not idempotent")
	}
	if MonthRevenue(shoots, now) != MonthRevenue(shoots, now) {
		t.Fatal("MonthRevenue not idempotent")
	}
	if OutstandingBalance(shoots) != OutstandingBalance(shoots) {
		t.Fatal("OutstandingBalance not idempotent")
	}
	if !reflect.DeepEqual(RevenueSeries(shoots, now), RevenueSeries(shoots, now)) {
		t.Fatal("RevenueSeries not idempotent")
	}
	if !reflect.DeepEqual(GroupByMonth(up1), GroupByMonth(up2)) {
		t.Fatal("GroupByMonth not idempotent")
	}
}
