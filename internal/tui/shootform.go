package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/sadopc/fotoagenda/internal/model"
)

var packageTypes = []string{"", "Básico", "Silver", "Gold", "Premium"}

var reminderChoices = []struct {
	label   string
	minutes int
}{
	{"Sem lembrete", 0},
	{"15 minutos antes", 15},
	{"30 minutos antes", 30},
	{"1 hora antes", 60},
	{"2 horas antes", 120},
	{"1 dia antes", 1440},
}

// shootForm drives the create/edit form for a shoot. All field values are
// pointer-backed so they survive the value copies bubbletea makes of the
// parent model.
type shootForm struct {
	form    *huh.Form
	editing *model.Shoot // nil when creating

	personal *bool

	title       *string
	clientID    *string
	packageType *string
	date        *string
	timeOfDay   *string
	location    *string

	price   *string
	deposit *string
	payment *string
	status  *string

	makeupArtist     *string
	makeupPrice      *string
	hairstylist      *string
	hairstylistPrice *string

	notes    *string
	reminder *string
}

func newShootForm(clients []model.Client, existing *model.Shoot) *shootForm {
	f := &shootForm{editing: existing}

	personal := false
	title, clientID, packageType := "", "", ""
	date, timeOfDay, location := time.Now().Format("2006-01-02"), "10:00", ""
	price, deposit := "0", "0"
	payment, status := string(model.PaymentPending), string(model.StatusScheduled)
	makeupArtist, makeupPrice := "", "0"
	hairstylist, hairstylistPrice := "", "0"
	notes, reminder := "", "0"

	if existing != nil {
		personal = existing.IsPersonal
		title = existing.Title
		clientID = existing.ClientID
		packageType = existing.PackageType
		date = existing.Date
		timeOfDay = existing.Time
		location = existing.Location
		price = trimFloat(existing.Price)
		deposit = trimFloat(existing.Deposit)
		payment = string(existing.PaymentStatus)
		status = string(existing.Status)
		makeupArtist = existing.MakeupArtist
		makeupPrice = trimFloat(existing.MakeupPrice)
		hairstylist = existing.Hairstylist
		hairstylistPrice = trimFloat(existing.HairstylistPrice)
		notes = existing.Notes
		reminder = strconv.Itoa(existing.ReminderMinutes)
	} else if len(clients) > 0 {
		clientID = clients[0].ID
	}

	f.personal = &personal
	f.title, f.clientID, f.packageType = &title, &clientID, &packageType
	f.date, f.timeOfDay, f.location = &date, &timeOfDay, &location
	f.price, f.deposit = &price, &deposit
	f.payment, f.status = &payment, &status
	f.makeupArtist, f.makeupPrice = &makeupArtist, &makeupPrice
	f.hairstylist, f.hairstylistPrice = &hairstylist, &hairstylistPrice
	f.notes, f.reminder = &notes, &reminder

	clientOptions := make([]huh.Option[string], len(clients))
	for i, c := range clients {
		clientOptions[i] = huh.NewOption(c.Name, c.ID)
	}
	packageOptions := make([]huh.Option[string], len(packageTypes))
	for i, p := range packageTypes {
		label := p
		if label == "" {
			label = "(nenhum)"
		}
		packageOptions[i] = huh.NewOption(label, p)
	}
	reminderOptions := make([]huh.Option[string], len(reminderChoices))
	for i, r := range reminderChoices {
		reminderOptions[i] = huh.NewOption(r.label, strconv.Itoa(r.minutes))
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Título").Value(f.title).
				Validate(required("título")),
			huh.NewConfirm().Title("Evento pessoal?").Value(f.personal),
			huh.NewInput().Title("Data (AAAA-MM-DD)").Value(f.date).
				Validate(validDate),
			huh.NewInput().Title("Hora (HH:MM)").Value(f.timeOfDay).
				Validate(validTime),
			huh.NewInput().Title("Local").Value(f.location),
			huh.NewSelect[string]().Title("Lembrete").Options(reminderOptions...).Value(f.reminder),
			huh.NewSelect[string]().Title("Status").
				Options(
					huh.NewOption("Agendado", string(model.StatusScheduled)),
					huh.NewOption("Realizado", string(model.StatusCompleted)),
					huh.NewOption("Cancelado", string(model.StatusCancelled)),
				).Value(f.status),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Cliente").Options(clientOptions...).Value(f.clientID),
			huh.NewSelect[string]().Title("Pacote").Options(packageOptions...).Value(f.packageType),
			huh.NewInput().Title("Valor (R$)").Value(f.price).Validate(validMoney),
			huh.NewInput().Title("Sinal (R$)").Value(f.deposit).Validate(validMoney),
			huh.NewSelect[string]().Title("Pagamento").
				Options(
					huh.NewOption("Pendente", string(model.PaymentPending)),
					huh.NewOption("Parcial", string(model.PaymentPartial)),
					huh.NewOption("Pago", string(model.PaymentPaid)),
				).Value(f.payment),
		).WithHideFunc(func() bool { return *f.personal }),
		huh.NewGroup(
			huh.NewInput().Title("Maquiadora").Value(f.makeupArtist),
			huh.NewInput().Title("Valor maquiagem (R$)").Value(f.makeupPrice).Validate(validMoney),
			huh.NewInput().Title("Cabeleireira").Value(f.hairstylist),
			huh.NewInput().Title("Valor cabelo (R$)").Value(f.hairstylistPrice).Validate(validMoney),
			huh.NewText().Title("Observações").Value(f.notes),
		).WithHideFunc(func() bool { return *f.personal }),
	).WithShowHelp(true).WithShowErrors(true)

	return f
}

// result materializes the form values into a shoot. Editing keeps the
// identity of the original record; changing the reminder configuration
// re-arms it.
func (f *shootForm) result() model.Shoot {
	var s model.Shoot
	if f.editing != nil {
		s = *f.editing
	} else if *f.personal {
		s = model.NewPersonalEvent(*f.title, *f.date, *f.timeOfDay, *f.location)
	} else {
		s = model.NewWorkShoot(*f.clientID, *f.title, *f.date, *f.timeOfDay, *f.location)
	}

	s.Title = *f.title
	s.IsPersonal = *f.personal
	s.ClientID = *f.clientID
	s.PackageType = *f.packageType
	s.Date = *f.date
	s.Time = *f.timeOfDay
	s.Location = *f.location
	s.Price = parseFloat(*f.price)
	s.Deposit = parseFloat(*f.deposit)
	s.PaymentStatus = model.PaymentStatus(*f.payment)
	s.Status = model.ShootStatus(*f.status)
	s.MakeupArtist = *f.makeupArtist
	s.MakeupPrice = parseFloat(*f.makeupPrice)
	s.Hairstylist = *f.hairstylist
	s.HairstylistPrice = parseFloat(*f.hairstylistPrice)
	s.Notes = *f.notes
	s.ReminderMinutes, _ = strconv.Atoi(*f.reminder)

	if f.editing != nil && s.ReminderMinutes != f.editing.ReminderMinutes {
		s.ReminderSent = false
	}

	s.Normalize()
	return s
}

// wantsReminder reports whether the submitted shoot has a reminder
// configured; the caller requests notification permission in that case.
func (f *shootForm) wantsReminder() bool {
	n, _ := strconv.Atoi(*f.reminder)
	return n > 0
}

func required(name string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s é obrigatório", name)
		}
		return nil
	}
}

func validDate(v string) error {
	if _, err := time.Parse("2006-01-02", v); err != nil {
		return fmt.Errorf("data inválida, use AAAA-MM-DD")
	}
	return nil
}

func validTime(v string) error {
	if _, err := time.Parse("15:04", v); err != nil {
		return fmt.Errorf("hora inválida, use HH:MM")
	}
	return nil
}

func validMoney(v string) error {
	if v == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64); err != nil {
		return fmt.Errorf("valor inválido")
	}
	return nil
}

func parseFloat(v string) float64 {
	f, _ := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	return f
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
