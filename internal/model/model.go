package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ShootStatus is the lifecycle state of a shoot.
type ShootStatus string

const (
	StatusScheduled ShootStatus = "scheduled"
	StatusCompleted ShootStatus = "completed"
	StatusCancelled ShootStatus = "cancelled"
)

// PaymentStatus tracks how much of a work shoot has been paid.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// PersonalClientID is the sentinel client reference carried by personal
// (non-billable) events.
const PersonalClientID = "personal"

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewClient builds a client with a fresh identifier and creation timestamp.
// CreatedAt is set once and never mutated afterwards.
func NewClient(name, phone, email, notes string) Client {
	return Client{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		Notes:     notes,
		CreatedAt: time.Now(),
	}
}

// Shoot is a calendar entry: either a billable work appointment or a
// personal event. Personal events carry no money and no production team;
// NewPersonalEvent and Normalize enforce that.
type Shoot struct {
	ID          string `json:"id"`
	ClientID    string `json:"clientId"`
	Title       string `json:"title"`
	IsPersonal  bool   `json:"isPersonal"`
	PackageType string `json:"packageType,omitempty"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Location    string `json:"location"`

	MakeupArtist     string  `json:"makeupArtist,omitempty"`
	MakeupPrice      float64 `json:"makeupPrice,omitempty"`
	Hairstylist      string  `json:"hairstylist,omitempty"`
	HairstylistPrice float64 `json:"hairstylistPrice,omitempty"`

	Price         float64       `json:"price"`
	Deposit       float64       `json:"deposit"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Status        ShootStatus   `json:"status"`
	Notes         string        `json:"notes,omitempty"`

	ReminderMinutes int  `json:"reminderMinutes"`
	ReminderSent    bool `json:"reminderSent"`
}

// NewWorkShoot builds a billable appointment for the given client.
func NewWorkShoot(clientID, title, date, timeOfDay, location string) Shoot {
	return Shoot{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		Title:         title,
		Date:          date,
		Time:          timeOfDay,
		Location:      location,
		PaymentStatus: PaymentPending,
		Status:        StatusScheduled,
	}
}

// NewPersonalEvent builds a non-billable personal entry. Financial fields
// are zeroed and the payment status is forced to paid so personal events
// never show up in money aggregates.
func NewPersonalEvent(title, date, timeOfDay, location string) Shoot {
	s := Shoot{
		ID:       uuid.NewString(),
		Title:    title,
		Date:     date,
		Time:     timeOfDay,
		Location: location,
		Status:   StatusScheduled,
	}
	s.IsPersonal = true
	s.Normalize()
	return s
}

// Normalize re-applies the personal-event field rules. Call it after any
// edit that may have toggled IsPersonal.
func (s *Shoot) Normalize() {
	if !s.IsPersonal {
		return
	}
	s.ClientID = PersonalClientID
	s.PackageType = ""
	s.Price = 0
	s.Deposit = 0
	s.PaymentStatus = PaymentPaid
	s.MakeupArtist = ""
	s.MakeupPrice = 0
	s.Hairstylist = ""
	s.HairstylistPrice = 0
}

// StartsAt combines Date and Time into a single local instant, used for
// ordering and reminder computation.
func (s Shoot) StartsAt() (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", s.Date+" "+s.Time, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("shoot %s: parse date/time %q %q: %w", s.ID, s.Date, s.Time, err)
	}
	return t, nil
}

// Balance is the amount still owed on a shoot.
func (s Shoot) Balance() float64 {
	return s.Price - s.Deposit
}
