package store

import (
	"time"

	"github.com/sadopc/fotoagenda/internal/model"
)

// Seed records written on first use so the app is not empty on a fresh
// install. The shoots span today, tomorrow and two days out so the agenda
// and the reminder scheduler have something to chew on immediately.

func seedClients() []model.Client {
	now := time.Now()
	return []model.Client{
		{
			ID:        "c1",
			Name:      "Ana Silva",
			Phone:     "(11) 99999-9999",
			Email:     "ana@email.com",
			Notes:     "Prefere fotos espontâneas",
			CreatedAt: now,
		},
		{
			ID:        "c2",
			Name:      "Carlos Oliveira",
			Phone:     "(21) 98888-8888",
			Email:     "carlos@email.com",
			CreatedAt: now,
		},
	}
}

func seedShoots() []model.Shoot {
	today := time.Now()
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format("2006-01-02")
	}

	return []model.Shoot{
		{
			ID:              "s1",
			ClientID:        "c1",
			Title:           "Ensaio Gestante - Parque",
			PackageType:     "Gold",
			Date:            day(0),
			Time:            "15:00",
			Location:        "Parque Ibirapuera",
			MakeupArtist:    "Julia Beauty",
			MakeupPrice:     200,
			Price:           500,
			Deposit:         150,
			PaymentStatus:   model.PaymentPartial,
			Status:          model.StatusScheduled,
			Notes:           "Levar rebatedor dourado",
			ReminderMinutes: 60,
		},
		{
			ID:            "s2",
			ClientID:      "c2",
			Title:         "Retratos Corporativos",
			PackageType:   "Básico",
			Date:          day(2),
			Time:          "10:00",
			Location:      "Escritório Av. Paulista",
			Price:         800,
			Deposit:       800,
			PaymentStatus: model.PaymentPaid,
			Status:        model.StatusScheduled,
		},
		{
			ID:              "s3",
			ClientID:        model.PersonalClientID,
			Title:           "Consulta Médica",
			IsPersonal:      true,
			Date:            day(1),
			Time:            "08:00",
			Location:        "Clínica Central",
			PaymentStatus:   model.PaymentPaid,
			Status:          model.StatusScheduled,
			ReminderMinutes: 30,
		},
	}
}
