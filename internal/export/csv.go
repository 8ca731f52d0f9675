package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sadopc/fotoagenda/internal/model"
)

func ToCSV(shoots []model.Shoot, clients map[string]*model.Client, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Title", "Client", "Date", "Time", "Location", "Status", "Payment", "Price", "Deposit", "Balance", "Notes"}); err != nil {
		return err
	}

	for _, s := range shoots {
		row := []string{
			s.ID,
			s.Title,
			clientName(s, clients),
			s.Date,
			s.Time,
			s.Location,
			string(s.Status),
			string(s.PaymentStatus),
			formatMoney(s.Price),
			formatMoney(s.Deposit),
			formatMoney(s.Balance()),
			s.Notes,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func clientName(s model.Shoot, clients map[string]*model.Client) string {
	if s.IsPersonal {
		return ""
	}
	if c, ok := clients[s.ClientID]; ok {
		return c.Name
	}
	return "Unknown"
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
