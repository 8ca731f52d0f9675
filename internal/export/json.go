package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/fotoagenda/internal/model"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Shoots     []jsonShoot `json:"shoots"`
}

type jsonShoot struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Client     string  `json:"client,omitempty"`
	IsPersonal bool    `json:"is_personal"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Location   string  `json:"location"`
	Status     string  `json:"status"`
	Payment    string  `json:"payment"`
	Price      float64 `json:"price"`
	Deposit    float64 `json:"deposit"`
	Balance    float64 `json:"balance"`
	Notes      string  `json:"notes,omitempty"`
}

func ToJSON(shoots []model.Shoot, clients map[string]*model.Client, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(shoots),
	}

	for _, s := range shoots {
		export.Shoots = append(export.Shoots, jsonShoot{
			ID:         s.ID,
			Title:      s.Title,
			Client:     clientName(s, clients),
			IsPersonal: s.IsPersonal,
			Date:       s.Date,
			Time:       s.Time,
			Location:   s.Location,
			Status:     string(s.Status),
			Payment:    string(s.PaymentStatus),
			Price:      s.Price,
			Deposit:    s.Deposit,
			Balance:    s.Balance(),
			Notes:      s.Notes,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
