package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sadopc/fotoagenda/internal/model"
)

func testFixture() ([]model.Shoot, map[string]*model.Client) {
	clients := map[string]*model.Client{
		"c1": {ID: "c1", Name: "Ana Silva"},
	}
	shoots := []model.Shoot{
		{
			ID:            "s1",
			ClientID:      "c1",
			Title:         "Ensaio Gestante",
			Date:          "2024-06-12",
			Time:          "15:00",
			Location:      "Estúdio",
			Price:         500,
			Deposit:       150,
			PaymentStatus: model.PaymentPartial,
			Status:        model.StatusScheduled,
			Notes:         "trazer véu",
		},
		{
			ID:         "s2",
			ClientID:   model.PersonalClientID,
			Title:      "Consulta Médica",
			IsPersonal: true,
			Date:       "2024-06-13",
			Time:       "08:00",
			Status:     model.StatusScheduled,
		},
		{
			ID:       "s3",
			ClientID: "ghost",
			Title:    "Ensaio órfão",
			Date:     "2024-06-14",
			Time:     "10:00",
			Status:   model.StatusCancelled,
		},
	}
	return shoots, clients
}

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	shoots, clients := testFixture()
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := ToCSV(shoots, clients, path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}

	header := rows[0]
	if header[0] != "ID" || header[2] != "Client" || header[10] != "Balance" {
		t.Fatalf("unexpected header: %v", header)
	}

	s1 := rows[1]
	if s1[2] != "Ana Silva" {
		t.Fatalf("expected client name, got %q", s1[2])
	}
	if s1[8] != "500.00" || s1[9] != "150.00" || s1[10] != "350.00" {
		t.Fatalf("wrong money columns: %v", s1[8:11])
	}

	// Personal events export a blank client
	if rows[2][2] != "" {
		t.Fatalf("expected blank client for personal event, got %q", rows[2][2])
	}

	// Dangling client references degrade to a placeholder
	if rows[3][2] != "Unknown" {
		t.Fatalf("expected Unknown, got %q", rows[3][2])
	}
}

func TestToCSVEmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := ToCSV(nil, nil, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("header row missing")
	}
}

// ============================================================
// JSON
// ============================================================

func TestToJSON(t *testing.T) {
	shoots, clients := testFixture()
	path := filepath.Join(t.TempDir(), "out.json")

	if err := ToJSON(shoots, clients, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		ExportedAt string `json:"exported_at"`
		Count      int    `json:"count"`
		Shoots     []struct {
			ID         string  `json:"id"`
			Client     string  `json:"client"`
			IsPersonal bool    `json:"is_personal"`
			Status     string  `json:"status"`
			Balance    float64 `json:"balance"`
		} `json:"shoots"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}

	if out.ExportedAt == "" {
		t.Fatal("missing exported_at")
	}
	if out.Count != 3 || len(out.Shoots) != 3 {
		t.Fatalf("expected 3 shoots, got count=%d len=%d", out.Count, len(out.Shoots))
	}
	if out.Shoots[0].Client != "Ana Silva" || out.Shoots[0].Balance != 350 {
		t.Fatal("wrong first shoot")
	}
	if !out.Shoots[1].IsPersonal || out.Shoots[1].Client != "" {
		t.Fatal("personal event should carry no client")
	}
	if out.Shoots[2].Status != "cancelled" {
		t.Fatalf("expected cancelled, got %s", out.Shoots[2].Status)
	}
}
