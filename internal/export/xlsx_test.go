package export_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"stonequote/internal/domain"
	"stonequote/internal/export"
)

func TestQuoteBook(t *testing.T) {
	quotes := []domain.QuoteWithMaterial{
		{
			Quote: domain.Quote{
				ID:          "q-1",
				ClientName:  "Dana Fox",
				ClientEmail: "dana@example.com",
				TotalArea:   10,
				TotalPrice:  450.00,
				Status:      domain.StatusPending,
				CreatedAt:   "2026-01-15 10:30:00",
			},
			Material: domain.Material{Name: "Bluestone", PricePerMeter: 45.00},
		},
		{
			Quote: domain.Quote{
				ID:          "q-2",
				ClientName:  "Sam Ruiz",
				ClientEmail: "sam@example.com",
				TotalArea:   4,
				TotalPrice:  154.00,
				Status:      domain.StatusSent,
			},
			Material: domain.Material{Name: "Travertine", PricePerMeter: 38.50},
		},
	}

	b, err := export.QuoteBook(quotes)
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("export is not a readable workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if got, _ := f.GetCellValue(sheet, "A1"); got != "quote_id" {
		t.Fatalf("header A1 = %q", got)
	}
	if got, _ := f.GetCellValue(sheet, "B2"); got != "Dana Fox" {
		t.Fatalf("B2 = %q", got)
	}
	if got, _ := f.GetCellValue(sheet, "D3"); got != "Travertine" {
		t.Fatalf("D3 = %q", got)
	}
	if got, _ := f.GetCellValue(sheet, "G2"); got != "450" {
		t.Fatalf("G2 = %q", got)
	}
}
