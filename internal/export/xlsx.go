// Package export writes the quote book as an Excel workbook for offline
// bookkeeping.
package export

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"stonequote/internal/domain"
)

// QuoteBook renders all quotes, one row each, with the joined material fields
// inlined the way the list page shows them.
func QuoteBook(quotes []domain.QuoteWithMaterial) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"quote_id",
		"client_name",
		"client_email",
		"material",
		"price_per_meter",
		"total_area_m2",
		"total_price",
		"status",
		"notes",
		"created_at",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	row := 2
	for _, q := range quotes {
		excelRow := []interface{}{
			q.ID,
			q.ClientName,
			q.ClientEmail,
			q.Material.Name,
			q.Material.PricePerMeter,
			q.TotalArea,
			q.TotalPrice,
			q.Status,
			q.Notes,
			q.CreatedAt,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, err
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
