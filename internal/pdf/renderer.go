package pdf

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
)

// A4 with uniform margins; all coordinates below are millimeters.
const (
	pageWidth  = 210.0
	marginSide = 14.0
	marginTop  = 14.0
	contentW   = pageWidth - 2*marginSide
)

// Render paints the layout onto a single A4 page. The creation date is pinned
// so identical layouts produce byte-identical files.
func Render(l Layout) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	doc.SetTitle("Quote "+l.QuoteID, true)
	doc.SetMargins(marginSide, marginTop, marginSide)
	doc.SetAutoPageBreak(false, marginTop)
	doc.AddPage()

	// Core fonts are cp1252; translate so "m²" and the footer dashes survive.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	header(doc, tr, l)
	clientBand(doc, tr, l)
	materialBand(doc, tr, l)
	priceTable(doc, tr, l)
	footer(doc, tr, l)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func header(doc *fpdf.Fpdf, tr func(string) string, l Layout) {
	if t := imageType(l.Logo); t != "" {
		doc.RegisterImageOptionsReader("logo", fpdf.ImageOptions{ImageType: t}, bytes.NewReader(l.Logo))
		doc.ImageOptions("logo", marginSide, marginTop, 42, 14, false, fpdf.ImageOptions{ImageType: t}, 0, "")
	} else {
		doc.SetFont("Helvetica", "B", 14)
		doc.SetTextColor(34, 34, 34)
		doc.SetXY(marginSide, marginTop)
		doc.CellFormat(110, 6, tr(l.CompanyName), "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 9)
		doc.SetTextColor(102, 102, 102)
		doc.CellFormat(110, 5, tr(l.CompanyTagline), "", 1, "L", false, 0, "")
	}

	doc.SetXY(pageWidth-marginSide-70, marginTop)
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(34, 34, 34)
	doc.CellFormat(70, 6, "Quote", "", 2, "R", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(102, 102, 102)
	doc.CellFormat(70, 4.5, tr(l.QuoteID), "", 2, "R", false, 0, "")
	doc.CellFormat(70, 4.5, tr(l.QuoteDate), "", 2, "R", false, 0, "")

	doc.SetDrawColor(238, 238, 238)
	doc.Line(marginSide, 34, pageWidth-marginSide, 34)
}

func clientBand(doc *fpdf.Fpdf, tr func(string) string, l Layout) {
	doc.SetXY(marginSide, 38)
	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(34, 34, 34)
	doc.CellFormat(120, 7, tr(l.ClientName), "", 2, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(85, 85, 85)
	doc.CellFormat(120, 5, tr(l.ClientEmail), "", 2, "L", false, 0, "")

	doc.SetXY(pageWidth-marginSide-50, 38)
	doc.CellFormat(50, 5, "Status", "", 2, "R", false, 0, "")
	doc.SetFont("Helvetica", "B", 11)
	doc.SetTextColor(34, 34, 34)
	doc.CellFormat(50, 6, tr(l.Status), "", 2, "R", false, 0, "")

	doc.SetDrawColor(238, 238, 238)
	doc.Line(marginSide, 54, pageWidth-marginSide, 54)
}

func materialBand(doc *fpdf.Fpdf, tr func(string) string, l Layout) {
	doc.SetXY(marginSide, 60)
	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(34, 34, 34)
	doc.CellFormat(contentW, 6, "Material", "", 2, "L", false, 0, "")

	doc.SetFont("Helvetica", "B", 13)
	doc.CellFormat(130, 6, tr(l.MaterialName), "", 2, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(85, 85, 85)
	doc.MultiCell(130, 4.5, tr(l.MaterialDesc), "", "L", false)

	if t := imageType(l.MaterialImage); t != "" {
		doc.RegisterImageOptionsReader("material", fpdf.ImageOptions{ImageType: t}, bytes.NewReader(l.MaterialImage))
		doc.ImageOptions("material", pageWidth-marginSide-42, 66, 42, 30, false, fpdf.ImageOptions{ImageType: t}, 0, "")
	} else {
		doc.SetXY(pageWidth-marginSide-42, 66)
		doc.SetFont("Helvetica", "", 9)
		doc.SetTextColor(119, 119, 119)
		doc.CellFormat(42, 5, tr(noImagePlaceholder), "", 0, "R", false, 0, "")
	}
}

func priceTable(doc *fpdf.Fpdf, tr func(string) string, l Layout) {
	doc.SetXY(marginSide, 102)
	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(34, 34, 34)
	doc.CellFormat(contentW, 6, "Price", "", 2, "L", false, 0, "")

	doc.SetDrawColor(238, 238, 238)
	for _, row := range l.Rows {
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(contentW-45, 9, tr(row.Label), "1", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(45, 9, tr(row.Value), "1", 1, "R", false, 0, "")
	}

	doc.Ln(3)
	doc.SetFont("Helvetica", "", 12)
	doc.SetTextColor(51, 51, 51)
	doc.CellFormat(contentW-60, 8, tr(l.TotalLabel), "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(17, 17, 17)
	doc.CellFormat(60, 8, tr(l.TotalValue), "", 1, "R", false, 0, "")
}

func footer(doc *fpdf.Fpdf, tr func(string) string, l Layout) {
	doc.SetXY(marginSide, 272)
	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(119, 119, 119)
	doc.MultiCell(contentW, 4, tr(l.Footer), "", "C", false)
}
