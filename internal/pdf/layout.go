// Package pdf produces the printable quote document. Building the layout is
// pure data shaping; painting happens in Render so the two stay separately
// testable and no network call can fail a document.
package pdf

import (
	"strings"

	"stonequote/internal/domain"
	"stonequote/internal/pricing"
)

const (
	noImagePlaceholder = "No image"
	validityNotice     = "This quote is valid for 30 days from the date of issue. Terms and conditions apply."
)

// Layout is the fully shaped, paint-ready content of a quote document.
type Layout struct {
	CompanyName    string
	CompanyTagline string
	Logo           []byte // optional; replaces the name/tagline block when set
	QuoteID        string
	QuoteDate      string
	ClientName     string
	ClientEmail    string
	Status         string
	MaterialName   string
	MaterialDesc   string
	MaterialImage  []byte // optional; placeholder text when empty
	Rows           []Row
	TotalLabel     string
	TotalValue     string
	Footer         string
}

type Row struct {
	Label string
	Value string
}

// BuildLayout shapes one quote and its material into the document content.
// logo and materialImage are pre-fetched bytes; pass nil to fall back to the
// text header and the image placeholder.
func BuildLayout(q domain.Quote, m domain.Material, co domain.Company, logo, materialImage []byte) Layout {
	notes := q.Notes
	if notes == "" {
		notes = "-"
	}
	return Layout{
		CompanyName:    co.Name,
		CompanyTagline: co.Tagline,
		Logo:           logo,
		QuoteID:        "#" + q.ID,
		QuoteDate:      pricing.Date(q.CreatedAt),
		ClientName:     q.ClientName,
		ClientEmail:    q.ClientEmail,
		Status:         q.Status,
		MaterialName:   m.Name,
		MaterialDesc:   m.Description,
		MaterialImage:  materialImage,
		Rows: []Row{
			{Label: "Price per m²", Value: pricing.Currency(m.PricePerMeter)},
			{Label: "Total Area", Value: pricing.Area(q.TotalArea)},
			{Label: "Notes", Value: notes},
		},
		TotalLabel: "Total",
		TotalValue: pricing.Currency(q.TotalPrice),
		Footer: validityNotice + "\n" +
			strings.Join([]string{co.Name, co.Tagline, co.Phone, co.Website}, " — "),
	}
}
