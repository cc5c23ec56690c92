// Package pricing holds the quote arithmetic and the en-US presentation
// formats used on documents, emails and pages.
package pricing

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var enUS = message.NewPrinter(language.AmericanEnglish)

// Total is the quote price: area in m² times the material's unit price.
// Callers reject non-positive areas and unresolved materials before calling;
// no clamping happens here.
func Total(area, unitPrice float64) float64 {
	return area * unitPrice
}

// Currency renders a monetary value as a grouped en-US dollar string,
// e.g. 450 -> "$450.00". Rounding happens only here, at presentation.
func Currency(v float64) string {
	return enUS.Sprintf("$%.2f", v)
}

// Area renders an area with its unit suffix, e.g. 10 -> "10 m²".
func Area(v float64) string {
	return enUS.Sprintf("%v m²", v)
}

// Date renders a store timestamp as "Jan 2, 2006". Unparseable input is
// returned untouched rather than dropped from the document.
func Date(ts string) string {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return ts
}
