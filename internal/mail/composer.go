// Package mail builds the mailto handoff for a quote. Nothing here sends
// email; the operator's mail client does.
package mail

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"stonequote/internal/domain"
	"stonequote/internal/pricing"
)

type Message struct {
	Recipient string
	Subject   string
	Body      string
}

// Compose fills the email template for one quote. The signature block comes
// from the company identity, not from per-call literals.
func Compose(q domain.Quote, m domain.Material, co domain.Company) Message {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	lines := []string{
		"Hi " + q.ClientName + ",",
		"",
		"Please find the quote for " + m.Name + ":",
		"- Area: " + num(q.TotalArea) + " m²",
		"- Unit price: " + num(m.PricePerMeter) + " USD/m²",
		"- Total: " + pricing.Currency(q.TotalPrice),
		"",
		"Regards,",
		co.Owner,
		co.Name,
		co.Tagline,
		co.Phone,
		co.Website,
	}
	return Message{
		Recipient: q.ClientEmail,
		Subject:   fmt.Sprintf("Quote from %s - %s", m.Name, q.ID),
		Body:      strings.Join(lines, "\n"),
	}
}

// MailtoURL percent-encodes the message for the mailto scheme. Spaces must be
// %20, not "+", or mail clients show literal plus signs.
func (m Message) MailtoURL() string {
	enc := func(s string) string {
		return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	}
	return "mailto:" + m.Recipient + "?subject=" + enc(m.Subject) + "&body=" + enc(m.Body)
}
