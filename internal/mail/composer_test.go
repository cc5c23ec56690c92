package mail_test

import (
	"net/url"
	"strings"
	"testing"

	"stonequote/internal/domain"
	"stonequote/internal/mail"
)

var testCompany = domain.Company{
	Owner:   "Ric Bermudez",
	Name:    "Stone By Ric",
	Tagline: "MASONRY WITH ACCOUNTABILITY",
	Phone:   "2032165696",
	Website: "STONEBYRIC.COM",
}

func testQuote() (domain.Quote, domain.Material) {
	q := domain.Quote{
		ID:          "q-123",
		ClientName:  "Dana Fox",
		ClientEmail: "dana@example.com",
		TotalArea:   10,
		TotalPrice:  450.00,
	}
	m := domain.Material{Name: "Bluestone", PricePerMeter: 45.00}
	return q, m
}

func TestComposeTemplate(t *testing.T) {
	q, m := testQuote()
	msg := mail.Compose(q, m, testCompany)

	if msg.Recipient != "dana@example.com" {
		t.Fatalf("recipient = %q", msg.Recipient)
	}
	if msg.Subject != "Quote from Bluestone - q-123" {
		t.Fatalf("subject = %q", msg.Subject)
	}

	want := strings.Join([]string{
		"Hi Dana Fox,",
		"",
		"Please find the quote for Bluestone:",
		"- Area: 10 m²",
		"- Unit price: 45 USD/m²",
		"- Total: $450.00",
		"",
		"Regards,",
		"Ric Bermudez",
		"Stone By Ric",
		"MASONRY WITH ACCOUNTABILITY",
		"2032165696",
		"STONEBYRIC.COM",
	}, "\n")
	if msg.Body != want {
		t.Fatalf("body mismatch:\n got: %q\nwant: %q", msg.Body, want)
	}
}

func TestMailtoURLRoundTrip(t *testing.T) {
	q, m := testQuote()
	msg := mail.Compose(q, m, testCompany)
	raw := msg.MailtoURL()

	if strings.Contains(raw, "+") {
		t.Fatalf("mailto URL must encode spaces as %%20, got %q", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if u.Scheme != "mailto" || u.Opaque != msg.Recipient {
		t.Fatalf("scheme/recipient = %q/%q", u.Scheme, u.Opaque)
	}

	vals := u.Query()
	if got := vals.Get("subject"); got != msg.Subject {
		t.Fatalf("decoded subject = %q, want %q", got, msg.Subject)
	}
	if got := vals.Get("body"); got != msg.Body {
		t.Fatalf("decoded body = %q, want %q", got, msg.Body)
	}
}
