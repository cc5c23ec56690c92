package pricing_test

import (
	"testing"

	"stonequote/internal/pricing"
)

func TestTotal(t *testing.T) {
	cases := []struct {
		area, unit, want float64
	}{
		{10, 45.00, 450.00},
		{2.5, 38.50, 96.25},
		{10, 0, 0},
		{0.01, 62.00, 0.62},
	}
	for _, tc := range cases {
		if got := pricing.Total(tc.area, tc.unit); got != tc.want {
			t.Fatalf("Total(%v, %v) = %v, want %v", tc.area, tc.unit, got, tc.want)
		}
	}
}

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{450, "$450.00"},
		{0, "$0.00"},
		{96.25, "$96.25"},
		{1234.5, "$1,234.50"},
	}
	for _, tc := range cases {
		if got := pricing.Currency(tc.in); got != tc.want {
			t.Fatalf("Currency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestArea(t *testing.T) {
	if got := pricing.Area(10); got != "10 m²" {
		t.Fatalf("Area(10) = %q", got)
	}
	if got := pricing.Area(12.5); got != "12.5 m²" {
		t.Fatalf("Area(12.5) = %q", got)
	}
}

func TestDate(t *testing.T) {
	if got := pricing.Date("2026-01-15 10:30:00"); got != "Jan 15, 2026" {
		t.Fatalf("Date = %q", got)
	}
	// Unparseable input passes through untouched.
	if got := pricing.Date("soon"); got != "soon" {
		t.Fatalf("Date passthrough = %q", got)
	}
}
