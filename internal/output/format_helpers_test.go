package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		0:        "$0.00",
		1234.567: "$1234.57",
		2.345:    "$2.35",
		-3.2:     "-$3.20",
	}
	for in, want := range cases {
		if got := FormatCurrency(decimal.NewFromFloat(in)); got != want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	cases := map[float64]string{
		0:          "R$ 0,00",
		1234.567:   "R$ 1.234,57",
		999999.995: "R$ 1.000.000,00",
		-50.5:      "-R$ 50,50",
	}
	for in, want := range cases {
		if got := FormatBRL(decimal.NewFromFloat(in)); got != want {
			t.Errorf("FormatBRL(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatAmount(t *testing.T) {
	if got := formatAmount(17609.5, CurrencyUSD); got != "$17609.50" {
		t.Errorf("usd = %q", got)
	}
	if got := formatAmount(17609.5, "BRL"); got != "R$ 17.609,50" {
		t.Errorf("brl = %q", got)
	}
	if got := formatAmount(1, ""); got != "$1.00" {
		t.Errorf("default = %q", got)
	}
}
