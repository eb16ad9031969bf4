package decimal

import (
	"strconv"
	"strings"
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestRoundCents(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{100.00000000000001, 100},
		{2.344, 2.34},
		{2.345, 2.35},
		{2.675, 2.68}, // float64 is 2.67499999..., shortest form is 2.675
		{1.005, 1.01},
		{0.125, 0.13}, // exact binary tie, away from zero
		{-2.345, -2.35},
		{-0.125, -0.13},
		{10100.004999, 10100},
		{999999999.995, 1000000000},
	}
	for _, c := range cases {
		if got := RoundCents(c.in); got != c.want {
			t.Fatalf("RoundCents(%v) got %v want %v", c.in, got, c.want)
		}
	}
}

func TestRoundCentsIsIdempotent(t *testing.T) {
	for _, v := range []float64{0.1, 10100.12, 123456789.99, 1e20 + 0.5, 0.005} {
		once := RoundCents(v)
		if twice := RoundCents(once); twice != once {
			t.Fatalf("RoundCents not idempotent for %v: %v then %v", v, once, twice)
		}
		text := strconv.FormatFloat(once, 'f', -1, 64)
		if i := strings.IndexByte(text, '.'); i >= 0 && len(text)-i-1 > 2 {
			t.Fatalf("RoundCents(%v) renders as %s", v, text)
		}
	}
}

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}
}

func TestRounding(t *testing.T) {
	// Half away from zero: 2.345 -> 2.35, 2.355 -> 2.36, 2.365 -> 2.37
	cases := []struct {
		in  string
		out string
	}{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
		{"2.365", "2.37"},
		{"-2.365", "-2.37"},
	}
	for _, c := range cases {
		got := NewMoneyFromDecimal(stddec.RequireFromString(c.in)).Round().String()
		if got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestStringAndFormat(t *testing.T) {
	m := NewMoney(1234.5)
	if got := m.String(); got != "1234.50" {
		t.Fatalf("String got %s", got)
	}
	if got := m.Format(); got != "$1234.50" {
		t.Fatalf("Format got %s", got)
	}
	if got := NewMoney(-3.2).Format(); got != "-$3.20" {
		t.Fatalf("Format negative got %s", got)
	}
	if !NewMoney(-0.01).IsNegative() || m.IsNegative() || NewMoney(0).IsNegative() {
		t.Fatalf("IsNegative logic failure")
	}
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{12.5, "R$ 12,50"},
		{999.99, "R$ 999,99"},
		{1000, "R$ 1.000,00"},
		{1234567.891, "R$ 1.234.567,89"},
		{999999999.99, "R$ 999.999.999,99"},
		{-1500.4, "-R$ 1.500,40"},
	}
	for _, c := range cases {
		if got := NewMoney(c.in).FormatBRL(); got != c.want {
			t.Fatalf("FormatBRL(%v) got %q want %q", c.in, got, c.want)
		}
	}
}
