package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CentPlaces is the number of fractional digits kept for every monetary amount.
const CentPlaces = 2

// RoundCents rounds a floating-point monetary amount to the nearest cent,
// ties away from zero. It is the single rounding rule applied to every
// monetary figure the simulator emits.
//
// The value is converted through its shortest decimal representation, so
// 2.675 rounds to 2.68 even though the nearest float64 is slightly below it.
func RoundCents(value float64) float64 {
	return decimal.NewFromFloat(value).Round(CentPlaces).InexactFloat64()
}

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the money amount to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(CentPlaces)}
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(CentPlaces)
}

// Format formats the money amount with proper currency formatting
func (m Money) Format() string {
	if m.IsNegative() {
		return "-$" + m.Decimal.Neg().StringFixed(CentPlaces)
	}
	return "$" + m.String()
}

// FormatBRL formats the amount the way pt-BR renders Brazilian reais:
// "R$ 1.234.567,89", with "." grouping thousands and "," as decimal mark.
func (m Money) FormatBRL() string {
	neg := m.IsNegative()
	fixed := m.Decimal.Abs().StringFixed(CentPlaces)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString("R$ ")
	b.WriteString(groupThousands(intPart, '.'))
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

func groupThousands(digits string, sep byte) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
