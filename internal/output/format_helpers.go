package output

import (
	"strings"

	"github.com/shopspring/decimal"

	money "github.com/rpgo/investment-simulator/pkg/decimal"
)

// Currency styles accepted by ConsoleFormatter and the HTML report.
const (
	CurrencyUSD = "usd"
	CurrencyBRL = "brl"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals, e.g.
// "$1234.57" or "-$3.20".
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Round().Format()
}

// FormatBRL formats a decimal as Brazilian reais, e.g. "R$ 1.234,57".
func FormatBRL(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Round().FormatBRL()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// formatAmount renders v in the given currency style; anything other than
// brl means usd.
func formatAmount(v float64, currency string) string {
	d := decimal.NewFromFloat(v)
	if strings.EqualFold(currency, CurrencyBRL) {
		return FormatBRL(d)
	}
	return FormatCurrency(d)
}
