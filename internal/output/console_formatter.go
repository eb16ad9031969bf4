package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/investment-simulator/internal/domain"
)

// ConsoleFormatter renders the projection summary followed by the monthly
// ledger as a fixed-width table. Page 0 prints the whole ledger; otherwise
// only the requested page of PerPage rows is shown.
type ConsoleFormatter struct {
	Currency string // usd (default) or brl
	Page     int
	PerPage  int
}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	amount := func(v float64) string { return formatAmount(v, c.Currency) }

	fmt.Fprintln(&buf, "INVESTMENT SIMULATION SUMMARY")
	fmt.Fprintln(&buf, "=============================")
	fmt.Fprintf(&buf, "Final Amount:         %s\n", amount(result.FinalAmount))
	fmt.Fprintf(&buf, "Total Invested:       %s\n", amount(result.TotalInvested))
	fmt.Fprintf(&buf, "Accumulated Interest: %s\n", amount(result.AccumulatedInterest))
	fmt.Fprintln(&buf)

	rows := result.MonthlyEvolution
	heading := "MONTHLY EVOLUTION"
	if c.Page > 0 {
		var page Page
		rows, page = Paginate(result.MonthlyEvolution, c.Page, c.PerPage)
		heading = fmt.Sprintf("%s (page %d of %d, %d months)", heading, page.Page, page.TotalPages, page.TotalItems)
	}
	fmt.Fprintln(&buf, heading)
	fmt.Fprintln(&buf, strings.Repeat("-", 72))
	fmt.Fprintf(&buf, "%5s  %20s  %20s  %20s\n", "Month", "Contribution", "Interest", "Balance")
	for _, row := range rows {
		fmt.Fprintf(&buf, "%5d  %20s  %20s  %20s\n",
			row.Month,
			amount(row.ContributionApplied),
			amount(row.InterestEarned),
			amount(row.CumulativeBalance),
		)
	}
	if len(rows) == 0 {
		fmt.Fprintln(&buf, "(no rows)")
	}
	return buf.Bytes(), nil
}
