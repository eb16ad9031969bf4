package calculation

import (
	"github.com/rpgo/investment-simulator/internal/domain"
	"github.com/rpgo/investment-simulator/pkg/decimal"
)

// GenerateMonthlyEvolution walks the investment forward one month at a time.
//
// Month 1 earns interest on the opening principal only; from month 2 on the
// monthly contribution is added before interest accrues. Each month's
// interest and closing balance are rounded to cents, and the rounded balance
// is the base for the following month, so every figure in the ledger is the
// exact input of the next row.
//
// The ledger is fully materialised: len(result) == p.TermMonths.
func GenerateMonthlyEvolution(p domain.SimulationParameters) []domain.MonthlyLedgerEntry {
	if p.TermMonths <= 0 {
		return []domain.MonthlyLedgerEntry{}
	}

	rate := p.MonthlyRate()
	ledger := make([]domain.MonthlyLedgerEntry, 0, p.TermMonths)
	previousBalance := p.InitialPrincipal

	for month := 1; month <= p.TermMonths; month++ {
		contribution := 0.0
		if month > 1 {
			contribution = p.MonthlyContribution
		}

		base := previousBalance + contribution
		interest := decimal.RoundCents(base * rate)
		balance := decimal.RoundCents(base + interest)

		ledger = append(ledger, domain.MonthlyLedgerEntry{
			Month:               month,
			ContributionApplied: decimal.RoundCents(contribution),
			InterestEarned:      interest,
			CumulativeBalance:   balance,
		})

		previousBalance = balance
	}

	return ledger
}
