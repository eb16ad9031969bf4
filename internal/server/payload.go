package server

import (
	"github.com/shopspring/decimal"

	"github.com/rpgo/investment-simulator/internal/domain"
	"github.com/rpgo/investment-simulator/internal/output"
)

// amount encodes a cent-rounded float in plain decimal notation. The
// default float encoder switches to exponent form from 1e21 upward, which
// would print far more than two fractional digits.
type amount float64

func (a amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.NewFromFloat(float64(a)).String()), nil
}

type ledgerRow struct {
	Month               int    `json:"month"`
	ContributionApplied amount `json:"contributionApplied"`
	InterestEarned      amount `json:"interestEarned"`
	CumulativeBalance   amount `json:"cumulativeBalance"`
}

// simulationData is the success payload. Pagination is present only when
// the caller asked for a page.
type simulationData struct {
	FinalAmount         amount       `json:"finalAmount"`
	TotalInvested       amount       `json:"totalInvested"`
	AccumulatedInterest amount       `json:"accumulatedInterest"`
	MonthlyEvolution    []ledgerRow  `json:"monthlyEvolution"`
	Pagination          *output.Page `json:"pagination,omitempty"`
}

func newSimulationData(p domain.ProjectionResult, entries []domain.MonthlyLedgerEntry) simulationData {
	rows := make([]ledgerRow, len(entries))
	for i, e := range entries {
		rows[i] = ledgerRow{
			Month:               e.Month,
			ContributionApplied: amount(e.ContributionApplied),
			InterestEarned:      amount(e.InterestEarned),
			CumulativeBalance:   amount(e.CumulativeBalance),
		}
	}
	return simulationData{
		FinalAmount:         amount(p.FinalAmount),
		TotalInvested:       amount(p.TotalInvested),
		AccumulatedInterest: amount(p.AccumulatedInterest),
		MonthlyEvolution:    rows,
	}
}
