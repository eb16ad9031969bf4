package calculation

import (
	"context"

	"github.com/rpgo/investment-simulator/internal/domain"
	"github.com/rpgo/investment-simulator/pkg/decimal"
)

// SimulationEngine runs both simulation routines and merges their output.
// It holds no per-simulation state and is safe for concurrent use once
// configured.
type SimulationEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
}

// NewSimulationEngine creates a new simulation engine with a no-op logger
func NewSimulationEngine() *SimulationEngine {
	return &SimulationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the simulation engine. If nil is provided, a no-op logger is used.
func (se *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		se.Logger = NopLogger{}
		return
	}
	se.Logger = l
}

// Simulate computes the projection summary and the monthly ledger for p.
// The parameters must have passed validation; the only error returned is
// ctx's when it is already done.
func (se *SimulationEngine) Simulate(ctx context.Context, p domain.SimulationParameters) (*domain.SimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	projection := CalculateProjection(p)
	evolution := GenerateMonthlyEvolution(p)

	result := &domain.SimulationResult{
		ProjectionResult: projection,
		MonthlyEvolution: evolution,
	}

	if se.Debug {
		se.logBreakdown(p, result)
	}
	return result, nil
}

func (se *SimulationEngine) logBreakdown(p domain.SimulationParameters, r *domain.SimulationResult) {
	logger := se.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	logger.Debugf("SIMULATION BREAKDOWN:")
	logger.Debugf("Initial Principal:      %s", decimal.NewMoney(p.InitialPrincipal).Format())
	logger.Debugf("Monthly Contribution:   %s", decimal.NewMoney(p.MonthlyContribution).Format())
	logger.Debugf("Monthly Rate:           %.2f%%", p.MonthlyRatePercent)
	logger.Debugf("Term:                   %d months", p.TermMonths)
	logger.Debugf("Annuity Factor:         %.6f", AnnuityFactor(p.MonthlyRate(), p.TermMonths))
	logger.Debugf("Final Amount:           %s", decimal.NewMoney(r.FinalAmount).Format())
	logger.Debugf("Total Invested:         %s", decimal.NewMoney(r.TotalInvested).Format())
	logger.Debugf("Accumulated Interest:   %s", decimal.NewMoney(r.AccumulatedInterest).Format())
	logger.Debugf("Ledger Closing Balance: %s", decimal.NewMoney(r.LastBalance()).Format())
}
