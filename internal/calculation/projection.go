package calculation

import (
	"math"

	"github.com/rpgo/investment-simulator/internal/domain"
	"github.com/rpgo/investment-simulator/pkg/decimal"
)

// CalculateProjection applies the compound-interest formula with a stream of
// monthly contributions:
//
//	M = P(1+i)^n + PMT * ((1+i)^n - 1) / i
//
// where P is the initial principal, PMT the monthly contribution, i the
// monthly rate and n the term in months.
//
// The parameters must already be validated; in particular the monthly rate
// must be strictly positive, since the annuity term divides by it.
func CalculateProjection(p domain.SimulationParameters) domain.ProjectionResult {
	rate := p.MonthlyRate()
	factor := math.Pow(1+rate, float64(p.TermMonths))

	grownPrincipal := p.InitialPrincipal * factor
	grownContributions := p.MonthlyContribution * ((factor - 1) / rate)
	finalAmount := decimal.RoundCents(grownPrincipal + grownContributions)

	totalInvested := decimal.RoundCents(p.InitialPrincipal + p.MonthlyContribution*float64(p.TermMonths))

	// Derived from the rounded figures so the summary always adds up to the cent.
	accumulatedInterest := decimal.RoundCents(finalAmount - totalInvested)

	return domain.ProjectionResult{
		FinalAmount:         finalAmount,
		TotalInvested:       totalInvested,
		AccumulatedInterest: accumulatedInterest,
	}
}

// AnnuityFactor returns ((1+rate)^n - 1) / rate, the multiplier that
// aggregates n equal periodic contributions under compounding.
func AnnuityFactor(rate float64, months int) float64 {
	return (math.Pow(1+rate, float64(months)) - 1) / rate
}
