package main

import (
	"fmt"
	"math"
	"os"

	calc "github.com/rpgo/investment-simulator/internal/calculation"
	"github.com/rpgo/investment-simulator/internal/config"
	"github.com/rpgo/investment-simulator/internal/domain"
)

// Prints, for every term from 1 up to the parameter file's term, how far the
// ledger's closing balance sits from FinalAmount - contribution, next to the
// allowed drift. Handy when changing the rounding rules.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: ledger_drift <params-file>")
		return
	}
	p := config.NewInputParser()
	params, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	fmt.Println("Term,FinalAmount,LedgerClose,Drift,Allowed")
	worst := 0.0
	for term := 1; term <= params.TermMonths; term++ {
		q := *params
		q.TermMonths = term
		proj := calc.CalculateProjection(q)
		ledger := calc.GenerateMonthlyEvolution(q)
		res := domain.SimulationResult{ProjectionResult: proj, MonthlyEvolution: ledger}

		drift := proj.FinalAmount - q.MonthlyContribution - res.LastBalance()
		allowed := 0.01*calc.AnnuityFactor(q.MonthlyRate(), term) + 0.01 + 1e-9*math.Abs(proj.FinalAmount)
		worst = math.Max(worst, math.Abs(drift)/allowed)
		fmt.Printf("%d,%.2f,%.2f,%.4f,%.4f\n", term, proj.FinalAmount, res.LastBalance(), drift, allowed)
	}
	fmt.Fprintf(os.Stderr, "worst drift/allowed ratio: %.4f\n", worst)
}
