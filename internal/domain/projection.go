package domain

// SimulationParameters is the validated input of a simulation. Monetary
// amounts carry at most two decimals; MonthlyRatePercent is a per-month rate
// expressed in percent (1 means 1% a month).
type SimulationParameters struct {
	InitialPrincipal    float64 `json:"initialPrincipal" yaml:"initial_principal" toml:"initial_principal"`
	MonthlyContribution float64 `json:"monthlyContribution" yaml:"monthly_contribution" toml:"monthly_contribution"`
	MonthlyRatePercent  float64 `json:"monthlyRatePercent" yaml:"monthly_rate_percent" toml:"monthly_rate_percent"`
	TermMonths          int     `json:"termMonths" yaml:"term_months" toml:"term_months"`
}

// MonthlyRate returns the fractional monthly rate (MonthlyRatePercent / 100).
func (p SimulationParameters) MonthlyRate() float64 {
	return p.MonthlyRatePercent / 100
}

// ProjectionResult is the closed-form summary of a simulation.
type ProjectionResult struct {
	FinalAmount         float64 `json:"finalAmount" yaml:"final_amount"`
	TotalInvested       float64 `json:"totalInvested" yaml:"total_invested"`
	AccumulatedInterest float64 `json:"accumulatedInterest" yaml:"accumulated_interest"`
}

// MonthlyLedgerEntry is one month of the evolution ledger.
type MonthlyLedgerEntry struct {
	Month               int     `json:"month" yaml:"month"`
	ContributionApplied float64 `json:"contributionApplied" yaml:"contribution_applied"`
	InterestEarned      float64 `json:"interestEarned" yaml:"interest_earned"`
	CumulativeBalance   float64 `json:"cumulativeBalance" yaml:"cumulative_balance"`
}

// SimulationResult merges the projection summary with the monthly ledger.
// The two parts come from independent algorithms and are not reconciled.
type SimulationResult struct {
	ProjectionResult `yaml:",inline"`
	MonthlyEvolution []MonthlyLedgerEntry `json:"monthlyEvolution" yaml:"monthly_evolution"`
}

// LastBalance returns the closing balance of the ledger, or zero when empty.
func (r *SimulationResult) LastBalance() float64 {
	if len(r.MonthlyEvolution) == 0 {
		return 0
	}
	return r.MonthlyEvolution[len(r.MonthlyEvolution)-1].CumulativeBalance
}
