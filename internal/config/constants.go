package config

import "github.com/rpgo/investment-simulator/pkg/decimal"

const (
	MaxMonetaryAmount     = 999_999_999.99 // applies to principal and contribution
	MinMonthlyRatePercent = 0.1
	MaxMonthlyRatePercent = 20.0
	MinTermMonths         = 1
	MaxTermMonths         = 600                // 50 years
	MaxDecimalPlaces      = decimal.CentPlaces // fractional digits allowed on monetary input
)

// Field names as they appear on the wire.
const (
	FieldInitialPrincipal    = "initialPrincipal"
	FieldMonthlyContribution = "monthlyContribution"
	FieldMonthlyRatePercent  = "monthlyRatePercent"
	FieldTermMonths          = "termMonths"
)
