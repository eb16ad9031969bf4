package config

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rpgo/investment-simulator/internal/domain"
)

// FieldError describes why a single input field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (fe FieldError) Error() string {
	return fe.Field + ": " + fe.Message
}

// ValidationErrors collects every rejected field of one input, in field order.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	parts := make([]string, len(ve))
	for i, fe := range ve {
		parts[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// First returns the first field error; the zero value when empty.
func (ve ValidationErrors) First() FieldError {
	if len(ve) == 0 {
		return FieldError{}
	}
	return ve[0]
}

// MsgInvalidNumber is reported for non-numeric, NaN or infinite values.
const MsgInvalidNumber = "please enter a valid numeric value"

// ParameterInput is the raw, unvalidated shape of a simulation request.
// Pointer fields distinguish a missing value from an explicit zero; the term
// is a float so that 12.5 can be reported instead of silently truncated.
type ParameterInput struct {
	InitialPrincipal    *float64 `json:"initialPrincipal" yaml:"initial_principal" toml:"initial_principal"`
	MonthlyContribution *float64 `json:"monthlyContribution" yaml:"monthly_contribution" toml:"monthly_contribution"`
	MonthlyRatePercent  *float64 `json:"monthlyRatePercent" yaml:"monthly_rate_percent" toml:"monthly_rate_percent"`
	TermMonths          *float64 `json:"termMonths" yaml:"term_months" toml:"term_months"`
}

// Resolve validates the input and returns the parameters the calculation
// engine accepts. The returned error is always a ValidationErrors.
func (in ParameterInput) Resolve() (domain.SimulationParameters, error) {
	var errs ValidationErrors
	check := func(field string, v *float64, rule func(float64) string) {
		if v == nil {
			errs = append(errs, FieldError{Field: field, Message: "field is required"})
			return
		}
		if msg := rule(*v); msg != "" {
			errs = append(errs, FieldError{Field: field, Message: msg})
		}
	}

	check(FieldInitialPrincipal, in.InitialPrincipal, func(v float64) string { return monetaryRule("initial principal", v) })
	check(FieldMonthlyContribution, in.MonthlyContribution, func(v float64) string { return monetaryRule("monthly contribution", v) })
	check(FieldMonthlyRatePercent, in.MonthlyRatePercent, rateRule)
	check(FieldTermMonths, in.TermMonths, termRule)

	if len(errs) > 0 {
		return domain.SimulationParameters{}, errs
	}
	return domain.SimulationParameters{
		InitialPrincipal:    *in.InitialPrincipal,
		MonthlyContribution: *in.MonthlyContribution,
		MonthlyRatePercent:  *in.MonthlyRatePercent,
		TermMonths:          int(*in.TermMonths),
	}, nil
}

// ValidateParameters checks already-typed parameters against the same bounds
// as ParameterInput.Resolve.
func ValidateParameters(p domain.SimulationParameters) error {
	_, err := NewParameterInput(p).Resolve()
	return err
}

// NewParameterInput wraps typed parameters for validation.
func NewParameterInput(p domain.SimulationParameters) ParameterInput {
	term := float64(p.TermMonths)
	return ParameterInput{
		InitialPrincipal:    &p.InitialPrincipal,
		MonthlyContribution: &p.MonthlyContribution,
		MonthlyRatePercent:  &p.MonthlyRatePercent,
		TermMonths:          &term,
	}
}

var twoDecimals = regexp.MustCompile(fmt.Sprintf(`^\d+(\.\d{1,%d})?$`, MaxDecimalPlaces))

// HasAtMostTwoDecimals reports whether v, written in its shortest form, has
// no more than MaxDecimalPlaces fractional digits.
func HasAtMostTwoDecimals(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return twoDecimals.MatchString(strconv.FormatFloat(math.Abs(v), 'f', -1, 64))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func monetaryRule(label string, v float64) string {
	switch {
	case !finite(v):
		return MsgInvalidNumber
	case v < 0:
		return label + " must be greater than or equal to zero"
	case v > MaxMonetaryAmount:
		return fmt.Sprintf("%s cannot exceed %s", label, "999,999,999.99")
	case !HasAtMostTwoDecimals(v):
		return label + " must have at most two decimal places"
	}
	return ""
}

func rateRule(v float64) string {
	switch {
	case !finite(v):
		return MsgInvalidNumber
	case v < MinMonthlyRatePercent || v > MaxMonthlyRatePercent:
		return "monthly rate must be between 0.1% and 20% per month"
	case !HasAtMostTwoDecimals(v):
		return "monthly rate must have at most two decimal places"
	}
	return ""
}

func termRule(v float64) string {
	switch {
	case !finite(v):
		return MsgInvalidNumber
	case v != math.Trunc(v):
		return "term must be a whole number of months"
	case v < MinTermMonths:
		return "term must be greater than zero and expressed in months"
	case v > MaxTermMonths:
		return fmt.Sprintf("term cannot exceed %d months (50 years)", MaxTermMonths)
	}
	return ""
}
