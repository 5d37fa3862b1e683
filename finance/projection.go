// Package finance holds the closed-form investment formulas: SIP and lump-sum
// growth, inflation compounding, doubling time and goal-based contributions.
//
// Every function is pure. Inputs outside a formula's domain produce
// ErrInvalidInput (or ErrInvalidRate) instead of NaN or Inf, so callers can
// treat the value as unavailable.
package finance

import (
	"fmt"
	"math"
	"strings"
)

const monthsPerYear = 12

// Timing says when a periodic contribution is credited within its month.
type Timing int

const (
	// AnnuityDue credits each contribution at the start of the month, so it
	// compounds for one extra period.
	AnnuityDue Timing = iota
	// OrdinaryAnnuity credits each contribution at the end of the month.
	OrdinaryAnnuity
)

func (t Timing) String() string {
	switch t {
	case AnnuityDue:
		return "due"
	case OrdinaryAnnuity:
		return "ordinary"
	}
	return fmt.Sprintf("Timing(%d)", int(t))
}

// ParseTiming accepts "due" or "ordinary". The empty string selects AnnuityDue.
func ParseTiming(s string) (Timing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "due", "annuity-due", "begin":
		return AnnuityDue, nil
	case "ordinary", "end":
		return OrdinaryAnnuity, nil
	}
	return 0, fmt.Errorf("%w: unknown timing %q", ErrInvalidInput, s)
}

// ProjectSIP returns the future value of a monthly contribution, credited at
// the start of each month, compounded monthly.
func ProjectSIP(monthlyContribution, annualRatePercent, years float64) (float64, error) {
	return FutureValueOfSeries(monthlyContribution, annualRatePercent, years, AnnuityDue)
}

// FutureValueOfSeries returns the future value of a fixed monthly
// contribution. A zero rate degrades to contribution * months.
func FutureValueOfSeries(contribution, annualRatePercent, years float64, timing Timing) (float64, error) {
	if err := nonNegative("contribution", contribution); err != nil {
		return 0, err
	}
	if err := nonNegative("years", years); err != nil {
		return 0, err
	}
	if err := growthRate(annualRatePercent); err != nil {
		return 0, err
	}

	n := years * monthsPerYear
	r := MonthlyRate(annualRatePercent)
	if contribution == 0 || n == 0 {
		return 0, nil
	}
	if r == 0 {
		return checkResult(contribution * n)
	}

	fv := contribution * seriesFactor(r, n)
	if timing == AnnuityDue {
		fv *= 1 + r
	}
	return checkResult(fv)
}

// ProjectLumpSum returns principal compounded annually for years.
func ProjectLumpSum(principal, annualRatePercent, years float64) (float64, error) {
	return Compound(principal, annualRatePercent, years)
}

// ProjectInflationAdjusted returns what currentValue will cost after years of
// inflation at inflationRatePercent.
func ProjectInflationAdjusted(currentValue, inflationRatePercent, years float64) (float64, error) {
	return Compound(currentValue, inflationRatePercent, years)
}

// Compound grows value by annualRatePercent once a year for years.
// A zero rate returns value unchanged.
func Compound(value, annualRatePercent, years float64) (float64, error) {
	if err := nonNegative("value", value); err != nil {
		return 0, err
	}
	if err := nonNegative("years", years); err != nil {
		return 0, err
	}
	if err := growthRate(annualRatePercent); err != nil {
		return 0, err
	}
	return checkResult(value * math.Pow(1+annualRatePercent/100, years))
}

// YearsToDouble returns how long annual compounding at annualRatePercent takes
// to double a value. Rates at or below zero never double and yield ErrInvalidRate.
func YearsToDouble(annualRatePercent float64) (float64, error) {
	if !isFinite(annualRatePercent) {
		return 0, fmt.Errorf("%w: rate %v", ErrInvalidRate, annualRatePercent)
	}
	if annualRatePercent <= 0 {
		return 0, fmt.Errorf("%w: %v%% never doubles", ErrInvalidRate, annualRatePercent)
	}
	return checkResult(math.Ln2 / math.Log1p(annualRatePercent/100))
}

// RequiredMonthlySIP returns the end-of-month contribution that grows to
// goalAmount. It is the exact inverse of FutureValueOfSeries with OrdinaryAnnuity.
func RequiredMonthlySIP(goalAmount, annualRatePercent, years float64) (float64, error) {
	return RequiredContribution(goalAmount, annualRatePercent, years, OrdinaryAnnuity)
}

// RequiredContribution solves FutureValueOfSeries for the contribution.
// The goal, the rate and the horizon must all be positive.
func RequiredContribution(goalAmount, annualRatePercent, years float64, timing Timing) (float64, error) {
	if !isFinite(goalAmount) || goalAmount <= 0 {
		return 0, fmt.Errorf("%w: goal amount must be positive, got %v", ErrInvalidInput, goalAmount)
	}
	r := MonthlyRate(annualRatePercent)
	if !isFinite(r) || r <= 0 {
		return 0, fmt.Errorf("%w: rate must be positive, got %v%%", ErrInvalidInput, annualRatePercent)
	}
	n := years * monthsPerYear
	if !isFinite(n) || n <= 0 {
		return 0, fmt.Errorf("%w: years must be positive, got %v", ErrInvalidInput, years)
	}

	factor := seriesFactor(r, n)
	if timing == AnnuityDue {
		factor *= 1 + r
	}
	if math.IsInf(factor, 0) {
		return 0, fmt.Errorf("%w: growth factor", ErrNumericOverflow)
	}
	return checkResult(goalAmount / factor)
}

// MonthlyRate converts an annual percentage into a monthly fraction.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / monthsPerYear
}

// seriesFactor is ((1+r)^n - 1) / r, the future value of n unit payments.
func seriesFactor(r, n float64) float64 {
	return math.Expm1(n*math.Log1p(r)) / r
}

func nonNegative(name string, v float64) error {
	if !isFinite(v) || v < 0 {
		return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidInput, name, v)
	}
	return nil
}

// growthRate rejects rates that would wipe out (or invert) the value.
func growthRate(annualRatePercent float64) error {
	if !isFinite(annualRatePercent) || annualRatePercent <= -100 {
		return fmt.Errorf("%w: %v%%", ErrInvalidRate, annualRatePercent)
	}
	return nil
}

func checkResult(v float64) (float64, error) {
	switch {
	case math.IsNaN(v):
		return 0, fmt.Errorf("%w: result is not a number", ErrInvalidInput)
	case math.IsInf(v, 0):
		return 0, ErrNumericOverflow
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
