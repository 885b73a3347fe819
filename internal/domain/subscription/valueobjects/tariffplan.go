package valueobjects

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// BracketCount is the number of start-day brackets in a tariff.
const BracketCount = 4

var (
	// ErrInvalidStartDay is returned when a start day falls outside the 1-31 range.
	ErrInvalidStartDay = errors.New("start day must be between 1 and 31")
	// ErrNegativeAmount is returned when a tariff amount is negative.
	ErrNegativeAmount = errors.New("tariff amount cannot be negative")
)

// TariffPlan is the pricing definition for one formula under one
// commitment regime: a flat monthly fee plus four prorated first-payment
// amounts keyed by the start-day bracket.
type TariffPlan struct {
	monthlyFee decimal.Decimal
	brackets   [BracketCount]decimal.Decimal
}

// NewTariffPlan creates a TariffPlan. All amounts must be non-negative.
func NewTariffPlan(monthlyFee decimal.Decimal, brackets [BracketCount]decimal.Decimal) (TariffPlan, error) {
	if monthlyFee.IsNegative() {
		return TariffPlan{}, fmt.Errorf("%w: monthly fee %s", ErrNegativeAmount, monthlyFee)
	}
	for i, b := range brackets {
		if b.IsNegative() {
			return TariffPlan{}, fmt.Errorf("%w: bracket %d amount %s", ErrNegativeAmount, i, b)
		}
	}
	return TariffPlan{monthlyFee: monthlyFee, brackets: brackets}, nil
}

// MonthlyFee returns the flat monthly fee.
func (t TariffPlan) MonthlyFee() decimal.Decimal {
	return t.monthlyFee
}

// Bracket returns the first-payment amount for the given bracket index.
func (t TariffPlan) Bracket(i int) decimal.Decimal {
	return t.brackets[i]
}

// FirstPaymentForDay returns the prorated first-payment amount for a
// subscription starting on the given day of month. The brackets
// approximate the days remaining in the billing month:
// days 1-8 -> bracket 0, 9-16 -> 1, 17-22 -> 2, 23-31 -> 3.
func (t TariffPlan) FirstPaymentForDay(day int) (decimal.Decimal, error) {
	if day < 1 || day > 31 {
		return decimal.Decimal{}, fmt.Errorf("%w: got %d", ErrInvalidStartDay, day)
	}
	switch {
	case day <= 8:
		return t.brackets[0], nil
	case day <= 16:
		return t.brackets[1], nil
	case day <= 22:
		return t.brackets[2], nil
	default:
		return t.brackets[3], nil
	}
}

// Equals checks if two tariff plans carry the same amounts.
func (t TariffPlan) Equals(other TariffPlan) bool {
	if !t.monthlyFee.Equal(other.monthlyFee) {
		return false
	}
	for i := range t.brackets {
		if !t.brackets[i].Equal(other.brackets[i]) {
			return false
		}
	}
	return true
}
