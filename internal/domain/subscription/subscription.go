package subscription

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "cinepass/internal/domain/subscription/valueobjects"
)

const (
	maxFamilyAdults   = 2
	maxFamilyChildren = 2
)

// Subscription is the membership aggregate. It is immutable after
// construction: the tariff is resolved exactly once and every
// computation is a pure read, so instances are safe for concurrent use.
type Subscription struct {
	formula             vo.Formula
	commitment          vo.Commitment
	startDate           time.Time
	adults              int
	children            int
	recordBookPresented bool
	tariff              vo.TariffPlan
}

// NewSubscription creates a subscription for a single adult with no
// household record book.
func NewSubscription(formula vo.Formula, durationMonths int, startDate time.Time) (*Subscription, error) {
	return NewHouseholdSubscription(formula, durationMonths, startDate, 1, 0, false)
}

// NewHouseholdSubscription creates a subscription with explicit
// household attributes. The family formula requires at most 2 adults,
// at most 2 children and a presented household record book; other
// formulas ignore these attributes.
func NewHouseholdSubscription(formula vo.Formula, durationMonths int, startDate time.Time,
	adults, children int, recordBookPresented bool) (*Subscription, error) {

	commitment, err := vo.NewCommitment(durationMonths)
	if err != nil {
		return nil, err
	}
	tariff, err := TariffFor(formula, commitment)
	if err != nil {
		return nil, err
	}

	s := &Subscription{
		formula:             formula,
		commitment:          commitment,
		startDate:           startDate,
		adults:              adults,
		children:            children,
		recordBookPresented: recordBookPresented,
		tariff:              tariff,
	}

	if formula.IsFamily() && !s.ValidateHousehold() {
		return nil, fmt.Errorf("%w: adults=%d children=%d record book presented=%t",
			ErrInvalidHousehold, adults, children, recordBookPresented)
	}

	return s, nil
}

// Formula returns the subscribed formula.
func (s *Subscription) Formula() vo.Formula {
	return s.formula
}

// Commitment returns the commitment duration.
func (s *Subscription) Commitment() vo.Commitment {
	return s.commitment
}

// StartDate returns the subscription start date.
func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

// Adults returns the declared adult count.
func (s *Subscription) Adults() int {
	return s.adults
}

// Children returns the declared child count.
func (s *Subscription) Children() int {
	return s.children
}

// RecordBookPresented reports whether the household record book was shown.
func (s *Subscription) RecordBookPresented() bool {
	return s.recordBookPresented
}

// Tariff returns the tariff resolved at construction.
func (s *Subscription) Tariff() vo.TariffPlan {
	return s.tariff
}

// ValidateHousehold re-checks the family household rule. Non-family
// formulas always pass. The result is fixed at construction time; the
// query exists so an already-built subscription can be re-audited.
func (s *Subscription) ValidateHousehold() bool {
	if !s.formula.IsFamily() {
		return true
	}
	return s.adults <= maxFamilyAdults &&
		s.children <= maxFamilyChildren &&
		s.recordBookPresented
}

// MonthlyFee returns the flat monthly fee of the resolved tariff.
func (s *Subscription) MonthlyFee() decimal.Decimal {
	return s.tariff.MonthlyFee()
}

// FirstPayment returns the prorated first payment for the start date's
// day of month, rounded to 2 decimals half-up.
func (s *Subscription) FirstPayment() (decimal.Decimal, error) {
	payment, err := s.tariff.FirstPaymentForDay(s.startDate.Day())
	if err != nil {
		return decimal.Decimal{}, err
	}
	return payment.Round(2), nil
}

// TotalCost returns the cost over the whole commitment: the prorated
// first period plus the flat fee for each remaining month. Rounding to
// 2 decimals half-up is applied at the final step only.
func (s *Subscription) TotalCost() (decimal.Decimal, error) {
	first, err := s.FirstPayment()
	if err != nil {
		return decimal.Decimal{}, err
	}
	remaining := decimal.NewFromInt(int64(s.commitment.RemainingMonths()))
	return first.Add(s.MonthlyFee().Mul(remaining)).Round(2), nil
}

// TwelveMonthOutlay returns the cost of covering a reference year with
// this subscription. A monthly commitment simply rolls at the flat fee;
// a 6-month commitment is renewed back to back, billing its prorated
// first payment once per renewal; a 12-month commitment is its total
// cost.
func (s *Subscription) TwelveMonthOutlay() (decimal.Decimal, error) {
	if s.commitment == vo.CommitmentMonthly {
		return s.MonthlyFee().Mul(decimal.NewFromInt(12)).Round(2), nil
	}
	first, err := s.FirstPayment()
	if err != nil {
		return decimal.Decimal{}, err
	}
	renewals := int64(12 / s.commitment.Months())
	flatMonths := decimal.NewFromInt(12 - renewals)
	total := first.Mul(decimal.NewFromInt(renewals)).Add(s.MonthlyFee().Mul(flatMonths))
	return total.Round(2), nil
}

// String returns a printable summary of the subscription.
func (s *Subscription) String() string {
	// Day-of-month from time.Time is always within 1-31, so the first
	// payment cannot fail here.
	first, _ := s.FirstPayment()
	return fmt.Sprintf("Formula: %s | Duration: %s | Monthly fee: %s€ | First payment: %s€ | Start: %s",
		s.formula.Label(),
		s.commitment,
		s.MonthlyFee().StringFixed(2),
		first.StringFixed(2),
		s.startDate.Format("2006-01-02"))
}
