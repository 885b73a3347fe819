package valueobjects

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCommitment is returned for durations other than 1, 6 or 12 months.
	ErrUnsupportedCommitment = errors.New("unsupported commitment duration (1, 6 or 12 months)")
)

// Commitment is the subscription length in months.
type Commitment int

const (
	CommitmentMonthly     Commitment = 1
	CommitmentSixMonth    Commitment = 6
	CommitmentTwelveMonth Commitment = 12
)

var validCommitments = map[Commitment]bool{
	CommitmentMonthly:     true,
	CommitmentSixMonth:    true,
	CommitmentTwelveMonth: true,
}

// NewCommitment creates a Commitment from a month count.
func NewCommitment(months int) (Commitment, error) {
	c := Commitment(months)
	if !c.IsValid() {
		return 0, fmt.Errorf("%w: got %d", ErrUnsupportedCommitment, months)
	}
	return c, nil
}

// IsValid checks if the commitment duration is supported.
func (c Commitment) IsValid() bool {
	return validCommitments[c]
}

// Months returns the duration in months.
func (c Commitment) Months() int {
	return int(c)
}

// RemainingMonths returns the number of periods billed at the flat
// monthly fee after the prorated first period.
func (c Commitment) RemainingMonths() int {
	if c <= 1 {
		return 0
	}
	return int(c) - 1
}

// IsLongTerm reports whether the commitment uses the 6/12-month tariff
// table rather than the rolling monthly one.
func (c Commitment) IsLongTerm() bool {
	return c == CommitmentSixMonth || c == CommitmentTwelveMonth
}

// String returns the duration in a human-readable form.
func (c Commitment) String() string {
	if c == CommitmentMonthly {
		return "1 month"
	}
	return fmt.Sprintf("%d months", int(c))
}
