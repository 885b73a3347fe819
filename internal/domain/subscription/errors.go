package subscription

import (
	"errors"

	vo "cinepass/internal/domain/subscription/valueobjects"
)

var (
	// ErrInvalidStartDay mirrors the tariff value object sentinel so
	// callers can match it from this package.
	ErrInvalidStartDay = vo.ErrInvalidStartDay
	// ErrUnsupportedDuration mirrors the commitment sentinel.
	ErrUnsupportedDuration = vo.ErrUnsupportedCommitment

	ErrFormulaNotOffered = errors.New("formula incompatible with the chosen duration")
	ErrInvalidHousehold  = errors.New("invalid household composition or proof")
	ErrUnknownFormula    = errors.New("unknown formula")
)
