package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinepass/internal/shared/errors"
)

type sampleInput struct {
	Name  string `flag:"name" validate:"required"`
	Count int    `flag:"count" validate:"gte=0,lte=12"`
	Date  string `flag:"date" validate:"omitempty,datetime=2006-01-02"`
}

func TestValidateStruct_Valid(t *testing.T) {
	err := ValidateStruct(sampleInput{Name: "ok", Count: 3, Date: "2024-05-10"})

	assert.NoError(t, err)
}

func TestValidateStruct_UsesFlagNames(t *testing.T) {
	err := ValidateStruct(sampleInput{Count: 3})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "name is required")
}

func TestValidateStruct_RangeAndDate(t *testing.T) {
	err := ValidateStruct(sampleInput{Name: "ok", Count: 42, Date: "not-a-date"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "count must be less than or equal to 12")
	assert.Contains(t, err.Error(), "date must be a date in the form 2006-01-02")
}
