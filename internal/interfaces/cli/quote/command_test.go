package quote

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinepass/internal/domain/subscription"
	sharedErrors "cinepass/internal/shared/errors"
)

func TestBuildQuote_Weekend(t *testing.T) {
	q, err := buildQuote(request{
		Formula:  "weekend",
		Duration: 1,
		Start:    "2024-05-10",
		Adults:   1,
	}, false)

	require.NoError(t, err)
	assert.Equal(t, "weekend", q.Formula)
	assert.Equal(t, "Illimité Week-end", q.Label)
	assert.Equal(t, 1, q.DurationMonths)
	assert.Equal(t, "16.90", q.MonthlyFee)
	assert.Equal(t, "22.43", q.FirstPayment)
	assert.Equal(t, "22.43", q.TotalCost)
	assert.Equal(t, "202.80", q.TwelveMonthOutlay)
	assert.Contains(t, q.Summary, "2024-05-10")
}

func TestBuildQuote_SixMonthCommitment(t *testing.T) {
	q, err := buildQuote(request{
		Formula:  "26-plus",
		Duration: 6,
		Start:    "2024-05-09",
		Adults:   1,
	}, false)

	require.NoError(t, err)
	assert.Equal(t, "22.90", q.FirstPayment)
	assert.Equal(t, "137.40", q.TotalCost)
}

func TestBuildQuote_MissingFields(t *testing.T) {
	_, err := buildQuote(request{}, false)

	require.Error(t, err)
	assert.True(t, sharedErrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "formula is required")
}

func TestBuildQuote_MalformedDate(t *testing.T) {
	_, err := buildQuote(request{
		Formula:  "weekend",
		Duration: 1,
		Start:    "10/05/2024",
	}, false)

	require.Error(t, err)
	assert.True(t, sharedErrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "start must be a date")
}

func TestBuildQuote_UnknownFormula(t *testing.T) {
	_, err := buildQuote(request{
		Formula:  "platinum",
		Duration: 1,
		Start:    "2024-05-10",
	}, false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown formula")
}

func TestBuildQuote_DomainErrorsPassThrough(t *testing.T) {
	_, err := buildQuote(request{
		Formula:  "weekend",
		Duration: 6,
		Start:    "2024-05-10",
	}, false)
	assert.ErrorIs(t, err, subscription.ErrFormulaNotOffered)

	_, err = buildQuote(request{
		Formula:  "family",
		Duration: 1,
		Start:    "2024-05-10",
		Adults:   3,
		Children: 2,
	}, false)
	assert.ErrorIs(t, err, subscription.ErrInvalidHousehold)
}

func TestRenderJSON(t *testing.T) {
	q, err := buildQuote(request{
		Formula:  "cine-day",
		Duration: 6,
		Start:    "2024-05-20",
	}, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderJSON(&buf, q))

	var decoded Quote
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "8.00", decoded.FirstPayment)
	assert.Equal(t, "48.00", decoded.TotalCost)
}

func TestRenderText(t *testing.T) {
	q, err := buildQuote(request{
		Formula:  "week",
		Duration: 1,
		Start:    "2024-05-10",
	}, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	renderText(&buf, q, "€")

	out := buf.String()
	assert.Contains(t, out, "Illimité Semaine")
	assert.Contains(t, out, "27.46")
	assert.Contains(t, out, "Total over the commitment: 27.46€")
}
