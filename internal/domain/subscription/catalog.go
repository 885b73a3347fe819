package subscription

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	vo "cinepass/internal/domain/subscription/valueobjects"
)

// The reference tariff tables are compiled in: one for rolling monthly
// commitments, one for 6/12-month commitments. First-payment proration
// differs between the two regimes and not every formula is offered
// under both.

var monthlyTariffs = map[vo.Formula]vo.TariffPlan{
	vo.Formula26Plus:     mustTariff("22.90", "45.80", "30.53", "30.60", "22.90"),
	vo.Formula26AndUnder: mustTariff("17.90", "35.80", "24.79", "23.87", "17.90"),
	vo.FormulaTwoPersons: mustTariff("36.80", "73.60", "49.32", "49.26", "36.80"),
	vo.FormulaFamily:     mustTariff("37.90", "75.80", "50.59", "50.56", "37.90"),
	vo.FormulaWeekend:    mustTariff("16.90", "33.80", "22.43", "22.53", "16.90"),
	vo.FormulaWeek:       mustTariff("19.90", "39.80", "27.46", "26.53", "19.90"),
}

var commitmentTariffs = map[vo.Formula]vo.TariffPlan{
	vo.Formula26Plus:        mustTariff("22.90", "29.59", "22.90", "22.90", "22.90"),
	vo.Formula26AndUnder:    mustTariff("17.90", "20.84", "17.90", "17.90", "17.90"),
	vo.FormulaTwoPersons:    mustTariff("36.80", "42.93", "36.80", "36.80", "36.80"),
	vo.FormulaFamily:        mustTariff("37.90", "44.24", "37.90", "37.90", "37.90"),
	vo.Formula3D:            mustTariff("30.90", "30.90", "30.90", "30.90", "30.90"),
	vo.FormulaCinePlusCanal: mustTariff("44.90", "44.90", "44.90", "44.90", "44.90"),
	vo.FormulaCineDay:       mustTariff("8.00", "8.00", "8.00", "8.00", "8.00"),
}

func mustTariff(fee, b0, b1, b2, b3 string) vo.TariffPlan {
	t, err := vo.NewTariffPlan(
		decimal.RequireFromString(fee),
		[vo.BracketCount]decimal.Decimal{
			decimal.RequireFromString(b0),
			decimal.RequireFromString(b1),
			decimal.RequireFromString(b2),
			decimal.RequireFromString(b3),
		},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// TariffFor resolves the tariff for a formula under a commitment.
func TariffFor(formula vo.Formula, commitment vo.Commitment) (vo.TariffPlan, error) {
	if !commitment.IsValid() {
		return vo.TariffPlan{}, fmt.Errorf("%w: got %d", ErrUnsupportedDuration, int(commitment))
	}
	table := monthlyTariffs
	if commitment.IsLongTerm() {
		table = commitmentTariffs
	}
	tariff, ok := table[formula]
	if !ok {
		if !formula.IsValid() {
			return vo.TariffPlan{}, fmt.Errorf("%w: %q", ErrUnknownFormula, formula)
		}
		return vo.TariffPlan{}, fmt.Errorf("%w: %s is not offered for %s", ErrFormulaNotOffered, formula, commitment)
	}
	return tariff, nil
}

// Formulas lists the formulas offered for a commitment, in catalog order.
func Formulas(commitment vo.Commitment) ([]vo.Formula, error) {
	if !commitment.IsValid() {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedDuration, int(commitment))
	}
	table := monthlyTariffs
	if commitment.IsLongTerm() {
		table = commitmentTariffs
	}
	order := make(map[vo.Formula]int, len(vo.AllFormulas))
	for i, f := range vo.AllFormulas {
		order[f] = i
	}
	formulas := make([]vo.Formula, 0, len(table))
	for f := range table {
		formulas = append(formulas, f)
	}
	sort.Slice(formulas, func(i, j int) bool {
		return order[formulas[i]] < order[formulas[j]]
	})
	return formulas, nil
}

// AnnualReference returns the reference yearly outlay for a formula:
// twelve flat monthly fees, ignoring first-payment proration. Used as
// the baseline when comparing commitment regimes.
func AnnualReference(formula vo.Formula) (decimal.Decimal, error) {
	tariff, ok := monthlyTariffs[formula]
	if !ok {
		tariff, ok = commitmentTariffs[formula]
	}
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnknownFormula, formula)
	}
	return tariff.MonthlyFee().Mul(decimal.NewFromInt(12)).Round(2), nil
}
