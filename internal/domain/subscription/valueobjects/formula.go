package valueobjects

import "fmt"

// Formula identifies a membership offering.
type Formula string

const (
	// Formula26Plus is the unlimited formula for members over 26.
	Formula26Plus Formula = "26-plus"
	// Formula26AndUnder is the unlimited formula for members aged 26 or less.
	Formula26AndUnder Formula = "26-and-under"
	// FormulaTwoPersons is the unlimited formula shared by two members.
	FormulaTwoPersons Formula = "two-persons"
	// FormulaFamily is the household formula (up to 2 adults and 2 children).
	FormulaFamily Formula = "family"
	// FormulaWeekend restricts admission to weekends.
	FormulaWeekend Formula = "weekend"
	// FormulaWeek restricts admission to weekdays.
	FormulaWeek Formula = "week"
	// Formula3D is the unlimited formula with the first 3D feature included.
	Formula3D Formula = "3d"
	// FormulaCinePlusCanal bundles the CINE+ / Canal+ channel access.
	FormulaCinePlusCanal Formula = "cine-plus-canal"
	// FormulaCineDay is the single-weekday formula.
	FormulaCineDay Formula = "cine-day"
)

// AllFormulas lists every formula in catalog order.
var AllFormulas = []Formula{
	Formula26Plus,
	Formula26AndUnder,
	FormulaTwoPersons,
	FormulaFamily,
	FormulaWeekend,
	FormulaWeek,
	Formula3D,
	FormulaCinePlusCanal,
	FormulaCineDay,
}

var formulaLabels = map[Formula]string{
	Formula26Plus:        "Illimité 26+",
	Formula26AndUnder:    "Illimité -26",
	FormulaTwoPersons:    "Illimité 2 Personnes",
	FormulaFamily:        "Illimité Famille",
	FormulaWeekend:       "Illimité Week-end",
	FormulaWeek:          "Illimité Semaine",
	Formula3D:            "Illimité + 1er Film 3D",
	FormulaCinePlusCanal: "CINE+ / Canal+",
	FormulaCineDay:       "CINE DAY",
}

// IsValid checks if the formula is a known offering.
func (f Formula) IsValid() bool {
	_, ok := formulaLabels[f]
	return ok
}

// String returns the formula identifier.
func (f Formula) String() string {
	return string(f)
}

// Label returns the customer-facing name of the formula.
func (f Formula) Label() string {
	return formulaLabels[f]
}

// IsFamily checks if the formula is the household offering.
func (f Formula) IsFamily() bool {
	return f == FormulaFamily
}

// ParseFormula creates a Formula from its string identifier.
func ParseFormula(s string) (Formula, error) {
	f := Formula(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown formula: %q", s)
	}
	return f, nil
}
