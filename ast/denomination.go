package ast

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// subdenominationScales maps each literal subdenomination to its multiplier in base
// units (wei for the ether units, seconds for the time units).
var subdenominationScales = map[string]decimal.Decimal{
	"wei":     decimal.New(1, 0),
	"gwei":    decimal.New(1, 9),
	"szabo":   decimal.New(1, 12),
	"finney":  decimal.New(1, 15),
	"ether":   decimal.New(1, 18),
	"seconds": decimal.New(1, 0),
	"minutes": decimal.New(60, 0),
	"hours":   decimal.New(3600, 0),
	"days":    decimal.New(86400, 0),
	"weeks":   decimal.New(604800, 0),
	"years":   decimal.New(31536000, 0),
}

// SubdenominatedValue returns the literal's numeric value scaled into base units
// (wei or seconds). Literals without a subdenomination are returned at face value.
// Non-number literals and unrecognized subdenominations are rejected.
func (l *Literal) SubdenominatedValue() (decimal.Decimal, error) {
	if l.Kind != LiteralKindNumber {
		return decimal.Zero, fmt.Errorf("literal %d is a %s literal, not a number", l.ID, l.Kind)
	}
	value, err := decimal.NewFromString(l.Value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("literal %d has unparseable value %q: %v", l.ID, l.Value, err)
	}
	if l.Subdenomination == nil {
		return value, nil
	}
	scale, ok := subdenominationScales[*l.Subdenomination]
	if !ok {
		return decimal.Zero, fmt.Errorf("literal %d has unknown subdenomination %q", l.ID, *l.Subdenomination)
	}
	return value.Mul(scale), nil
}
