package sassvalue

import (
	"fmt"
	"strings"

	"github.com/gosass/sass/internal/helpers"
	"github.com/gosass/sass/internal/sasserr"
)

// epsilon is the tolerance spec.md §4.1 requires for Number comparison, to
// absorb floating-point round-off from unit conversion and repeated
// arithmetic.
const epsilon = 1e-11

// Unit is an interned unit name ("px", "em", "%", ...). It is a distinct
// type rather than a bare string so unit-compatible arithmetic can look
// itself up in conversionRatios without accidentally matching on an
// unrelated string elsewhere in the evaluator.
type Unit string

// Number is a numeric value with an optional compound unit, expressed as
// parallel numerator and denominator unit lists (so e.g. "px/s" rather than
// forcing a single-unit model).
type Number struct {
	Value            helpers.F64
	NumeratorUnits   []Unit
	DenominatorUnits []Unit
}

func (Number) isValue() {}

// NewUnitless constructs a Number with no unit.
func NewUnitless(v float64) Number {
	return Number{Value: helpers.NewF64(v)}
}

// NewWithUnit constructs a Number with a single numerator unit.
func NewWithUnit(v float64, unit Unit) Number {
	return Number{Value: helpers.NewF64(v), NumeratorUnits: []Unit{unit}}
}

func (n Number) String() string {
	text := fmt.Sprintf("%g", n.Value.Value())
	if len(n.NumeratorUnits) == 0 && len(n.DenominatorUnits) == 0 {
		return text
	}
	var b strings.Builder
	b.WriteString(text)
	for _, u := range n.NumeratorUnits {
		b.WriteString(string(u))
	}
	if len(n.DenominatorUnits) > 0 {
		b.WriteByte('/')
		for i, u := range n.DenominatorUnits {
			if i > 0 {
				b.WriteByte('/')
			}
			b.WriteString(string(u))
		}
	}
	return b.String()
}

func (n Number) IsTruthy() bool { return true }

func (n Number) Equal(other Value) bool {
	o, ok := other.(Number)
	if !ok {
		return false
	}
	converted, convertible := n.convertTo(o.NumeratorUnits, o.DenominatorUnits)
	if !convertible {
		return false
	}
	return floatsEqual(converted.Value.Value(), o.Value.Value())
}

func floatsEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}

// IsUnitless reports whether this Number has neither numerator nor
// denominator units.
func (n Number) IsUnitless() bool {
	return len(n.NumeratorUnits) == 0 && len(n.DenominatorUnits) == 0
}

// conversionRatios maps a unit to its size in the canonical unit of its
// dimension, px (e.g. 1in == 96px, so conversionRatios["in"] is 96).
// Only absolute length units are modeled; unrecognized units are treated as
// incompatible with everything except themselves.
var conversionRatios = map[Unit]float64{
	"px": 1,
	"in": 96,
	"pt": 96.0 / 72.0,
	"pc": 16,
	"cm": 96.0 / 2.54,
	"mm": 96.0 / 25.4,
	"q":  96.0 / 101.6,
}

func unitFactor(u Unit) (float64, bool) {
	f, ok := conversionRatios[u]
	return f, ok
}

// convertTo attempts to express n in terms of the given numerator/
// denominator units, returning the converted Number and whether the
// conversion was possible (units of the same dimension, or an exact
// identity match for units this table doesn't know how to convert).
func (n Number) convertTo(numerators, denominators []Unit) (Number, bool) {
	if unitListsEqual(n.NumeratorUnits, numerators) && unitListsEqual(n.DenominatorUnits, denominators) {
		return n, true
	}
	if len(n.NumeratorUnits) != len(numerators) || len(n.DenominatorUnits) != len(denominators) {
		return Number{}, false
	}

	value := n.Value.Value()
	for i := range numerators {
		factor, ok := unitRatio(n.NumeratorUnits[i], numerators[i])
		if !ok {
			return Number{}, false
		}
		value *= factor
	}
	for i := range denominators {
		factor, ok := unitRatio(n.DenominatorUnits[i], denominators[i])
		if !ok {
			return Number{}, false
		}
		value /= factor
	}

	return Number{Value: helpers.NewF64(value), NumeratorUnits: numerators, DenominatorUnits: denominators}, true
}

// unitRatio returns how many `to` units equal one `from` unit.
func unitRatio(from, to Unit) (float64, bool) {
	if from == to {
		return 1, true
	}
	fromFactor, fromOK := unitFactor(from)
	toFactor, toOK := unitFactor(to)
	if !fromOK || !toOK {
		return 0, false
	}
	return fromFactor / toFactor, true
}

func unitListsEqual(a, b []Unit) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Add returns n + other, converting other's units to n's first; fails if
// the units are incompatible.
func (n Number) Add(other Number) (Number, error) {
	return n.arith(other, func(a, b helpers.F64) helpers.F64 { return a.Add(b) }, "add")
}

// Sub returns n - other, converting other's units to n's first.
func (n Number) Sub(other Number) (Number, error) {
	return n.arith(other, func(a, b helpers.F64) helpers.F64 { return a.Sub(b) }, "subtract")
}

func (n Number) arith(other Number, op func(a, b helpers.F64) helpers.F64, verb string) (Number, error) {
	converted, ok := other.convertTo(n.NumeratorUnits, n.DenominatorUnits)
	if !ok {
		return Number{}, sasserr.NewSassScriptError("%s and %s have incompatible units (cannot %s)", n.String(), other.String(), verb)
	}
	return Number{Value: op(n.Value, converted.Value), NumeratorUnits: n.NumeratorUnits, DenominatorUnits: n.DenominatorUnits}, nil
}

// Mul returns n * other. Units multiply: other's numerators/denominators
// are appended to n's, then any numerator/denominator pair of matching unit
// cancels out.
func (n Number) Mul(other Number) Number {
	numerators := append(append([]Unit{}, n.NumeratorUnits...), other.NumeratorUnits...)
	denominators := append(append([]Unit{}, n.DenominatorUnits...), other.DenominatorUnits...)
	numerators, denominators = cancelUnits(numerators, denominators)
	return Number{Value: n.Value.Mul(other.Value), NumeratorUnits: numerators, DenominatorUnits: denominators}
}

// Div returns n / other, by multiplying n by other with its numerator and
// denominator units swapped.
func (n Number) Div(other Number) Number {
	flipped := Number{Value: helpers.NewF64(1).Div(other.Value), NumeratorUnits: other.DenominatorUnits, DenominatorUnits: other.NumeratorUnits}
	result := n.Mul(flipped)
	result.Value = n.Value.Div(other.Value)
	return result
}

func cancelUnits(numerators, denominators []Unit) ([]Unit, []Unit) {
	for i := 0; i < len(numerators); i++ {
		for j := 0; j < len(denominators); j++ {
			if numerators[i] == denominators[j] {
				numerators = append(numerators[:i], numerators[i+1:]...)
				denominators = append(denominators[:j], denominators[j+1:]...)
				i--
				break
			}
		}
	}
	return numerators, denominators
}

// Compare orders two numbers of compatible units, returning -1, 0, or 1.
// The comparison uses the same epsilon as Equal so that e.g. 0.1 + 0.2 and
// 0.3 compare equal.
func (n Number) Compare(other Number) (int, error) {
	converted, ok := other.convertTo(n.NumeratorUnits, n.DenominatorUnits)
	if !ok {
		return 0, sasserr.NewSassScriptError("%s and %s have incompatible units (cannot compare)", n.String(), other.String())
	}
	a, b := n.Value.Value(), converted.Value.Value()
	if floatsEqual(a, b) {
		return 0, nil
	}
	if a < b {
		return -1, nil
	}
	return 1, nil
}
