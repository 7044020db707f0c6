package sassvalue

import "github.com/gosass/sass/internal/sasserr"

// AssertNumber returns v as a Number or fails with a SassScriptError
// attributed to argumentName, mirroring the real language's
// "assert_number(arg-name)" family.
func AssertNumber(v Value, argumentName string) (Number, error) {
	if n, ok := v.(Number); ok {
		return n, nil
	}
	return Number{}, sasserr.NewArgumentError(argumentName, "%s is not a number", v.String())
}

// AssertColor returns v as a Color or fails with a SassScriptError.
func AssertColor(v Value, argumentName string) (Color, error) {
	if c, ok := v.(Color); ok {
		return c, nil
	}
	return Color{}, sasserr.NewArgumentError(argumentName, "%s is not a color", v.String())
}

// AssertString returns v as a String or fails with a SassScriptError.
func AssertString(v Value, argumentName string) (String, error) {
	if s, ok := v.(String); ok {
		return s, nil
	}
	return String{}, sasserr.NewArgumentError(argumentName, "%s is not a string", v.String())
}

// AssertBoolean returns v as a Boolean or fails with a SassScriptError.
func AssertBoolean(v Value, argumentName string) (Boolean, error) {
	if b, ok := v.(Boolean); ok {
		return b, nil
	}
	return false, sasserr.NewArgumentError(argumentName, "%s is not a boolean", v.String())
}

// AssertMap returns v as a *Map or fails with a SassScriptError.
func AssertMap(v Value, argumentName string) (*Map, error) {
	if m, ok := v.(*Map); ok {
		return m, nil
	}
	return nil, sasserr.NewArgumentError(argumentName, "%s is not a map", v.String())
}

// AssertList returns v as a List, per spec.md §4.1's "always treats any
// value as a single-element list when asked as_list" — this never fails.
func AssertList(v Value) List {
	if l, ok := v.(List); ok {
		return l
	}
	return List{Items: []Value{v}, Separator: Undecided}
}

// AssertFunction returns v as a Function or fails with a SassScriptError.
func AssertFunction(v Value, argumentName string) (Function, error) {
	if f, ok := v.(Function); ok {
		return f, nil
	}
	return Function{}, sasserr.NewArgumentError(argumentName, "%s is not a function reference", v.String())
}

// AssertInRange returns an error unless n's value lies within [min, max]
// (inclusive), the shape "assert_number" callers need for e.g. percentage
// arguments. The comparison honors spec.md §4.1's epsilon tolerance at the
// boundaries.
func AssertInRange(n Number, min, max float64, argumentName string) error {
	v := n.Value.Value()
	if v < min-epsilon || v > max+epsilon {
		return sasserr.NewArgumentError(argumentName, "%s must be between %g and %g", n.String(), min, max)
	}
	return nil
}
