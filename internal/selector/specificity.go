package selector

// Specificity is the integer triple CSS specificity is computed from: id
// selectors, then classes/attributes/pseudo-classes, then type selectors.
// Each field is compared most-significant-first; there is no carrying
// between fields regardless of how large a count gets.
type Specificity struct {
	IDs     int
	Classes int
	Types   int
}

// Less reports whether s is strictly lower specificity than other, per the
// standard CSS ordering (ids, then classes, then types).
func (s Specificity) Less(other Specificity) bool {
	if s.IDs != other.IDs {
		return s.IDs < other.IDs
	}
	if s.Classes != other.Classes {
		return s.Classes < other.Classes
	}
	return s.Types < other.Types
}

func (s Specificity) add(other Specificity) Specificity {
	return Specificity{
		IDs:     s.IDs + other.IDs,
		Classes: s.Classes + other.Classes,
		Types:   s.Types + other.Types,
	}
}

// simpleSpecificity returns the [min, max] specificity contribution of a
// single simple selector. Most selectors have a fixed contribution; the
// range only widens for the logical-combinator pseudo-classes, whose
// argument selectors may vary in specificity (":is(a, #b)" ranges from a
// type's specificity up to an id's).
func simpleSpecificity(s SimpleSelector) (min, max Specificity) {
	switch v := s.(type) {
	case *Universal:
		return Specificity{}, Specificity{}
	case *Type:
		sp := Specificity{Types: 1}
		return sp, sp
	case *ID:
		sp := Specificity{IDs: 1}
		return sp, sp
	case *Class, *Attribute:
		sp := Specificity{Classes: 1}
		return sp, sp
	case *Placeholder:
		sp := Specificity{Classes: 1}
		return sp, sp
	case *Parent:
		return Specificity{}, Specificity{}
	case *Pseudo:
		if v.IsElement {
			sp := Specificity{Types: 1}
			return sp, sp
		}
		if !v.IsLogicalCombinator() || v.Selectors == nil {
			sp := Specificity{Classes: 1}
			return sp, sp
		}
		if v.Name == "not" {
			// :not() itself never contributes specificity; only its
			// argument's range does.
			return selectorListSpecificityRange(*v.Selectors)
		}
		return selectorListSpecificityRange(*v.Selectors)
	default:
		return Specificity{}, Specificity{}
	}
}

// CompoundSpecificityRange returns the [min, max] specificity of a compound
// selector by summing each simple selector's own range.
func CompoundSpecificityRange(cs CompoundSelector) (min, max Specificity) {
	for _, s := range cs.Simples {
		smin, smax := simpleSpecificity(s)
		min = min.add(smin)
		max = max.add(smax)
	}
	return
}

// ComplexSpecificityRange returns the [min, max] specificity of a complex
// selector by summing each component's compound range; combinators
// contribute nothing.
func ComplexSpecificityRange(cplx ComplexSelector) (min, max Specificity) {
	for _, comp := range cplx.Components {
		cmin, cmax := CompoundSpecificityRange(comp.Compound)
		min = min.add(cmin)
		max = max.add(cmax)
	}
	return
}

// selectorListSpecificityRange returns the [min, max] specificity across all
// alternatives of a selector list, used for the argument of logical
// combinator pseudo-classes such as ":is(...)".
func selectorListSpecificityRange(list SelectorList) (min, max Specificity) {
	first := true
	for _, cplx := range list.Selectors {
		cmin, cmax := ComplexSpecificityRange(cplx)
		if first {
			min, max = cmin, cmax
			first = false
			continue
		}
		if cmin.Less(min) {
			min = cmin
		}
		if max.Less(cmax) {
			max = cmax
		}
	}
	return
}
