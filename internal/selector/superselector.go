package selector

// IsSuperselectorOf reports whether every element matched by b is also
// matched by a. This is what makes one selector redundant in the presence
// of another, and is the test trim() uses to discard generated selectors
// that add nothing.
func IsSuperselectorOf(a, b ComplexSelector) bool {
	if len(a.LeadingCombinators) != 0 || len(b.LeadingCombinators) != 0 {
		// A selector with leading combinators only makes sense relative to an
		// enclosing context; outside of that context treat it conservatively
		// as comparable only when the leading combinators agree exactly.
		if !combinatorSlicesEqual(a.LeadingCombinators, b.LeadingCombinators) {
			return false
		}
	}
	return complexSuperselector(a.Components, b.Components)
}

func combinatorSlicesEqual(a, b []Combinator) bool {
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

// isCombinatorSuperset reports whether every pair of elements related by
// combinator b is also related by combinator a: the descendant combinator
// is a superset of the child combinator, and the general sibling combinator
// ("~") is a superset of the next-sibling combinator ("+").
func isCombinatorSuperset(a, b Combinator) bool {
	if a == b {
		return true
	}
	if a == Descendant && b == Child {
		return true
	}
	if a == SubsequentSibling && b == NextSibling {
		return true
	}
	return false
}

func complexSuperselector(a, b []Component) bool {
	if len(a) == 0 {
		return true
	}
	if len(b) == 0 {
		return false
	}

	aLast := a[len(a)-1]
	bLast := b[len(b)-1]

	if !compoundIsSuperselector(aLast.Compound, bLast.Compound) {
		return false
	}
	if len(a) == 1 {
		return true
	}

	aComb := lastCombinator(a[len(a)-2].TrailingCombinators)

	if aComb == Descendant {
		for k := len(b) - 2; k >= 0; k-- {
			if complexSuperselector(a[:len(a)-1], b[:k+1]) {
				return true
			}
		}
		return false
	}

	if len(b) < 2 {
		return false
	}
	bComb := lastCombinator(b[len(b)-2].TrailingCombinators)
	if !isCombinatorSuperset(aComb, bComb) {
		return false
	}
	return complexSuperselector(a[:len(a)-1], b[:len(b)-1])
}

func lastCombinator(combinators []Combinator) Combinator {
	if len(combinators) == 0 {
		return Descendant
	}
	return combinators[len(combinators)-1]
}

// compoundIsSuperselector reports whether every simple selector in a is
// implied by some simple selector in b, i.e. whether any element matching b
// necessarily also matches a.
func compoundIsSuperselector(a, b CompoundSelector) bool {
	for _, want := range a.Simples {
		if _, ok := want.(*Parent); ok {
			// The parent reference is resolved by the caller before selectors
			// reach the algebra; treat it as automatically satisfied here.
			continue
		}
		if !simpleIsImpliedBy(want, b.Simples) {
			return false
		}
	}
	return true
}

func simpleIsImpliedBy(want SimpleSelector, by []SimpleSelector) bool {
	if _, ok := want.(*Universal); ok {
		return true
	}

	for _, have := range by {
		switch w := want.(type) {
		case *Type:
			if h, ok := have.(*Type); ok && typeNamesMatch(w.Name, h.Name) {
				return true
			}
		case *ID:
			if h, ok := have.(*ID); ok && h.Name == w.Name {
				return true
			}
		case *Class:
			if h, ok := have.(*Class); ok && h.Name == w.Name {
				return true
			}
		case *Placeholder:
			if h, ok := have.(*Placeholder); ok && h.Name == w.Name {
				return true
			}
		case *Attribute:
			if h, ok := have.(*Attribute); ok && *w == *h {
				return true
			}
		case *Pseudo:
			if h, ok := have.(*Pseudo); ok && pseudoIsImpliedBy(w, h) {
				return true
			}
		}
	}
	return false
}

func typeNamesMatch(want, have NamespacedName) bool {
	if want.Name != have.Name {
		return false
	}
	if want.Namespace == nil || have.Namespace == nil {
		return true
	}
	return *want.Namespace == *have.Namespace
}

func pseudoIsImpliedBy(want, have *Pseudo) bool {
	if want.Name != have.Name || want.IsElement != have.IsElement {
		return false
	}
	if want.Selectors == nil || have.Selectors == nil {
		return want.Argument == have.Argument
	}
	if len(want.Selectors.Selectors) != len(have.Selectors.Selectors) {
		return false
	}
	for i := range want.Selectors.Selectors {
		if !IsSuperselectorOf(want.Selectors.Selectors[i], have.Selectors.Selectors[i]) {
			return false
		}
	}
	return true
}
