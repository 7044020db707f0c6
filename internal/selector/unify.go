package selector

// Unify combines two compound selectors into one that matches exactly the
// elements both would match, or reports that no such compound exists (e.g.
// "div" and "span" can never both apply to the same element).
//
// Tie-break rules:
//   - a type selector must match or be absent on one side; concrete,
//     differently-named type selectors can never unify.
//   - at most one pseudo-element may appear in the result; two different
//     pseudo-elements can never unify.
//   - attribute, class, id, and pseudo-class ordering is preserved
//     left-to-right starting from a's simples, then b's remaining simples.
func Unify(a, b CompoundSelector) (CompoundSelector, bool) {
	aType, aRest := splitTypeSelector(a)
	bType, bRest := splitTypeSelector(b)

	mergedType, ok := unifyTypeSelectors(aType, bType)
	if !ok {
		return CompoundSelector{}, false
	}

	aElem, aRest := splitPseudoElement(aRest)
	bElem, bRest := splitPseudoElement(bRest)

	mergedElem, ok := unifyPseudoElements(aElem, bElem)
	if !ok {
		return CompoundSelector{}, false
	}

	result := make([]SimpleSelector, 0, len(aRest)+len(bRest)+2)
	if mergedType != nil {
		result = append(result, mergedType)
	}
	result = appendSimplesDeduped(result, aRest)
	result = appendSimplesDeduped(result, bRest)
	if mergedElem != nil {
		result = append(result, mergedElem)
	}

	if len(result) == 0 {
		// A compound selector is never empty; a universal selector against a
		// universal selector unifies to "*" rather than nothing.
		result = append(result, &Universal{})
	}

	return CompoundSelector{Simples: result}, true
}

func splitTypeSelector(cs CompoundSelector) (SimpleSelector, []SimpleSelector) {
	for i, s := range cs.Simples {
		switch s.(type) {
		case *Type, *Universal:
			rest := make([]SimpleSelector, 0, len(cs.Simples)-1)
			rest = append(rest, cs.Simples[:i]...)
			rest = append(rest, cs.Simples[i+1:]...)
			return s, rest
		}
	}
	return nil, cs.Simples
}

func splitPseudoElement(simples []SimpleSelector) (SimpleSelector, []SimpleSelector) {
	for i, s := range simples {
		if p, ok := s.(*Pseudo); ok && p.IsElement {
			rest := make([]SimpleSelector, 0, len(simples)-1)
			rest = append(rest, simples[:i]...)
			rest = append(rest, simples[i+1:]...)
			return s, rest
		}
	}
	return nil, simples
}

func unifyTypeSelectors(a, b SimpleSelector) (SimpleSelector, bool) {
	if a == nil {
		return b, true
	}
	if b == nil {
		return a, true
	}

	aUniv, aIsUniv := a.(*Universal)
	_, bIsUniv := b.(*Universal)

	switch {
	case aIsUniv && bIsUniv:
		if aUniv.Namespace == nil {
			return b, true
		}
		return a, true
	case aIsUniv:
		return b, true
	case bIsUniv:
		return a, true
	}

	aType := a.(*Type)
	bType := b.(*Type)
	if aType.Name.Name != bType.Name.Name {
		return nil, false
	}
	if aType.Name.Namespace != nil && bType.Name.Namespace != nil &&
		*aType.Name.Namespace != *bType.Name.Namespace {
		return nil, false
	}
	if aType.Name.Namespace != nil {
		return a, true
	}
	return b, true
}

func unifyPseudoElements(a, b SimpleSelector) (SimpleSelector, bool) {
	if a == nil {
		return b, true
	}
	if b == nil {
		return a, true
	}
	aPseudo := a.(*Pseudo)
	bPseudo := b.(*Pseudo)
	if aPseudo.Name != bPseudo.Name || aPseudo.Argument != bPseudo.Argument {
		return nil, false
	}
	return a, true
}

func appendSimplesDeduped(result []SimpleSelector, additions []SimpleSelector) []SimpleSelector {
	for _, s := range additions {
		duplicate := false
		for _, existing := range result {
			if existing.String() == s.String() {
				duplicate = true
				break
			}
		}
		if !duplicate {
			result = append(result, s)
		}
	}
	return result
}

// UnifyComplex combines every component of two complex selectors pairwise,
// unifying the final compounds of each and retaining every other component
// unchanged. It is used by the extension engine when extending a selector
// whose target spans more than one compound.
func UnifyComplex(a, b ComplexSelector) (ComplexSelector, bool) {
	if len(a.Components) == 0 || len(b.Components) == 0 {
		return ComplexSelector{}, false
	}

	lastA := a.Components[len(a.Components)-1]
	lastB := b.Components[len(b.Components)-1]

	unified, ok := Unify(lastA.Compound, lastB.Compound)
	if !ok {
		return ComplexSelector{}, false
	}

	components := make([]Component, 0, len(a.Components)+len(b.Components)-1)
	components = append(components, a.Components[:len(a.Components)-1]...)
	components = append(components, b.Components[:len(b.Components)-1]...)
	components = append(components, Component{
		Compound:            unified,
		TrailingCombinators: append(append([]Combinator{}, lastA.TrailingCombinators...), lastB.TrailingCombinators...),
	})

	return ComplexSelector{
		LeadingCombinators: append(append([]Combinator{}, a.LeadingCombinators...), b.LeadingCombinators...),
		Components:         components,
	}, true
}
