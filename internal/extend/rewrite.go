package extend

import (
	"github.com/gosass/sass/internal/sasserr"
	"github.com/gosass/sass/internal/selector"
)

// rewrite applies every matching extension to list, producing the union of
// the original selectors (always preserved) and every selector generated by
// splicing an extender in place of an extended simple selector.
func (r *Registry) rewrite(list selector.SelectorList) (selector.SelectorList, error) {
	groups := make([][]selector.Source, 0, len(list.Selectors))

	for _, cplx := range list.Selectors {
		generated, err := r.rewriteComplex(cplx)
		if err != nil {
			return selector.SelectorList{}, err
		}

		_, spec := selector.ComplexSpecificityRange(cplx)
		group := make([]selector.Source, 0, len(generated))
		for _, g := range generated {
			group = append(group, selector.Source{Selector: g, Specificity: spec})
		}
		groups = append(groups, group)
	}

	return selector.SelectorList{Selectors: selector.Trim(groups)}, nil
}

// rewriteComplex returns every complex selector that should replace cplx:
// the original unchanged, plus one selector per combination of extensions
// that apply to its compounds.
func (r *Registry) rewriteComplex(cplx selector.ComplexSelector) ([]selector.ComplexSelector, error) {
	options := make([][]selector.ComplexSelector, len(cplx.Components))

	for i, comp := range cplx.Components {
		opts := []selector.ComplexSelector{{Components: []selector.Component{comp}}}

		for _, simple := range comp.Compound.Simples {
			exts := r.extensionsBy[simple.String()]
			for _, ext := range exts {
				fragment, ok := spliceExtender(comp, simple, ext.Extender)
				if !ok {
					continue
				}
				ext.satisfied = true
				opts = append(opts, fragment)
			}
		}

		options[i] = opts
	}

	combos := cartesianProduct(options)
	if len(combos) > maxGeneratedSelectors {
		return nil, &sasserr.ExtendFailure{Selector: cplx.String()}
	}

	// Weave's leading-combinator merge only ever looks at the running
	// result's LeadingCombinators against the next fragment's, so a splice
	// whose extender itself carries an ancestor chain only merges correctly
	// at the first join. Extenders written as plain compounds (the common
	// case) carry no LeadingCombinators and concatenate cleanly regardless.
	var results []selector.ComplexSelector
	for _, combo := range combos {
		if len(results) >= maxGeneratedSelectors {
			return nil, &sasserr.ExtendFailure{Selector: cplx.String()}
		}
		chain := make([]selector.ComplexSelector, len(combo))
		copy(chain, combo)
		if len(chain) == 0 {
			continue
		}
		// The chain's leading combinators come from the original selector;
		// restore them on the first link so Weave sees the right prefix.
		chain[0].LeadingCombinators = append([]selector.Combinator{}, cplx.LeadingCombinators...)

		woven, ok := selector.Weave(chain)
		if !ok {
			continue
		}
		results = append(results, woven...)
		if len(results) > maxGeneratedSelectors {
			return nil, &sasserr.ExtendFailure{Selector: cplx.String()}
		}
	}

	return results, nil
}

// spliceExtender replaces simple within comp's compound with the extender's
// trailing compound unified against the rest of the compound, producing a
// fragment whose leading components are the extender's own ancestor chain.
func spliceExtender(comp selector.Component, simple selector.SimpleSelector, extender selector.ComplexSelector) (selector.ComplexSelector, bool) {
	if len(extender.Components) == 0 {
		return selector.ComplexSelector{}, false
	}

	rest := removeSimple(comp.Compound, simple)
	last := extender.Components[len(extender.Components)-1]

	unified, ok := selector.Unify(last.Compound, rest)
	if !ok {
		return selector.ComplexSelector{}, false
	}

	prefix := extender.Components[:len(extender.Components)-1]
	components := make([]selector.Component, 0, len(prefix)+1)
	components = append(components, prefix...)
	components = append(components, selector.Component{
		Compound:            unified,
		TrailingCombinators: comp.TrailingCombinators,
	})

	return selector.ComplexSelector{
		LeadingCombinators: extender.LeadingCombinators,
		Components:         components,
	}, true
}

func removeSimple(compound selector.CompoundSelector, target selector.SimpleSelector) selector.CompoundSelector {
	out := selector.CompoundSelector{Simples: make([]selector.SimpleSelector, 0, len(compound.Simples))}
	key := target.String()
	for _, s := range compound.Simples {
		if s.String() == key {
			continue
		}
		out.Simples = append(out.Simples, s)
	}
	return out
}

// cartesianProduct expands per-position option lists into every ordered
// combination, one per position, stopping early once more than
// maxGeneratedSelectors combinations have been produced (so a caller can see
// from the length that the bound was exceeded).
func cartesianProduct(options [][]selector.ComplexSelector) [][]selector.ComplexSelector {
	combos := [][]selector.ComplexSelector{{}}
	for _, opts := range options {
		if len(opts) == 0 {
			continue
		}
		next := make([][]selector.ComplexSelector, 0, len(combos)*len(opts))
		for _, combo := range combos {
			for _, opt := range opts {
				if len(next) > maxGeneratedSelectors {
					return next
				}
				extended := append(append([]selector.ComplexSelector{}, combo...), opt)
				next = append(next, extended)
			}
		}
		combos = next
	}
	return combos
}
