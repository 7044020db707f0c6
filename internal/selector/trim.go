package selector

// trimDegenerateThreshold bounds the O(n^2) pairwise superselector
// comparisons Trim would otherwise perform. Past this many candidates the
// redundancy check degenerates to a flatten, trading a larger generated
// selector list for bounded compile time on pathological @extend fan-out.
const trimDegenerateThreshold = 100

// Source pairs a generated complex selector with the specificity of the
// selector that produced it (via @extend), which Trim needs to decide
// whether a selector that is a superselector of another is actually
// redundant: a more specific superselector must still be kept.
type Source struct {
	Selector    ComplexSelector
	Specificity Specificity
}

// Trim removes selectors that are made redundant by another selector in the
// same generated set. Candidates are visited in order, and a candidate is
// dropped only when it is a superselector of some already-kept candidate
// AND that kept candidate's originating specificity is at least as high as
// the candidate's own. Each inner slice
// groups the selectors generated from one original complex selector, since
// candidates from the same origin are never considered redundant relative
// to each other.
func Trim(groups [][]Source) []ComplexSelector {
	total := 0
	for _, g := range groups {
		total += len(g)
	}

	if total > trimDegenerateThreshold {
		flat := make([]ComplexSelector, 0, total)
		for _, g := range groups {
			for _, s := range g {
				flat = append(flat, s.Selector)
			}
		}
		return flat
	}

	kept := make([]ComplexSelector, 0, total)
	keptSources := make([]Source, 0, total)
	keptGroups := make([]int, 0, total)

	for groupIndex, group := range groups {
		for _, candidate := range group {
			redundant := false
			for i, other := range keptSources {
				if keptGroups[i] == groupIndex {
					continue
				}
				if IsSuperselectorOf(candidate.Selector, other.Selector) &&
					!other.Specificity.Less(candidate.Specificity) {
					redundant = true
					break
				}
			}
			if !redundant {
				kept = append(kept, candidate.Selector)
				keptSources = append(keptSources, candidate)
				keptGroups = append(keptGroups, groupIndex)
			}
		}
	}

	return kept
}
