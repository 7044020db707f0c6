package selector

// Weave braids a chain of complex selectors — read as an ancestor chain,
// outermost first — into the set of complex selectors that represent
// nesting all of them together. It is used by the extension engine both to
// resolve "&" in nested rules and to combine the selectors an @extend
// produces when the extended selector itself has an ancestor chain.
//
// The merge happens in three steps per pair of adjacent selectors in the
// chain: merge leading combinators (least-common-supersequence of the two
// runs, failing unless one run is a subsequence of the other), interleave
// every valid ordering of the two operands' ancestor components that keeps
// each side's own relative order intact, and merge the final trailing
// combinators of the two chains at the single junction where that
// interleaved ancestry meets the pinned, rightmost target component. A
// weave can fail (returns ok=false) when no valid combinator merge exists,
// e.g. weaving a child combinator against a sibling combinator at the same
// boundary.
func Weave(chain []ComplexSelector) ([]ComplexSelector, bool) {
	if len(chain) == 0 {
		return nil, true
	}

	results := []ComplexSelector{chain[0]}
	for _, next := range chain[1:] {
		var merged []ComplexSelector
		for _, partial := range results {
			variants, ok := weavePair(partial, next)
			if !ok {
				return nil, false
			}
			merged = append(merged, variants...)
		}
		results = merged
	}

	return dedupeRootLeaders(results), true
}

// maxWeaveChunksForFullInterleave bounds the chunk-interleaving fan-out below: past this
// many chunks across both sides combined, enumerating every valid interleaving would be
// combinatorially infeasible, so weavePair falls back to the two orderings
// that matter most (each side kept whole, in front of or behind the other).
const maxWeaveChunksForFullInterleave = 6

func weavePair(a, b ComplexSelector) ([]ComplexSelector, bool) {
	leading, ok := mergeCombinatorRuns(a.LeadingCombinators, b.LeadingCombinators)
	if !ok {
		return nil, false
	}

	if len(a.Components) == 0 {
		return []ComplexSelector{{LeadingCombinators: leading, Components: b.Components}}, true
	}
	if len(b.Components) == 0 {
		return []ComplexSelector{{LeadingCombinators: leading, Components: a.Components}}, true
	}

	target := b.Components[len(b.Components)-1]
	parents := b.Components[:len(b.Components)-1]

	// When b contributes no ancestry of its own, there is nothing to
	// interleave: target simply follows a's ancestry, through whatever
	// combinator a's own last component already carries.
	if len(parents) == 0 {
		components := make([]Component, 0, len(a.Components)+1)
		components = append(components, a.Components...)
		components = append(components, target)
		return []ComplexSelector{{LeadingCombinators: leading, Components: components}}, true
	}

	aLast := a.Components[len(a.Components)-1]
	bLast := parents[len(parents)-1]

	merges, ok := MergeFinalCombinators(aLast.TrailingCombinators, bLast.TrailingCombinators)
	if !ok {
		return nil, false
	}

	orderings := interleaveChunks(groupIntoChunks(a.Components), groupIntoChunks(parents))

	results := make([]ComplexSelector, 0, len(orderings)*len(merges))
	for _, merge := range merges {
		for _, ordering := range orderings {
			components := make([]Component, len(ordering))
			copy(components, ordering)
			components[len(components)-1].TrailingCombinators = merge
			components = append(components, target)
			results = append(results, ComplexSelector{LeadingCombinators: leading, Components: components})
		}
	}

	return results, true
}

// groupIntoChunks splits a run of components into the maximal runs bound by
// a combinator stricter than the implicit descendant relation. Components
// joined only by the (reorderable) descendant combinator each form their own
// one-component chunk; a child, next-sibling, or subsequent-sibling
// combinator instead fuses a component to the one that follows it, since
// such a pair can never be reordered relative to anything else.
func groupIntoChunks(components []Component) [][]Component {
	var chunks [][]Component
	var current []Component

	for _, c := range components {
		current = append(current, c)
		if isFreeBoundary(c.TrailingCombinators) {
			chunks = append(chunks, current)
			current = nil
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}

	return chunks
}

func isFreeBoundary(combinators []Combinator) bool {
	for _, c := range combinators {
		if c != Descendant {
			return false
		}
	}
	return true
}

// interleaveChunks enumerates every flattened component sequence that
// preserves aChunks' and bChunks' own internal order while otherwise mixing
// the two sides freely — the "shuffle" dart-sass's weave algorithm performs
// over chunked ancestor sequences. Every chunk boundary this introduces,
// whether within one side or across both, joins through the implicit
// descendant combinator; the caller is responsible for the one combinator
// that bridges the resulting sequence into whatever follows it.
func interleaveChunks(aChunks, bChunks [][]Component) [][]Component {
	if len(aChunks)+len(bChunks) > maxWeaveChunksForFullInterleave {
		natural := flattenChunkOrdering(append(append([][]Component{}, aChunks...), bChunks...))
		swapped := flattenChunkOrdering(append(append([][]Component{}, bChunks...), aChunks...))
		return [][]Component{natural, swapped}
	}

	var orderings [][]Component
	for _, chunkOrder := range shuffleChunks(aChunks, bChunks) {
		orderings = append(orderings, flattenChunkOrdering(chunkOrder))
	}
	return orderings
}

// shuffleChunks recursively picks the next chunk from either a or b,
// producing every interleaving that keeps each side's own chunks in their
// original relative order.
func shuffleChunks(a, b [][]Component) [][][]Component {
	if len(a) == 0 {
		return [][][]Component{append([][]Component{}, b...)}
	}
	if len(b) == 0 {
		return [][][]Component{append([][]Component{}, a...)}
	}

	var results [][][]Component
	for _, rest := range shuffleChunks(a[1:], b) {
		results = append(results, append([][]Component{a[0]}, rest...))
	}
	for _, rest := range shuffleChunks(a, b[1:]) {
		results = append(results, append([][]Component{b[0]}, rest...))
	}
	return results
}

// flattenChunkOrdering concatenates a sequence of chunks into one component
// list, forcing every boundary between consecutive chunks to the implicit
// descendant combinator (a chunk only ever ends at such a boundary, by
// groupIntoChunks' own definition).
func flattenChunkOrdering(chunkOrder [][]Component) []Component {
	var flat []Component
	for i, chunk := range chunkOrder {
		flat = append(flat, chunk...)
		if i < len(chunkOrder)-1 {
			flat[len(flat)-1].TrailingCombinators = nil
		}
	}
	return flat
}

// mergeCombinatorRuns implements the least-common-supersequence merge used
// for both leading-combinator and final-combinator runs: the shorter run
// must be a subsequence of the longer, in which case the longer run is the
// merge result; otherwise the runs are incompatible.
func mergeCombinatorRuns(a, b []Combinator) ([]Combinator, bool) {
	if isSubsequence(a, b) {
		return b, true
	}
	if isSubsequence(b, a) {
		return a, true
	}
	return nil, false
}

func isSubsequence(shorter, longer []Combinator) bool {
	i := 0
	for _, c := range longer {
		if i < len(shorter) && shorter[i] == c {
			i++
		}
	}
	return i == len(shorter)
}

// MergeFinalCombinators implements the dedicated pairwise cases for merging
// the combinator that ends one chain with the combinator that begins the
// next: identical combinators unify to themselves, the general sibling
// combinator ("~") merged against the next-sibling combinator ("+") yields
// both the stricter and the looser result (dart-sass calls this out
// explicitly as producing two selectors), a child combinator (">") can
// never merge with a sibling combinator, and an empty run on either side is
// the identity.
func MergeFinalCombinators(a, b []Combinator) ([][]Combinator, bool) {
	aLast := lastCombinator(a)
	bLast := lastCombinator(b)

	if len(a) == 0 {
		return [][]Combinator{b}, true
	}
	if len(b) == 0 {
		return [][]Combinator{a}, true
	}

	if aLast == bLast {
		return [][]Combinator{a}, true
	}

	isSibling := func(c Combinator) bool { return c == NextSibling || c == SubsequentSibling }

	switch {
	case aLast == SubsequentSibling && bLast == NextSibling:
		return [][]Combinator{{NextSibling}, {SubsequentSibling}}, true
	case aLast == NextSibling && bLast == SubsequentSibling:
		return [][]Combinator{{NextSibling}, {SubsequentSibling}}, true
	case aLast == Child && isSibling(bLast):
		return nil, false
	case bLast == Child && isSibling(aLast):
		return nil, false
	case aLast == Descendant || bLast == Descendant:
		// A descendant combinator is the loosest relation on its axis and
		// cannot coexist with a stricter combinator at the same join point.
		return nil, false
	default:
		return nil, false
	}
}

// dedupeRootLeaders ensures at most one leading ":root" compound survives
// across the woven results by folding each variant's leading run of ":root"
// compounds into one via Unify, dropping only the variants whose leading
// ":root" compounds are genuinely incompatible.
func dedupeRootLeaders(variants []ComplexSelector) []ComplexSelector {
	kept := make([]ComplexSelector, 0, len(variants))
	for _, v := range variants {
		merged, ok := mergeLeadingRoots(v)
		if ok {
			kept = append(kept, merged)
		}
	}
	if len(kept) == 0 {
		return variants
	}
	return kept
}

// mergeLeadingRoots folds c's leading run of ":root" compounds (if more than
// one) into a single compound via Unify, keeping the rest of c unchanged.
// It reports ok=false only when that run's compounds fail to unify.
func mergeLeadingRoots(c ComplexSelector) (ComplexSelector, bool) {
	run := 0
	for run < len(c.Components) && compoundHasPseudo(c.Components[run].Compound, "root") {
		run++
	}
	if run <= 1 {
		return c, true
	}

	merged := c.Components[0].Compound
	for i := 1; i < run; i++ {
		next, ok := Unify(merged, c.Components[i].Compound)
		if !ok {
			return ComplexSelector{}, false
		}
		merged = next
	}

	components := make([]Component, 0, len(c.Components)-run+1)
	components = append(components, Component{
		Compound:            merged,
		TrailingCombinators: c.Components[run-1].TrailingCombinators,
	})
	components = append(components, c.Components[run:]...)

	return ComplexSelector{LeadingCombinators: c.LeadingCombinators, Components: components}, true
}

func compoundHasPseudo(cs CompoundSelector, name string) bool {
	for _, s := range cs.Simples {
		if p, ok := s.(*Pseudo); ok && p.Name == name {
			return true
		}
	}
	return false
}
