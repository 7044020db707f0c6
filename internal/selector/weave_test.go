package selector

import "testing"

func TestWeaveConcatenatesAncestorChain(t *testing.T) {
	outer := complex(component(Descendant, compound(typeSel("div"))))
	inner := complex(component(Descendant, compound(classSel("foo"))))

	results, ok := Weave([]ComplexSelector{outer, inner})
	if !ok {
		t.Fatal("weave should succeed")
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly one woven result, got %d", len(results))
	}
	if got := results[0].String(); got != "div .foo" {
		t.Errorf("got %q, want %q", got, "div .foo")
	}
}

func TestWeaveSingleSelectorIsIdentity(t *testing.T) {
	only := complex(component(Descendant, compound(classSel("foo"))))
	results, ok := Weave([]ComplexSelector{only})
	if !ok || len(results) != 1 {
		t.Fatalf("weaving a single selector should return it unchanged, got %v ok=%v", results, ok)
	}
}

func TestMergeCombinatorRunsSubsequence(t *testing.T) {
	merged, ok := mergeCombinatorRuns([]Combinator{Child}, []Combinator{Child, Child})
	if !ok {
		t.Fatal("a run that is a subsequence of the other should merge")
	}
	if len(merged) != 2 {
		t.Errorf("expected the longer run to win, got %v", merged)
	}
}

func TestMergeCombinatorRunsIncompatible(t *testing.T) {
	_, ok := mergeCombinatorRuns([]Combinator{Child}, []Combinator{NextSibling})
	if ok {
		t.Fatal("two unrelated single combinators should not merge")
	}
}

func TestMergeFinalCombinatorsSiblingPair(t *testing.T) {
	variants, ok := MergeFinalCombinators([]Combinator{SubsequentSibling}, []Combinator{NextSibling})
	if !ok {
		t.Fatal("'~' and '+' should produce a valid merge")
	}
	if len(variants) != 2 {
		t.Errorf("expected two variant results for '~' vs '+', got %d", len(variants))
	}
}

func TestMergeFinalCombinatorsChildVsSiblingFails(t *testing.T) {
	_, ok := MergeFinalCombinators([]Combinator{Child}, []Combinator{NextSibling})
	if ok {
		t.Fatal("'>' should never merge with a sibling combinator")
	}
}
