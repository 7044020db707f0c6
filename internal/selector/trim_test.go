package selector

import "testing"

func TestTrimRemovesRedundantSuperselector(t *testing.T) {
	narrow := Source{
		Selector:    complex(component(Descendant, compound(typeSel("a"), classSel("foo")))),
		Specificity: Specificity{Classes: 1, Types: 1},
	}
	wide := Source{
		Selector:    complex(component(Descendant, compound(classSel("foo")))),
		Specificity: Specificity{Classes: 1},
	}

	kept := Trim([][]Source{{narrow}, {wide}})
	if len(kept) != 1 {
		t.Fatalf("expected the wider, lower-specificity selector to be trimmed away, kept %v", kept)
	}
	if kept[0].String() != narrow.Selector.String() {
		t.Errorf("expected to keep %q, kept %q", narrow.Selector.String(), kept[0].String())
	}
}

func TestTrimKeepsMoreSpecificSuperselector(t *testing.T) {
	// Even though ".foo" is a superselector of "a.foo", if ".foo" itself came
	// from a higher-specificity original rule, it should survive.
	a := Source{
		Selector:    complex(component(Descendant, compound(typeSel("a"), classSel("foo")))),
		Specificity: Specificity{Classes: 1, Types: 1},
	}
	b := Source{
		Selector:    complex(component(Descendant, compound(classSel("foo")))),
		Specificity: Specificity{IDs: 1, Classes: 1},
	}

	kept := Trim([][]Source{{a}, {b}})
	if len(kept) != 2 {
		t.Fatalf("expected both selectors to survive, kept %d", len(kept))
	}
}

func TestTrimDegeneratesPastThreshold(t *testing.T) {
	groups := make([][]Source, 0, trimDegenerateThreshold+5)
	for i := 0; i < trimDegenerateThreshold+5; i++ {
		groups = append(groups, []Source{{
			Selector:    complex(component(Descendant, compound(classSel("foo")))),
			Specificity: Specificity{Classes: 1},
		}})
	}

	kept := Trim(groups)
	if len(kept) != len(groups) {
		t.Fatalf("past the threshold, trim should flatten without deduplication: got %d want %d", len(kept), len(groups))
	}
}
