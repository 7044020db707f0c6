package selector

import "testing"

func TestUnifyDifferentTypesFails(t *testing.T) {
	_, ok := Unify(compound(typeSel("div")), compound(typeSel("span")))
	if ok {
		t.Fatal("unifying two different concrete type selectors should fail")
	}
}

func TestUnifyUniversalWithType(t *testing.T) {
	result, ok := Unify(compound(&Universal{}), compound(typeSel("a"), classSel("foo")))
	if !ok {
		t.Fatal("unify should succeed")
	}
	if result.String() != "a.foo" {
		t.Errorf("got %q, want %q", result.String(), "a.foo")
	}
}

func TestUnifyMergesSimpleSelectors(t *testing.T) {
	result, ok := Unify(compound(classSel("a")), compound(classSel("b")))
	if !ok {
		t.Fatal("unify should succeed")
	}
	if result.String() != ".a.b" {
		t.Errorf("got %q, want %q", result.String(), ".a.b")
	}
}

func TestUnifyDropsDuplicateSimpleSelectors(t *testing.T) {
	result, ok := Unify(compound(classSel("a")), compound(classSel("a"), classSel("b")))
	if !ok {
		t.Fatal("unify should succeed")
	}
	if result.String() != ".a.b" {
		t.Errorf("got %q, want %q", result.String(), ".a.b")
	}
}

func TestUnifyConflictingPseudoElementsFails(t *testing.T) {
	before := &Pseudo{Name: "before", IsElement: true}
	after := &Pseudo{Name: "after", IsElement: true}
	_, ok := Unify(compound(typeSel("a"), before), compound(typeSel("a"), after))
	if ok {
		t.Fatal("unifying two different pseudo-elements should fail")
	}
}
