package selector

import "testing"

func TestIsSuperselectorOfSimpleCase(t *testing.T) {
	a := complex(component(Descendant, compound(classSel("foo"))))
	b := complex(component(Descendant, compound(typeSel("a"), classSel("foo"))))

	if !IsSuperselectorOf(a, b) {
		t.Error(".foo should be a superselector of a.foo")
	}
	if IsSuperselectorOf(b, a) {
		t.Error("a.foo should not be a superselector of .foo")
	}
}

func TestIsSuperselectorOfDescendantChain(t *testing.T) {
	// ".foo" is a superselector of "div .foo" (any ancestor).
	a := complex(component(Descendant, compound(classSel("foo"))))
	b := complex(
		component(Descendant, compound(typeSel("div"))),
		component(Descendant, compound(classSel("foo"))),
	)

	if !IsSuperselectorOf(a, b) {
		t.Error(".foo should be a superselector of div .foo")
	}
}

func TestIsSuperselectorOfChildCombinatorIsStricterThanDescendant(t *testing.T) {
	// "div > .foo" is NOT a superselector of "div .foo" in reverse, but
	// "div .foo" (descendant) IS a superselector of "div > .foo" (child).
	descendant := complex(
		component(Descendant, compound(typeSel("div"))),
		component(Descendant, compound(classSel("foo"))),
	)
	child := complex(
		component(Child, compound(typeSel("div"))),
		component(Descendant, compound(classSel("foo"))),
	)

	if !IsSuperselectorOf(descendant, child) {
		t.Error("descendant combinator selector should be a superselector of the child combinator selector")
	}
	if IsSuperselectorOf(child, descendant) {
		t.Error("child combinator selector should not be a superselector of the descendant combinator selector")
	}
}

func TestIsSuperselectorOfSiblingCombinators(t *testing.T) {
	general := complex(
		component(SubsequentSibling, compound(typeSel("a"))),
		component(Descendant, compound(classSel("foo"))),
	)
	adjacent := complex(
		component(NextSibling, compound(typeSel("a"))),
		component(Descendant, compound(classSel("foo"))),
	)

	if !IsSuperselectorOf(general, adjacent) {
		t.Error("'~' should be a superselector of '+' at the same position")
	}
	if IsSuperselectorOf(adjacent, general) {
		t.Error("'+' should not be a superselector of '~'")
	}
}
