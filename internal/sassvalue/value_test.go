package sassvalue

import "testing"

func TestBooleanTruthiness(t *testing.T) {
	if !True.IsTruthy() {
		t.Error("true should be truthy")
	}
	if False.IsTruthy() {
		t.Error("false should not be truthy")
	}
}

func TestNullIsFalsyButNotFalse(t *testing.T) {
	if Null.IsTruthy() {
		t.Error("null should not be truthy")
	}
	if Null.Equal(False) {
		t.Error("null should not equal false")
	}
}

func TestZeroAndEmptyStringAreTruthy(t *testing.T) {
	expected := []struct {
		value Value
		name  string
	}{
		{NewUnitless(0), "the number 0"},
		{String{Text: "", Quoted: true}, "the empty string"},
	}
	for _, e := range expected {
		if !e.value.IsTruthy() {
			t.Errorf("%s should be truthy", e.name)
		}
	}
}

func TestStringEqualityIgnoresQuoting(t *testing.T) {
	quoted := String{Text: "foo", Quoted: true}
	unquoted := String{Text: "foo", Quoted: false}
	if !quoted.Equal(unquoted) {
		t.Error("quoted and unquoted strings with the same text should be equal")
	}
}

func TestListStringSeparators(t *testing.T) {
	expected := []struct {
		list List
		text string
	}{
		{List{Items: []Value{NewUnitless(1), NewUnitless(2)}, Separator: Comma}, "1, 2"},
		{List{Items: []Value{NewUnitless(1), NewUnitless(2)}, Separator: Space}, "1 2"},
		{List{Items: []Value{NewUnitless(1)}, Separator: Space, Brackets: true}, "[1]"},
	}
	for _, e := range expected {
		if got := e.list.String(); got != e.text {
			t.Errorf("%+v.String() = %q, want %q", e.list, got, e.text)
		}
	}
}

func TestAsListTreatsScalarAsSingleton(t *testing.T) {
	items := AsList(NewUnitless(5))
	if len(items) != 1 || !items[0].Equal(NewUnitless(5)) {
		t.Errorf("AsList of a scalar should be a single-element slice, got %v", items)
	}
}

func TestMapGetSetPreservesOrder(t *testing.T) {
	m := NewMap()
	m.Set(String{Text: "a"}, NewUnitless(1))
	m.Set(String{Text: "b"}, NewUnitless(2))
	m.Set(String{Text: "a"}, NewUnitless(3))

	if m.Len() != 2 {
		t.Fatalf("expected 2 entries after overwriting 'a', got %d", m.Len())
	}

	var keys []string
	m.Each(func(k, v Value) {
		keys = append(keys, k.String())
	})
	if keys[0] != "a" || keys[1] != "b" {
		t.Errorf("expected original insertion order [a b], got %v", keys)
	}

	v, ok := m.Get(String{Text: "a"})
	if !ok || !v.Equal(NewUnitless(3)) {
		t.Errorf("expected overwritten value 3, got %v", v)
	}
}

func TestMapEquality(t *testing.T) {
	a := NewMap()
	a.Set(String{Text: "x"}, NewUnitless(1))

	b := NewMap()
	b.Set(String{Text: "x"}, NewUnitless(1))

	if !a.Equal(b) {
		t.Error("maps with the same entries should be equal regardless of identity")
	}
}
