// Package sassvalue implements the tagged-union runtime value model: the
// types every SassScript expression evaluates to (numbers with units,
// colors, strings, lists, maps, booleans, null, and callables), their
// constructors, and the operations the evaluator needs from them. Values
// are immutable; every operation that looks like mutation constructs a new
// value instead.
package sassvalue

import (
	"fmt"
	"strings"

	"github.com/gosass/sass/internal/helpers"
)

// Value is implemented by every kind of runtime value. The marker method
// exists only to encode the variant type in Go's type system; callers
// switch on the concrete type or use the Assert* helpers in assert.go.
type Value interface {
	isValue()
	// String renders the value the way "@debug" would: quotes kept, no CSS
	// serialization rules applied.
	String() string
	// IsTruthy implements Sass's truthiness rule: everything except Null and
	// the literal Boolean false is truthy, including the number 0 and the
	// empty string.
	IsTruthy() bool
	// Equal implements SassScript value equality (spec.md §3): structural on
	// all fields except that compatible-unit Numbers compare by converted
	// value.
	Equal(other Value) bool
}

// Boolean is the two-valued True/False singleton type.
type Boolean bool

func (Boolean) isValue() {}
func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Boolean) IsTruthy() bool { return bool(b) }
func (b Boolean) Equal(other Value) bool {
	o, ok := other.(Boolean)
	return ok && o == b
}

const (
	True  Boolean = true
	False Boolean = false
)

// nullValue is the single Null instance; Null is exported as a Value so
// callers never need to construct one themselves.
type nullValue struct{}

func (nullValue) isValue()         {}
func (nullValue) String() string   { return "null" }
func (nullValue) IsTruthy() bool   { return false }
func (nullValue) Equal(o Value) bool {
	_, ok := o.(nullValue)
	return ok
}

// Null is SassScript's absent value.
var Null Value = nullValue{}

// String is a SassScript string, which may be quoted or unquoted; the two
// compare equal when their text matches regardless of quoting.
type String struct {
	Text   string
	Quoted bool
}

func (String) isValue() {}
func (s String) String() string {
	if !s.Quoted {
		return s.Text
	}
	return helpers.QuoteSingle(s.Text)
}
func (s String) IsTruthy() bool { return true }
func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && o.Text == s.Text
}

// Separator is how a List's items print when joined: with a space, a
// comma, a slash, or (Undecided) whichever the evaluator's context implies —
// an empty or single-element list typically starts Undecided.
type Separator uint8

const (
	Undecided Separator = iota
	Space
	Comma
	Slash
)

func (s Separator) joiner() string {
	switch s {
	case Space:
		return " "
	case Comma:
		return ", "
	case Slash:
		return " / "
	default:
		return " "
	}
}

// List is an ordered sequence of values, optionally bracketed (as in
// "[1, 2, 3]").
type List struct {
	Items     []Value
	Separator Separator
	Brackets  bool
}

func (List) isValue() {}
func (l List) String() string {
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = item.String()
	}
	text := strings.Join(parts, l.Separator.joiner())
	if l.Brackets {
		return "[" + text + "]"
	}
	return text
}
func (l List) IsTruthy() bool { return true }
func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(o.Items) != len(l.Items) || o.Brackets != l.Brackets || o.Separator != l.Separator {
		return false
	}
	for i := range l.Items {
		if !l.Items[i].Equal(o.Items[i]) {
			return false
		}
	}
	return true
}

// AsList treats any value as a single-element list, per spec.md §4.1, so
// callers that accept "a value or a list of values" never need a type
// switch of their own.
func AsList(v Value) []Value {
	if list, ok := v.(List); ok {
		return list.Items
	}
	return []Value{v}
}

// mapEntry preserves insertion order alongside the key/value pair, since
// Map iteration order is observable (e.g. "@each" and map-merge semantics).
type mapEntry struct {
	key   Value
	value Value
}

// Map is an ordered mapping from Value to Value. Keys are compared with
// Value.Equal, not Go equality, so e.g. the numbers 1 and 1.0 collide as
// the same key.
type Map struct {
	entries []mapEntry
}

func (*Map) isValue() {}

// NewMap constructs an empty Map.
func NewMap() *Map {
	return &Map{}
}

func (m *Map) String() string {
	parts := make([]string, len(m.entries))
	for i, e := range m.entries {
		parts[i] = fmt.Sprintf("%s: %s", e.key.String(), e.value.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (m *Map) IsTruthy() bool { return true }
func (m *Map) Equal(other Value) bool {
	o, ok := other.(*Map)
	if !ok || len(o.entries) != len(m.entries) {
		return false
	}
	for _, e := range m.entries {
		v, found := o.Get(e.key)
		if !found || !v.Equal(e.value) {
			return false
		}
	}
	return true
}

// Get looks up key by SassScript equality, returning (value, true) on a
// hit.
func (m *Map) Get(key Value) (Value, bool) {
	for _, e := range m.entries {
		if e.key.Equal(key) {
			return e.value, true
		}
	}
	return nil, false
}

// Set inserts or overwrites key's value, preserving key's original
// insertion position when it already exists.
func (m *Map) Set(key, value Value) {
	for i, e := range m.entries {
		if e.key.Equal(key) {
			m.entries[i].value = value
			return
		}
	}
	m.entries = append(m.entries, mapEntry{key: key, value: value})
}

// Len returns the number of entries in the map.
func (m *Map) Len() int {
	return len(m.entries)
}

// Each calls fn for every entry in insertion order.
func (m *Map) Each(fn func(key, value Value)) {
	for _, e := range m.entries {
		fn(e.key, e.value)
	}
}

// Callable is implemented by first-class function values: either a
// user-defined Sass function/mixin closure or a host (Go) builtin. The
// evaluator that actually invokes callables lives outside this package;
// this interface only needs to be enough for Function to carry identity
// and a display name.
type Callable interface {
	Name() string
}

// Function wraps a Callable as a first-class SassScript value, e.g. what
// "get-function()" returns.
type Function struct {
	Callable Callable
}

func (Function) isValue() {}
func (f Function) String() string {
	return fmt.Sprintf("get-function(%s)", helpers.QuoteSingle(f.Callable.Name()))
}
func (f Function) IsTruthy() bool { return true }
func (f Function) Equal(other Value) bool {
	o, ok := other.(Function)
	return ok && o.Callable == f.Callable
}

// ArgumentList is a List that additionally carries keyword arguments, as
// produced by a "..." rest parameter capturing both positional and named
// arguments. Keyword order is preserved since user code can observe it by
// iterating the keywords map as a Sass map.
type ArgumentList struct {
	List
	KeywordOrder []string
	Keywords     map[string]Value
}

func (ArgumentList) isValue() {}

// KeywordsMap renders the keyword arguments as a Sass Map, preserving the
// order they were first supplied in.
func (a ArgumentList) KeywordsMap() *Map {
	m := NewMap()
	for _, name := range a.KeywordOrder {
		m.Set(String{Text: name, Quoted: false}, a.Keywords[name])
	}
	return m
}
