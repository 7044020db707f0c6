// Package selector implements the selector algebra used by the extension
// engine: the data model for simple/compound/complex selector lists, and the
// unify/isSuperselectorOf/weave/trim operations that drive "@extend"
// rewriting. The data model mirrors the shape CSS selectors actually take at
// the wire level (a selector list is comma-separated complex selectors, each
// a run of compounds joined by combinators) rather than the parser's token
// stream, so that the algebra below can operate on it directly.
package selector

import "strings"

// Combinator is the relationship between two adjacent compound selectors.
// The zero value is Descendant, the implicit whitespace combinator, so that
// a zero-valued Component reads as a plain descendant step.
type Combinator uint8

const (
	Descendant Combinator = iota
	Child
	NextSibling
	SubsequentSibling
)

func (c Combinator) String() string {
	switch c {
	case Child:
		return ">"
	case NextSibling:
		return "+"
	case SubsequentSibling:
		return "~"
	default:
		return " "
	}
}

// SelectorList is an ordered, comma-separated list of complex selectors.
type SelectorList struct {
	Selectors []ComplexSelector
}

func (list SelectorList) String() string {
	parts := make([]string, len(list.Selectors))
	for i, complex := range list.Selectors {
		parts[i] = complex.String()
	}
	return strings.Join(parts, ", ")
}

// IsEmpty reports whether this list matches no elements at all (as opposed
// to a list containing selectors that individually match nothing).
func (list SelectorList) IsEmpty() bool {
	return len(list.Selectors) == 0
}

// ComplexSelector is an optional run of leading combinators (meaningful only
// when a nested rule begins with one, e.g. "> a" inside a parent rule)
// followed by an ordered list of components.
type ComplexSelector struct {
	LeadingCombinators []Combinator
	Components         []Component
}

func (c ComplexSelector) String() string {
	var b strings.Builder
	for _, comb := range c.LeadingCombinators {
		b.WriteString(comb.String())
		b.WriteByte(' ')
	}
	for i, comp := range c.Components {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(comp.String())
	}
	return b.String()
}

// IsInvisible reports whether every compound in this selector is invisible
// (see CompoundSelector.IsInvisible): such a selector can never match a real
// element and is dropped rather than emitted.
func (c ComplexSelector) IsInvisible() bool {
	for _, comp := range c.Components {
		if !comp.Compound.IsInvisible() {
			return false
		}
	}
	return true
}

// Component pairs a compound selector with the combinators that follow it
// and precede the next component, if any. Most components carry exactly one
// trailing combinator; more than one is possible only as an intermediate
// state inside weave, never in a fully-resolved selector.
type Component struct {
	Compound            CompoundSelector
	TrailingCombinators []Combinator
}

func (comp Component) String() string {
	var b strings.Builder
	b.WriteString(comp.Compound.String())
	for _, c := range comp.TrailingCombinators {
		b.WriteByte(' ')
		b.WriteString(c.String())
	}
	return b.String()
}

// CompoundSelector is a non-empty run of simple selectors that all apply to
// the same element, e.g. "a.foo#bar::hover".
type CompoundSelector struct {
	Simples []SimpleSelector
}

func (cs CompoundSelector) String() string {
	var b strings.Builder
	for _, s := range cs.Simples {
		b.WriteString(s.String())
	}
	return b.String()
}

// IsInvisible reports whether this compound consists entirely of
// placeholder selectors that were never extended ("%unused"); such compounds
// are Sass-only bookkeeping and must never reach the printed CSS.
func (cs CompoundSelector) IsInvisible() bool {
	for _, s := range cs.Simples {
		if _, ok := s.(*Placeholder); !ok {
			return false
		}
	}
	return len(cs.Simples) > 0
}

// HasPlaceholder reports whether any simple selector in this compound is a
// placeholder ("%foo"), which the extension engine uses to decide whether a
// selector is an @extend target candidate at all.
func (cs CompoundSelector) HasPlaceholder() bool {
	for _, s := range cs.Simples {
		if _, ok := s.(*Placeholder); ok {
			return true
		}
	}
	return false
}

// NamespacedName is a qualified name as it appears in type selectors and
// attribute selectors: "ns|name", "|name" (explicit empty namespace), or
// bare "name" (Namespace == nil).
type NamespacedName struct {
	Namespace *string
	Name      string
}

func (n NamespacedName) String() string {
	if n.Namespace == nil {
		return n.Name
	}
	return *n.Namespace + "|" + n.Name
}

// SimpleSelector is implemented by every kind of simple selector. The
// marker method exists only to encode the variant type in Go's type system;
// callers switch on the concrete type.
type SimpleSelector interface {
	isSimpleSelector()
	String() string
}

// Universal is "*" or "ns|*", matching any element (in the given namespace).
type Universal struct {
	Namespace *string
}

func (u *Universal) isSimpleSelector() {}
func (u *Universal) String() string {
	if u.Namespace == nil {
		return "*"
	}
	return *u.Namespace + "|*"
}

// Type is an element type selector, e.g. "div" or "svg|rect".
type Type struct {
	Name NamespacedName
}

func (t *Type) isSimpleSelector() {}
func (t *Type) String() string    { return t.Name.String() }

// ID is an id selector, e.g. "#main".
type ID struct {
	Name string
}

func (id *ID) isSimpleSelector() {}
func (id *ID) String() string    { return "#" + id.Name }

// Class is a class selector, e.g. ".button".
type Class struct {
	Name string
}

func (c *Class) isSimpleSelector() {}
func (c *Class) String() string    { return "." + c.Name }

// Placeholder is a Sass-only extend target, e.g. "%button-base". It is
// never emitted to CSS on its own; a compound that still has one after
// extension resolves to IsInvisible().
type Placeholder struct {
	Name string
}

func (p *Placeholder) isSimpleSelector() {}
func (p *Placeholder) String() string    { return "%" + p.Name }

// Parent is the "&" reference to an enclosing selector, optionally followed
// immediately by a suffix identifier fragment (e.g. "&-active" lexes as a
// Parent with Suffix "-active").
type Parent struct {
	Suffix string
}

func (p *Parent) isSimpleSelector() {}
func (p *Parent) String() string    { return "&" + p.Suffix }

// Attribute is an attribute selector, e.g. "[href^='https://' i]".
type Attribute struct {
	Name            NamespacedName
	Matcher         string // "", "=", "~=", "|=", "^=", "$=", "*="
	Value           string
	CaseInsensitive bool
}

func (a *Attribute) isSimpleSelector() {}
func (a *Attribute) String() string {
	if a.Matcher == "" {
		return "[" + a.Name.String() + "]"
	}
	suffix := ""
	if a.CaseInsensitive {
		suffix = " i"
	}
	return "[" + a.Name.String() + a.Matcher + "\"" + a.Value + "\"" + suffix + "]"
}

// Pseudo is a pseudo-class or pseudo-element, e.g. ":hover", "::before", or
// a selector-valued pseudo-class like ":is(a, b)" / ":not(.foo)". Argument
// is the raw, un-parsed argument text for pseudo-classes whose argument is
// not itself a selector list (e.g. ":nth-child(2n+1)"); Selectors is set
// instead for the logical-combinator family recognized by IsSuperselectorOf
// and Unify.
type Pseudo struct {
	Name      string
	IsElement bool
	Argument  string
	Selectors *SelectorList
}

func (p *Pseudo) isSimpleSelector() {}
func (p *Pseudo) String() string {
	marker := ":"
	if p.IsElement {
		marker = "::"
	}
	body := p.Argument
	if p.Selectors != nil {
		body = p.Selectors.String()
	}
	if body == "" {
		return marker + p.Name
	}
	return marker + p.Name + "(" + body + ")"
}

// IsLogicalCombinator reports whether this pseudo-class treats its argument
// as a selector list that participates directly in unification and
// superselector checks, rather than as opaque text (":is", ":matches",
// ":where", ":not", ":has").
func (p *Pseudo) IsLogicalCombinator() bool {
	switch p.Name {
	case "is", "matches", "where", "not", "has":
		return true
	default:
		return false
	}
}
