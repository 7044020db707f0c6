package sassenv

import (
	"github.com/gosass/sass/internal/ast"
	"github.com/gosass/sass/internal/extend"
	"github.com/gosass/sass/internal/logger"
	"github.com/gosass/sass/internal/sasserr"
	"github.com/gosass/sass/internal/sassvalue"
)

// Function is an entry in a module's function namespace. The callable body
// itself is owned by the evaluator (see PURPOSE & SCOPE); this package only
// ever needs the name under which it was defined and a handle to invoke it.
type Function struct {
	Name     string
	Callable sassvalue.Callable
}

// Mixin is an entry in a module's mixin namespace. Its body is an opaque
// evaluator-owned value; the environment never inspects or runs it, only
// resolves names to it.
type Mixin struct {
	Name string
	Body any
}

// CSSCloner lets a module's CSS sub-AST type (owned by the external
// serializer, per PURPOSE & SCOPE) supply its own deep copy for CloneCSS.
// A CSS value that doesn't implement it is copied by reference, which is
// correct for any CSS representation that is itself immutable.
type CSSCloner interface {
	CloneCSS() any
}

// Module is an immutable view exposing four mappings (variables,
// variable-definition nodes, functions, mixins), a CSS sub-AST, a
// selector-extension store, a canonical URL, and the modules it was
// compiled against. Its single mutation point is SetVariable, used to
// implement "!global" assignments that resolve to a variable this module
// owns or transitively forwards.
type Module struct {
	Handle        ast.Handle
	URL           string
	Variables     map[string]sassvalue.Value
	VariableNodes map[string]ast.Handle
	Functions     map[string]*Function
	Mixins        map[string]*Mixin
	CSS           any
	Extender      *extend.Registry
	Upstream      []ast.Handle

	TransitivelyContainsCSS        bool
	TransitivelyContainsExtensions bool
}

// NewModule constructs an empty module for the given canonical URL. Handle
// is left invalid until the module is registered with an Environment.
func NewModule(url string) *Module {
	return &Module{
		URL:           url,
		Variables:     make(map[string]sassvalue.Value),
		VariableNodes: make(map[string]ast.Handle),
		Functions:     make(map[string]*Function),
		Mixins:        make(map[string]*Mixin),
		Extender:      extend.NewRegistry(),
	}
}

// SetVariable assigns value to name if this module owns or forwards it,
// failing with "undefined variable" otherwise — this is the module
// contract's only mutation point, used by "!global" assignments that
// resolve to a module other than the local scope's root.
func (m *Module) SetVariable(name string, value sassvalue.Value, span logger.Range) error {
	if _, ok := m.Variables[name]; !ok {
		return sasserr.WithSpan(span, sasserr.NewArgumentError(name, "undefined variable"))
	}
	m.Variables[name] = value
	return nil
}

// CloneCSS returns an equivalent module with a deep-cloned CSS sub-AST and a
// fresh extension store, used when a module appears downstream of an
// "@extend" that must not mutate the shared original.
func (m *Module) CloneCSS() *Module {
	clone := *m
	clone.Extender = extend.NewRegistry()
	if cloner, ok := m.CSS.(CSSCloner); ok {
		clone.CSS = cloner.CloneCSS()
	}
	return &clone
}

func containsString(items []string, target string) bool {
	for _, s := range items {
		if s == target {
			return true
		}
	}
	return false
}

// ForwardRule captures an "@forward"'s show/hide/prefix clauses. An empty
// Show means "show everything except Hide"; a non-empty Show means "show
// only these names, ignoring Hide".
type ForwardRule struct {
	Show   []string
	Hide   []string
	Prefix string
}

// applyForward constructs the view of m that rule's show/hide/prefix
// clauses expose, as used by both ForwardModule and ImportForwards.
func (m *Module) applyForward(rule ForwardRule) *Module {
	visible := func(name string) bool {
		if len(rule.Show) > 0 {
			return containsString(rule.Show, name)
		}
		return !containsString(rule.Hide, name)
	}

	view := &Module{
		URL:           m.URL,
		Variables:     make(map[string]sassvalue.Value),
		VariableNodes: make(map[string]ast.Handle),
		Functions:     make(map[string]*Function),
		Mixins:        make(map[string]*Mixin),
		CSS:           m.CSS,
		Extender:      m.Extender,
		Upstream:      m.Upstream,

		TransitivelyContainsCSS:        m.TransitivelyContainsCSS,
		TransitivelyContainsExtensions: m.TransitivelyContainsExtensions,
	}

	for name, v := range m.Variables {
		if visible(name) {
			view.Variables[rule.Prefix+name] = v
		}
	}
	for name, n := range m.VariableNodes {
		if visible(name) {
			view.VariableNodes[rule.Prefix+name] = n
		}
	}
	for name, f := range m.Functions {
		if visible(name) {
			view.Functions[rule.Prefix+name] = f
		}
	}
	for name, mx := range m.Mixins {
		if visible(name) {
			view.Mixins[rule.Prefix+name] = mx
		}
	}

	return view
}
