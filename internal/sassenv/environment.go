// Package sassenv implements the module-aware lexical environment: a stack
// of scope frames for variables, functions, and mixins; namespace-qualified
// module lookup for "@use"; and the global/forwarded-module bookkeeping
// "@forward" and "@import" need to compose modules with at-most-one
// definition guarantees.
package sassenv

import (
	"fmt"

	"github.com/gosass/sass/internal/ast"
	"github.com/gosass/sass/internal/helpers"
	"github.com/gosass/sass/internal/logger"
	"github.com/gosass/sass/internal/sasserr"
	"github.com/gosass/sass/internal/sassvalue"
)

// moduleView pairs a module (already narrowed by any @forward show/hide/
// prefix clause) with the set of names a later import_forwards has hidden
// on it, keyed through the Environment's shared name interner.
type moduleView struct {
	Module *Module
	Hidden shadowSet
}

// Environment is the lexically-scoped name resolver for one compilation:
// the scope-frame stack, the module arena, namespace-qualified lookups, and
// the global/forwarded-module sets @use/@forward/@import compose.
type Environment struct {
	// Log is optional; when set, ImportForwards reports a forwarded member
	// that shadows one already visible from an earlier global or forwarded
	// module as
	// MsgID_Module_ShadowedByForward.
	Log logger.Log

	modules    []*Module
	namespaces map[string]ast.Handle

	globalModules    []*moduleView
	forwardedModules []*moduleView

	frames []*frame

	lastVariableName  string
	lastVariableFrame int

	variableIndices map[string]int
	functionIndices map[string]int
	mixinIndices    map[string]int

	names *nameInterner
}

// NewEnvironment constructs an environment with a single, empty global
// scope frame.
func NewEnvironment() *Environment {
	return &Environment{
		namespaces:        make(map[string]ast.Handle),
		frames:            []*frame{newFrame(false)},
		lastVariableFrame: -1,
		variableIndices:   make(map[string]int),
		functionIndices:   make(map[string]int),
		mixinIndices:      make(map[string]int),
		names:             newNameInterner(),
	}
}

func (e *Environment) moduleAt(h ast.Handle) *Module {
	return e.modules[h.GetIndex()]
}

func (e *Environment) registerModule(m *Module) {
	m.Handle = ast.MakeHandle(uint32(len(e.modules)))
	e.modules = append(e.modules, m)
}

// AddModule implements "@use": a namespaced use registers the module under
// that namespace only (failing on a duplicate namespace), while a
// namespaceless use spills the module's names into the global scope,
// failing if any of them collide with a name already defined directly in
// the root scope.
func (e *Environment) AddModule(module *Module, namespace *string, span logger.Range) error {
	if namespace != nil {
		if _, exists := e.namespaces[*namespace]; exists {
			return sasserr.WithSpan(span, sasserr.NewSassScriptError("there's already a module with namespace %q", *namespace))
		}
		e.registerModule(module)
		e.namespaces[*namespace] = module.Handle
		return nil
	}

	root := e.frames[0]
	for name := range module.Variables {
		if _, ok := root.variables[name]; ok {
			return sasserr.WithSpan(span, &sasserr.DuplicateMemberError{Kind: sasserr.MemberVariable, Name: name, Modules: []string{module.URL}})
		}
	}
	for name := range module.Functions {
		if _, ok := root.functions[name]; ok {
			return sasserr.WithSpan(span, &sasserr.DuplicateMemberError{Kind: sasserr.MemberFunction, Name: name, Modules: []string{module.URL}})
		}
	}
	for name := range module.Mixins {
		if _, ok := root.mixins[name]; ok {
			return sasserr.WithSpan(span, &sasserr.DuplicateMemberError{Kind: sasserr.MemberMixin, Name: name, Modules: []string{module.URL}})
		}
	}

	e.registerModule(module)
	e.globalModules = append(e.globalModules, &moduleView{Module: module, Hidden: newShadowSet()})
	return nil
}

// ForwardModule implements "@forward": it constructs rule's show/hide/
// prefix view of module and checks it for conflicts against every already
// forwarded module's variables, functions, and mixins.
func (e *Environment) ForwardModule(module *Module, rule ForwardRule, span logger.Range) error {
	view := module.applyForward(rule)

	for name := range view.Variables {
		if urls := collidingURLs(e.forwardedModules, name, memberVariable); len(urls) > 0 {
			return sasserr.WithSpan(span, &sasserr.DuplicateMemberError{Kind: sasserr.MemberVariable, Name: name, Modules: urls})
		}
	}
	for name := range view.Functions {
		if urls := collidingURLs(e.forwardedModules, name, memberFunction); len(urls) > 0 {
			return sasserr.WithSpan(span, &sasserr.DuplicateMemberError{Kind: sasserr.MemberFunction, Name: name, Modules: urls})
		}
	}
	for name := range view.Mixins {
		if urls := collidingURLs(e.forwardedModules, name, memberMixin); len(urls) > 0 {
			return sasserr.WithSpan(span, &sasserr.DuplicateMemberError{Kind: sasserr.MemberMixin, Name: name, Modules: urls})
		}
	}

	e.registerModule(view)
	e.forwardedModules = append(e.forwardedModules, &moduleView{Module: view, Hidden: newShadowSet()})
	return nil
}

type memberLookup func(*Module, string) bool

func memberVariable(m *Module, name string) bool { _, ok := m.Variables[name]; return ok }
func memberFunction(m *Module, name string) bool { _, ok := m.Functions[name]; return ok }
func memberMixin(m *Module, name string) bool    { _, ok := m.Mixins[name]; return ok }

// warnShadowedMembers reports every member of shadowedBy that newly hides a
// still-visible member of the same name on v, before v's Hidden set is
// updated to reflect the new shadow.
func (e *Environment) warnShadowedMembers(v *moduleView, shadowedBy *Module) {
	if e.Log.AddMsg == nil {
		return
	}
	for name := range shadowedBy.Variables {
		e.warnIfShadowed(v, name, memberVariable)
	}
	for name := range shadowedBy.Functions {
		e.warnIfShadowed(v, name, memberFunction)
	}
	for name := range shadowedBy.Mixins {
		e.warnIfShadowed(v, name, memberMixin)
	}
}

func (e *Environment) warnIfShadowed(v *moduleView, name string, has memberLookup) {
	bit := e.names.intern(name)
	if v.Hidden.has(bit) || !has(v.Module, name) {
		return
	}
	e.Log.AddWarningWithID(logger.MsgID_Module_ShadowedByForward,
		fmt.Sprintf("this @forward shadows %q, already forwarded from %q", name, v.Module.URL))
}

func collidingURLs(views []*moduleView, name string, has memberLookup) []string {
	var urls []string
	for _, v := range views {
		if has(v.Module, name) {
			urls = append(urls, v.Module.URL)
		}
	}
	return urls
}

// ImportForwards implements "@import" of a file that itself contains
// "@forward". At the root scope it hides the colliding names on every
// already-global-or-forwarded module, then adds the new forwards to both
// lists and clears any local root-scope bindings those names used to have.
// At a non-root scope it only appends to that frame's nested-forwarded
// list; nothing is hidden or removed.
func (e *Environment) ImportForwards(module *Module, rule ForwardRule, atRoot bool) {
	view := module.applyForward(rule)
	e.registerModule(view)

	if !atRoot {
		depth := len(e.frames) - 1
		e.frames[depth].nestedForwarded = append(e.frames[depth].nestedForwarded, view.Handle)
		return
	}

	hidden := newShadowSet()
	for name := range view.Variables {
		hidden.set(e.names.intern(name))
	}
	for name := range view.Functions {
		hidden.set(e.names.intern(name))
	}
	for name := range view.Mixins {
		hidden.set(e.names.intern(name))
	}

	for _, v := range e.globalModules {
		e.warnShadowedMembers(v, view)
		v.Hidden.mergeFrom(hidden)
	}
	for _, v := range e.forwardedModules {
		e.warnShadowedMembers(v, view)
		v.Hidden.mergeFrom(hidden)
	}

	e.globalModules = append(e.globalModules, &moduleView{Module: view, Hidden: newShadowSet()})
	e.forwardedModules = append(e.forwardedModules, &moduleView{Module: view, Hidden: newShadowSet()})

	root := e.frames[0]
	for name := range view.Variables {
		delete(root.variables, name)
	}
	for name := range view.Functions {
		delete(root.functions, name)
	}
	for name := range view.Mixins {
		delete(root.mixins, name)
	}
}

// GetVariable resolves name, optionally through a "@use" namespace. Without
// a namespace it consults, in order, the one-entry fast path, the
// per-name scope-index cache, the scope stack from innermost to outermost,
// and finally the global modules.
func (e *Environment) GetVariable(name string, namespace *string) (sassvalue.Value, bool, error) {
	if namespace != nil {
		handle, ok := e.namespaces[*namespace]
		if !ok {
			return nil, false, sasserr.NewSassScriptError("there is no module with namespace %q", *namespace)
		}
		v, ok := e.moduleAt(handle).Variables[name]
		return v, ok, nil
	}

	if e.lastVariableName == name && e.lastVariableFrame >= 0 {
		if v, ok := e.frames[e.lastVariableFrame].variables[name]; ok {
			return v, true, nil
		}
		return e.variableFromGlobalModules(name)
	}

	if idx, ok := e.variableIndices[name]; ok {
		if v, ok2 := e.frames[idx].variables[name]; ok2 {
			e.lastVariableName, e.lastVariableFrame = name, idx
			return v, true, nil
		}
	}

	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i].variables[name]; ok {
			e.variableIndices[name] = i
			e.lastVariableName, e.lastVariableFrame = name, i
			return v, true, nil
		}
	}

	return e.variableFromGlobalModules(name)
}

func (e *Environment) variableFromGlobalModules(name string) (sassvalue.Value, bool, error) {
	v, ok, err := fromOneModule(e, sasserr.MemberVariable, name, func(m *Module) (sassvalue.Value, bool) {
		got, found := m.Variables[name]
		return got, found
	})
	if err != nil {
		return nil, false, err
	}
	return v, ok, nil
}

// GetFunction resolves a function name, optionally through a namespace,
// mirroring GetVariable's scope-walk-then-global-modules contract (without
// the one-entry fast path, which spec.md reserves for variables).
func (e *Environment) GetFunction(name string, namespace *string) (*Function, bool, error) {
	if namespace != nil {
		handle, ok := e.namespaces[*namespace]
		if !ok {
			return nil, false, sasserr.NewSassScriptError("there is no module with namespace %q", *namespace)
		}
		f, ok := e.moduleAt(handle).Functions[name]
		return f, ok, nil
	}

	if idx, ok := e.functionIndices[name]; ok {
		if f, ok2 := e.frames[idx].functions[name]; ok2 {
			return f, true, nil
		}
	}
	for i := len(e.frames) - 1; i >= 0; i-- {
		if f, ok := e.frames[i].functions[name]; ok {
			e.functionIndices[name] = i
			return f, true, nil
		}
	}

	return fromOneModule(e, sasserr.MemberFunction, name, func(m *Module) (*Function, bool) {
		f, found := m.Functions[name]
		return f, found
	})
}

// GetMixin resolves a mixin name the same way GetFunction resolves a
// function name.
func (e *Environment) GetMixin(name string, namespace *string) (*Mixin, bool, error) {
	if namespace != nil {
		handle, ok := e.namespaces[*namespace]
		if !ok {
			return nil, false, sasserr.NewSassScriptError("there is no module with namespace %q", *namespace)
		}
		m, ok := e.moduleAt(handle).Mixins[name]
		return m, ok, nil
	}

	if idx, ok := e.mixinIndices[name]; ok {
		if m, ok2 := e.frames[idx].mixins[name]; ok2 {
			return m, true, nil
		}
	}
	for i := len(e.frames) - 1; i >= 0; i-- {
		if m, ok := e.frames[i].mixins[name]; ok {
			e.mixinIndices[name] = i
			return m, true, nil
		}
	}

	return fromOneModule(e, sasserr.MemberMixin, name, func(m *Module) (*Mixin, bool) {
		mx, found := m.Mixins[name]
		return mx, found
	})
}

// fromOneModule resolves name against global modules: it first walks the
// nested-forwarded lists innermost scope out, returning the first hit, then
// falls back to the true global modules, failing with AmbiguousGlobalError
// if more than one exposes the name.
func fromOneModule[T any](e *Environment, kind sasserr.MemberKind, name string, get func(*Module) (T, bool)) (T, bool, error) {
	var zero T

	for i := len(e.frames) - 1; i >= 0; i-- {
		nested := e.frames[i].nestedForwarded
		for j := len(nested) - 1; j >= 0; j-- {
			if v, ok := get(e.moduleAt(nested[j])); ok {
				return v, true, nil
			}
		}
	}

	bit := e.names.intern(name)
	var result T
	found := false
	var urls []string
	for _, view := range e.globalModules {
		if view.Hidden.has(bit) {
			continue
		}
		if v, ok := get(view.Module); ok {
			result = v
			found = true
			urls = append(urls, view.Module.URL)
		}
	}

	if len(urls) > 1 {
		return zero, false, &sasserr.AmbiguousGlobalError{Kind: kind, Name: name, Modules: urls}
	}
	if found {
		return result, true, nil
	}
	return zero, false, nil
}

// SetVariable assigns name, delegating to a namespaced module, the global
// scope (when global is set or the environment is at its root frame), the
// nearest nested-forwarded module that owns the name, or the cached/
// computed scope index — rewritten to the current frame when it would
// otherwise land on the root frame of a non-semi-global scope, so that new
// variables declare locally by default.
func (e *Environment) SetVariable(name string, value sassvalue.Value, node ast.Handle, namespace *string, global bool) error {
	if namespace != nil {
		handle, ok := e.namespaces[*namespace]
		if !ok {
			return sasserr.NewSassScriptError("there is no module with namespace %q", *namespace)
		}
		return e.moduleAt(handle).SetVariable(name, value, logger.Range{})
	}

	atRoot := len(e.frames) == 1

	if global || atRoot {
		if _, ok := e.frames[0].variables[name]; !ok {
			mod, ok, err := fromOneModule(e, sasserr.MemberVariable, name, func(m *Module) (*Module, bool) {
				_, found := m.Variables[name]
				return m, found
			})
			if err != nil {
				return err
			}
			if ok {
				return mod.SetVariable(name, value, logger.Range{})
			}
		}
		e.frames[0].variables[name] = value
		e.frames[0].variableNodes[name] = node
		e.variableIndices[name] = 0
		e.invalidateLastVariable(name)
		return nil
	}

	for i := len(e.frames) - 1; i >= 0; i-- {
		nested := e.frames[i].nestedForwarded
		for j := len(nested) - 1; j >= 0; j-- {
			mod := e.moduleAt(nested[j])
			if _, ok := mod.Variables[name]; ok {
				return mod.SetVariable(name, value, logger.Range{})
			}
		}
	}

	idx, ok := e.variableIndices[name]
	if !ok {
		idx = len(e.frames) - 1
		for i := len(e.frames) - 1; i >= 0; i-- {
			if _, ok := e.frames[i].variables[name]; ok {
				idx = i
				break
			}
		}
	}

	current := len(e.frames) - 1
	if idx == 0 && !e.frames[current].semiGlobal {
		idx = current
	}

	e.frames[idx].variables[name] = value
	e.frames[idx].variableNodes[name] = node
	e.variableIndices[name] = idx
	e.invalidateLastVariable(name)
	return nil
}

func (e *Environment) invalidateLastVariable(name string) {
	if e.lastVariableName == name {
		e.lastVariableName = ""
		e.lastVariableFrame = -1
	}
}

// DeclareFunction and DeclareMixin register a function or mixin directly in
// the current (innermost) frame, the counterpart to SetVariable for the
// two namespaces that have no "!global" escape hatch in the language.
func (e *Environment) DeclareFunction(name string, callable sassvalue.Callable) {
	current := len(e.frames) - 1
	e.frames[current].functions[name] = &Function{Name: name, Callable: callable}
	delete(e.functionIndices, name)
}

func (e *Environment) DeclareMixin(name string, body any) {
	current := len(e.frames) - 1
	e.frames[current].mixins[name] = &Mixin{Name: name, Body: body}
	delete(e.mixinIndices, name)
}

// Scope runs fn within a new scope. When when is false, no frame is pushed;
// only the current frame's semiGlobal flag is updated for the duration of
// fn, matching dart-sass's "scope(callback, semiGlobal, when)" use at
// control-flow constructs (@if/@else) that don't always need a fresh
// binding frame. When when is true, a frame is pushed and popped around
// fn's execution — on every exit path, including a returned error or a
// panic — and every index-cache entry pointing into the popped frame is
// cleared, along with the one-entry fast path if it pointed there too.
func (e *Environment) Scope(semiGlobal, when bool, fn func() error) error {
	if !when {
		current := len(e.frames) - 1
		prev := e.frames[current].semiGlobal
		e.frames[current].semiGlobal = semiGlobal
		defer func() { e.frames[current].semiGlobal = prev }()
		return fn()
	}

	e.frames = append(e.frames, newFrame(semiGlobal))
	depth := len(e.frames) - 1

	defer func() {
		e.frames = e.frames[:depth]
		for name, idx := range e.variableIndices {
			if idx >= depth {
				delete(e.variableIndices, name)
			}
		}
		for name, idx := range e.functionIndices {
			if idx >= depth {
				delete(e.functionIndices, name)
			}
		}
		for name, idx := range e.mixinIndices {
			if idx >= depth {
				delete(e.mixinIndices, name)
			}
		}
		if e.lastVariableFrame >= depth {
			e.lastVariableName, e.lastVariableFrame = "", -1
		}
	}()

	return fn()
}

// Configuration is the result of ToImplicitConfiguration: a snapshot of
// every variable currently in scope, used as the "!default" configuration a
// file with "@forward ... with (...)" applies when it is in turn "@import"ed.
type Configuration struct {
	Variables map[string]sassvalue.Value
}

// ToImplicitConfiguration serializes the entire variable stack (outermost
// frame first, so inner frames correctly shadow outer ones) into a
// module-configuration record.
func (e *Environment) ToImplicitConfiguration() Configuration {
	cfg := Configuration{Variables: make(map[string]sassvalue.Value)}
	for _, f := range e.frames {
		for name, v := range f.variables {
			cfg.Variables[name] = v
		}
	}
	return cfg
}

// SuggestVariableName offers a "did you mean" correction for an unresolved
// variable lookup, built from every name currently reachable in the scope
// stack and the global modules.
func (e *Environment) SuggestVariableName(typo string) (string, bool) {
	var candidates []string
	for _, f := range e.frames {
		for name := range f.variables {
			candidates = append(candidates, name)
		}
	}
	for _, view := range e.globalModules {
		for name := range view.Module.Variables {
			candidates = append(candidates, name)
		}
	}
	detector := helpers.MakeTypoDetector(candidates)
	return detector.MaybeCorrectTypo(typo)
}
