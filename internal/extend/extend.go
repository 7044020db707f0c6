// Package extend implements the "@extend" selector-rewriting engine: given
// a registry of style rules and extension rules, it rewrites a selector
// list by unifying, weaving, and trimming complex selectors so that
// extended rules pick up every selector that targets them.
package extend

import (
	"github.com/gosass/sass/internal/ast"
	"github.com/gosass/sass/internal/logger"
	"github.com/gosass/sass/internal/sasserr"
	"github.com/gosass/sass/internal/selector"
)

// maxGeneratedSelectors bounds the number of selectors a single rewrite can
// produce. Cyclic or combinatorial extensions terminate in principle
// because every rewrite step only draws from the finite, already-registered
// extender set, but a pathological fan-out (many extends on selectors that
// in turn unify broadly) can still blow up; past this bound the engine
// raises ExtendFailure instead of continuing to generate selectors.
const maxGeneratedSelectors = 2000

// Extension records one "@extend extendee" rule: the selector doing the
// extending, where it was written, and whether it was declared "!optional"
// (in which case an unsatisfied extend is not an error).
type Extension struct {
	Extender  selector.ComplexSelector
	Span      logger.Range
	Optional  bool
	satisfied bool
}

// rule is a style rule registered via AddSelector: its current (possibly
// already-rewritten) selector list and the handle callers use to refer back
// to it.
type rule struct {
	handle   ast.Handle
	selector selector.SelectorList
	span     logger.Range
}

// Registry is the running "add_selector"/"add_extension" state for one
// compilation: which simple selectors appear in which rules, and which
// simple selectors have been targeted by an "@extend".
type Registry struct {
	rules        []*rule
	bySimpleKey  map[string][]int // simple-selector key -> indices into rules
	extensionsBy map[string][]*Extension
}

// NewRegistry constructs an empty extension registry.
func NewRegistry() *Registry {
	return &Registry{
		bySimpleKey:  make(map[string][]int),
		extensionsBy: make(map[string][]*Extension),
	}
}

// AddSelector registers a style rule's selector list, rewriting it first if
// any extensions already target one of its simple selectors. It returns the
// (possibly rewritten) selector list and a handle this rule can later be
// looked up or rewritten again by.
func (r *Registry) AddSelector(list selector.SelectorList, span logger.Range) (selector.SelectorList, ast.Handle, error) {
	rewritten := list
	if len(r.extensionsBy) > 0 {
		var err error
		rewritten, err = r.rewrite(list)
		if err != nil {
			return selector.SelectorList{}, ast.Handle{}, err
		}
	}

	index := len(r.rules)
	rec := &rule{handle: ast.MakeHandle(uint32(index)), selector: rewritten, span: span}
	r.rules = append(r.rules, rec)

	for _, key := range simpleKeysIn(rewritten) {
		r.bySimpleKey[key] = append(r.bySimpleKey[key], index)
	}

	return rewritten, rec.handle, nil
}

// AddExtension records extender as extending the simple selector identified
// by extendeeKey (its String() form), then eagerly rewrites every
// already-registered rule whose selector contains that simple selector.
func (r *Registry) AddExtension(extendeeKey string, extender selector.ComplexSelector, span logger.Range, optional bool) error {
	ext := &Extension{Extender: extender, Span: span, Optional: optional}
	r.extensionsBy[extendeeKey] = append(r.extensionsBy[extendeeKey], ext)

	for _, index := range r.bySimpleKey[extendeeKey] {
		rec := r.rules[index]
		rewritten, err := r.rewrite(rec.selector)
		if err != nil {
			return err
		}
		rec.selector = rewritten
		for _, key := range simpleKeysIn(rewritten) {
			r.bySimpleKey[key] = appendIfMissing(r.bySimpleKey[key], index)
		}
	}

	return nil
}

// Unsatisfied returns every non-optional extension that never matched a
// registered simple selector, for the end-of-compilation diagnostic
// spec.md §4.5 describes.
func (r *Registry) Unsatisfied() []*Extension {
	var out []*Extension
	for _, exts := range r.extensionsBy {
		for _, e := range exts {
			if !e.Optional && !e.satisfied {
				out = append(out, e)
			}
		}
	}
	return out
}

// Fail raises an ExtendFailure for the given unsatisfied extension, the
// shape spec.md §7 names for this error kind.
func Fail(e *Extension) error {
	return sasserr.WithSpan(e.Span, &sasserr.ExtendFailure{Selector: e.Extender.String()})
}

func simpleKeysIn(list selector.SelectorList) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, cplx := range list.Selectors {
		for _, comp := range cplx.Components {
			for _, s := range comp.Compound.Simples {
				k := s.String()
				if !seen[k] {
					seen[k] = true
					keys = append(keys, k)
				}
			}
		}
	}
	return keys
}

func appendIfMissing(indices []int, index int) []int {
	for _, i := range indices {
		if i == index {
			return indices
		}
	}
	return append(indices, index)
}
