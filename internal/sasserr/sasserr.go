// Package sasserr defines the error taxonomy the compiler core raises:
// value-level SassScript errors, import failures, environment conflicts,
// and extension failures. Each kind is a concrete type implementing the
// standard error interface so callers can match on taxonomy with errors.As
// rather than string-sniffing a message.
package sasserr

import (
	"fmt"
	"strings"

	"github.com/gosass/sass/internal/logger"
)

// SassScriptError is a value-level error: a failed type assertion, an
// arithmetic operation on incompatible units, an out-of-range list index,
// and so on. It carries no source span until it crosses the evaluator
// boundary, which is exactly when WithSpan wraps it.
type SassScriptError struct {
	ArgumentName string // empty when the error isn't about a specific argument
	Message      string
}

func (e *SassScriptError) Error() string {
	if e.ArgumentName == "" {
		return e.Message
	}
	return fmt.Sprintf("$%s: %s", e.ArgumentName, e.Message)
}

// NewSassScriptError constructs a SassScriptError with no argument name.
func NewSassScriptError(format string, args ...any) *SassScriptError {
	return &SassScriptError{Message: fmt.Sprintf(format, args...)}
}

// NewArgumentError constructs a SassScriptError attributed to a specific
// named argument, mirroring the "assert_number(arg-name)" family's
// "$arg-name: ..." message prefix.
func NewArgumentError(argumentName, format string, args ...any) *SassScriptError {
	return &SassScriptError{ArgumentName: argumentName, Message: fmt.Sprintf(format, args...)}
}

// ImportError reports that an importer chain could not resolve or load a
// URL. URLStack records the chain of URLs being resolved when the failure
// happened, outermost first, so the message can show the full import path.
type ImportError struct {
	URLStack []string
	Message  string
}

func (e *ImportError) Error() string {
	if len(e.URLStack) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s\n  imported from %s", e.Message, strings.Join(e.URLStack, "\n  imported from "))
}

// MemberKind distinguishes which of a module's namespaces a
// DuplicateMemberError or AmbiguousGlobalError is about.
type MemberKind uint8

const (
	MemberVariable MemberKind = iota
	MemberFunction
	MemberMixin
)

func (k MemberKind) prefix() string {
	switch k {
	case MemberVariable:
		return "$"
	case MemberMixin:
		return "@mixin "
	default:
		return ""
	}
}

// DuplicateMemberError is raised by the environment when two modules (or a
// module and the local scope) define the same variable, function, or mixin
// name in a way that conflicts, e.g. two @forwards of the same name with no
// disambiguating prefix/hide clause.
type DuplicateMemberError struct {
	Kind    MemberKind
	Name    string
	Modules []string
}

func (e *DuplicateMemberError) Error() string {
	return fmt.Sprintf("%s%s is defined in multiple modules: %s", e.Kind.prefix(), e.Name, strings.Join(e.Modules, ", "))
}

// AmbiguousGlobalError is raised when a namespaceless lookup for a name
// resolves via more than one global module; the message lists every
// offending module URL so the author can disambiguate with a namespace.
type AmbiguousGlobalError struct {
	Kind    MemberKind
	Name    string
	Modules []string
}

func (e *AmbiguousGlobalError) Error() string {
	return fmt.Sprintf("%s%s is available from multiple global modules: %s", e.Kind.prefix(), e.Name, strings.Join(e.Modules, ", "))
}

// ExtendFailure is raised when a non-optional "@extend" targets a selector
// that was never matched by any style rule in the compilation.
type ExtendFailure struct {
	Selector string
}

func (e *ExtendFailure) Error() string {
	return fmt.Sprintf("%q failed to @extend any elements", e.Selector)
}

// Spanned wraps any of the kinds above once it crosses into the evaluator
// boundary, attaching the source range the boundary operation knows about.
// Unwrap returns the original error so errors.As still matches the
// underlying kind.
type Spanned struct {
	Span logger.Range
	Err  error
}

func (e *Spanned) Error() string {
	return e.Err.Error()
}

func (e *Spanned) Unwrap() error {
	return e.Err
}

// WithSpan attaches a source range to err, unless it is already spanned, in
// which case the original span is kept — an operation closer to the source
// text always wins over one further up the call stack.
func WithSpan(span logger.Range, err error) error {
	if err == nil {
		return nil
	}
	if spanned, ok := err.(*Spanned); ok {
		return spanned
	}
	return &Spanned{Span: span, Err: err}
}
