// Package ast holds small data structures shared by the compiler's
// component packages (sassenv, importcache, selector, extend) that would
// otherwise each reinvent an arena-handle type or a module-reference record.
package ast

import (
	"github.com/gosass/sass/internal/logger"
)

// ReferenceKind distinguishes the directive that produced a Reference, for
// use in diagnostics ("available from multiple global modules", duplicate
// namespace, etc).
type ReferenceKind uint8

const (
	ReferenceUse ReferenceKind = iota
	ReferenceForward
	ReferenceImport
	ReferenceMetaURL
)

func (kind ReferenceKind) String() string {
	switch kind {
	case ReferenceUse:
		return "@use"
	case ReferenceForward:
		return "@forward"
	case ReferenceImport:
		return "@import"
	case ReferenceMetaURL:
		return "meta.load-css"
	default:
		panic("unreachable")
	}
}

// Reference records where a module was pulled into the environment from, so
// later diagnostics (duplicate namespace, ambiguous global, etc) can point
// back at the directive responsible.
type Reference struct {
	Span logger.Range
	Kind ReferenceKind
}

// Handle stores a 32-bit arena index where the zero value is invalid. This
// is preferred over a pointer for the same reason the teacher's Index32
// was: modules and scope frames are owned by an arena (Environment,
// extension registry), and other structures should only ever hold a lookup
// key into that arena, never a second owner of the data.
type Handle struct {
	flippedBits uint32
}

func MakeHandle(index uint32) Handle {
	return Handle{flippedBits: ^index}
}

func (h Handle) IsValid() bool {
	return h.flippedBits != 0
}

func (h Handle) GetIndex() uint32 {
	return ^h.flippedBits
}
