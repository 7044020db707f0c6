package sassenv

import (
	"github.com/gosass/sass/internal/ast"
	"github.com/gosass/sass/internal/sassvalue"
)

// frame is one scope level: the first frame in an Environment is the global
// scope, each deeper one models a nested block. semiGlobal marks frames
// (e.g. @each/@for bodies) whose assignments without "!global" to a
// variable that already exists in the global frame update that variable
// rather than declaring a new local one.
type frame struct {
	variables     map[string]sassvalue.Value
	variableNodes map[string]ast.Handle
	functions     map[string]*Function
	mixins        map[string]*Mixin

	// nestedForwarded is the per-scope list of modules forwarded into this
	// frame by a nested "@import" of a file containing "@forward".
	nestedForwarded []ast.Handle

	semiGlobal bool
}

func newFrame(semiGlobal bool) *frame {
	return &frame{
		variables:     make(map[string]sassvalue.Value),
		variableNodes: make(map[string]ast.Handle),
		functions:     make(map[string]*Function),
		mixins:        make(map[string]*Mixin),
		semiGlobal:    semiGlobal,
	}
}
