// Package compiler is the evaluator boundary: the place the five core
// components (sassvalue, selector, sassenv, importcache, extend) compose
// into a single compilation, without this module implementing the
// surface-syntax parser or evaluator itself.
package compiler

import (
	"github.com/gosass/sass/internal/importcache"
	"github.com/gosass/sass/internal/sassvalue"
)

// Syntax names the surface syntax a stylesheet is written in. It is the
// same enumeration importcache.Syntax carries; compiler re-exports it
// under its own name because Stylesheet below is evaluator-facing rather
// than cache-facing.
type Syntax = importcache.Syntax

const (
	SyntaxSCSS     = importcache.SyntaxSCSS
	SyntaxIndented = importcache.SyntaxIndented
	SyntaxCSS      = importcache.SyntaxCSS
)

// Stylesheet is the parsed form a Driver hands back to a caller. Root is
// opaque here: this module only declares the shape a real surface-syntax
// parser would fill in, the same way importcache.Stylesheet.Value is left
// as any for a parser defined outside this module.
type Stylesheet struct {
	Syntax       Syntax
	CanonicalURL string
	Root         any
}

// Driver is the contract spec.md §5 calls out: "two flavors of the
// compilation driver... share all algorithms." Both Import and
// CallFunction either complete immediately (SyncDriver) or hand off across
// a channel to let an embedder interleave other work (CooperativeDriver)
// before completing; neither introduces goroutine-per-compilation
// parallelism into the algorithms themselves.
type Driver interface {
	// Import resolves url (optionally relative to base) through the
	// importer chain and returns its parsed Stylesheet.
	Import(url string, base *importcache.BaseImporter, forImport, quiet bool) (*Stylesheet, error)
	// CallFunction invokes a host-registered custom function by name, the
	// callback boundary spec.md §5 names alongside importer calls as a
	// suspension point.
	CallFunction(name string, args []sassvalue.Value) (sassvalue.Value, error)
}
