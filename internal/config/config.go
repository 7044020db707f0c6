// Package config holds the compiler-facing configuration surface threaded
// through a compilation, the way internal/config.Options is threaded
// through an esbuild build.
package config

import "github.com/gosass/sass/internal/importcache"

// OutputStyle selects the printed form of generated CSS, the Sass analogue
// of esbuild's Platform/Format sum types.
type OutputStyle uint8

const (
	OutputExpanded OutputStyle = iota
	OutputCompressed
)

// Options is the single struct threaded through a compilation. Fields are
// grouped the way esbuild's own Options groups JS/CSS/TS concerns: output
// shape, source resolution, and diagnostics.
type Options struct {
	OutputStyle OutputStyle

	// LoadPaths are searched, in order, after a relative or package-relative
	// load fails, mirroring the load-path fallback real Sass implementations
	// layer on top of §4's importer chain.
	LoadPaths []string

	// QuietDepURLs suppresses deprecation warnings originating from a
	// stylesheet whose canonical URL matches one of these prefixes, so a
	// consumer isn't warned about deprecations in code it doesn't own.
	QuietDepURLs []string

	Importers []importcache.SyncImporter

	Charset   bool
	SourceMap bool
}

// IsQuietDep reports whether canonicalURL falls under one of the configured
// quiet-dependency prefixes.
func (o Options) IsQuietDep(canonicalURL string) bool {
	for _, prefix := range o.QuietDepURLs {
		if len(canonicalURL) >= len(prefix) && canonicalURL[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
