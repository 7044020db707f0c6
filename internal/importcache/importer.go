// Package importcache canonicalizes load URLs through an ordered chain of
// importers, memoizes the results with context-sensitive cacheability
// tracking, and caches the parsed sources those canonical URLs resolve to.
package importcache

// Syntax names the surface syntax a loaded source is written in.
type Syntax int

const (
	SyntaxSCSS Syntax = iota
	SyntaxIndented
	SyntaxCSS
)

// LoadResult is an importer's raw response to loading a canonical URL,
// before the external parser (see PURPOSE & SCOPE) turns it into a
// Stylesheet.
type LoadResult struct {
	Contents        string
	Syntax          Syntax
	SourceMapURL    string
	HasSourceMapURL bool
}

// Stylesheet is the parsed form of a loaded source. Its Value is owned by
// the external parser this spec references but does not define; the cache
// only needs a URL to key caching and invalidation by.
type Stylesheet struct {
	URL   string
	Value any
}

// Parser turns a raw load result into a Stylesheet, standing in for the
// external surface-syntax parser.
type Parser func(contents string, syntax Syntax, url string) (any, error)

// CanonicalizeContext is the dynamic context canonicalize_one threads
// through an importer's Canonicalize call: the containing URL is exposed
// only when the cache has decided the importer is allowed to see it, and
// the accessed flag is set the moment the importer actually reads it (via
// ContainingURL), so the cache
// can compute whether the call was cacheable.
type CanonicalizeContext struct {
	containingURL *string
	forImport     bool
	accessed      *bool
}

// ContainingURL returns the URL of the stylesheet that is loading this one,
// if the cache exposed it for this call, and marks it as accessed.
func (c *CanonicalizeContext) ContainingURL() (string, bool) {
	if c.containingURL == nil {
		return "", false
	}
	*c.accessed = true
	return *c.containingURL, true
}

// ForImport reports whether this canonicalization is happening for an
// "@import" (as opposed to "@use"/"@forward"), which some importers use to
// support import-only files.
func (c *CanonicalizeContext) ForImport() bool {
	return c.forImport
}

// Importer is the capability every importer must support regardless of
// whether it resolves synchronously or cooperatively.
type Importer interface {
	// IsNonCanonicalScheme declares schemes this importer refuses to emit
	// as canonical, which also makes it eligible to see the containing URL
	// for absolute URLs using that scheme.
	IsNonCanonicalScheme(scheme string) bool
}

// SyncImporter resolves URLs and loads sources synchronously. Importer
// values are compared by identity (as map keys), so implementations should
// use pointer receivers.
type SyncImporter interface {
	Importer
	Canonicalize(url string, ctx *CanonicalizeContext) (canonicalURL string, ok bool)
	Load(canonicalURL string) (LoadResult, bool)
}

// CooperativeImporter is the suspending counterpart to SyncImporter: its
// methods may yield control (e.g. to await out-of-process RPC) before
// resolving. The core cache algorithm is identical either way — see
// DESIGN NOTES §9 — so a CooperativeDriver adapts a CooperativeImporter
// into a SyncImporter-shaped call at its own suspension points rather than
// this package reimplementing the cache twice.
type CooperativeImporter interface {
	Importer
	CanonicalizeCooperative(url string, ctx *CanonicalizeContext) (canonicalURL string, ok bool, err error)
	LoadCooperative(canonicalURL string) (LoadResult, bool, error)
}

// BaseImporter names the importer and URL a relative load should be
// resolved against, corresponding to canonicalize's base_importer/base_url
// parameters.
type BaseImporter struct {
	Importer SyncImporter
	URL      string
}
