package importcache

import (
	"fmt"
	"net/url"
	"path"
	"sync"

	"github.com/gosass/sass/internal/logger"
)

// CanonicalizeResult is the (Importer, canonical_url, original_url) triple
// canonicalize returns on a hit.
type CanonicalizeResult struct {
	Importer     SyncImporter
	CanonicalURL string
	OriginalURL  string
}

type canonicalizeKey struct {
	url       string
	forImport bool
}

type perImporterKey struct {
	importer  SyncImporter
	url       string
	forImport bool
}

type canonicalizeEntry struct {
	result CanonicalizeResult
	found  bool
}

type importEntry struct {
	sheet *Stylesheet
	found bool
}

// Cache holds the four mappings spec.md §3 names: canonicalize_cache,
// per_importer_cache (plus its relative_url_map for invalidation), and
// import_cache/result_cache. It is safe for concurrent use, though
// spec.md §5 notes a single compilation only ever drives it from one flow
// of control.
type Cache struct {
	mu sync.Mutex

	// Log is optional; when set, a relative canonical URL (spec.md §4.4)
	// is reported through it as MsgID_Deprecation_RelativeCanonicalURL.
	// It is left at its zero value by NewCache so existing call sites
	// that never set it keep running silently; WithLog attaches one.
	Log logger.Log

	importers []SyncImporter

	canonicalizeCache map[canonicalizeKey]canonicalizeEntry
	perImporterCache  map[perImporterKey]canonicalizeEntry
	relativeURLMap    map[perImporterKey]string

	importCache  map[string]importEntry
	resultCache  map[string]LoadResult
	originalsFor map[string][]string
}

// NewCache constructs an import cache over the given ordered importer
// chain, used as the chain canonicalize iterates in step 3 of its
// algorithm.
func NewCache(importers []SyncImporter) *Cache {
	return &Cache{
		importers:         importers,
		canonicalizeCache: make(map[canonicalizeKey]canonicalizeEntry),
		perImporterCache:  make(map[perImporterKey]canonicalizeEntry),
		relativeURLMap:    make(map[perImporterKey]string),
		importCache:       make(map[string]importEntry),
		resultCache:       make(map[string]LoadResult),
		originalsFor:      make(map[string][]string),
	}
}

// WithLog attaches log to c for the diagnostics Import raises, returning c
// so construction and attachment can chain at the call site.
func (c *Cache) WithLog(log logger.Log) *Cache {
	c.Log = log
	return c
}

// Canonicalize resolves url to a canonical URL, optionally relative to a
// base importer and URL, following the cache/importer-chain algorithm of
// spec.md §4.4 exactly: a relative load against a base importer is handled
// entirely through per_importer_cache and never touches the global
// canonicalize_cache or the rest of the chain; everything else walks the
// chain, tracking cacheability per importer and for the chain as a whole.
func (c *Cache) Canonicalize(rawURL string, base *BaseImporter, forImport bool) (CanonicalizeResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if base != nil && hasEmptyScheme(rawURL) {
		resolved, err := resolveRelative(base.URL, rawURL)
		if err != nil {
			return CanonicalizeResult{}, false, err
		}

		key := perImporterKey{importer: base.Importer, url: resolved, forImport: forImport}
		if entry, ok := c.perImporterCache[key]; ok {
			return entry.result, entry.found, nil
		}

		result, found, _ := c.canonicalizeOne(base.Importer, resolved, nil, forImport)
		c.perImporterCache[key] = canonicalizeEntry{result: result, found: found}
		c.relativeURLMap[key] = rawURL
		if found {
			c.recordOriginal(result)
		}
		return result, found, nil
	}

	key := canonicalizeKey{url: rawURL, forImport: forImport}
	if entry, ok := c.canonicalizeCache[key]; ok {
		return entry.result, entry.found, nil
	}

	chainCacheable := true

	for i, importer := range c.importers {
		perKey := perImporterKey{importer: importer, url: rawURL, forImport: forImport}
		if entry, ok := c.perImporterCache[perKey]; ok {
			if entry.found {
				return entry.result, true, nil
			}
			continue
		}

		result, found, individuallyCacheable := c.canonicalizeOne(importer, rawURL, nil, forImport)

		switch {
		case individuallyCacheable && chainCacheable:
			if found {
				c.canonicalizeCache[key] = canonicalizeEntry{result: result, found: true}
				c.recordOriginal(result)
				return result, true, nil
			}
		case individuallyCacheable:
			c.perImporterCache[perKey] = canonicalizeEntry{result: result, found: found}
			if found {
				c.recordOriginal(result)
				return result, true, nil
			}
		default:
			if chainCacheable {
				for _, tried := range c.importers[:i] {
					c.perImporterCache[perImporterKey{importer: tried, url: rawURL, forImport: forImport}] = canonicalizeEntry{found: false}
				}
				chainCacheable = false
			}
			if found {
				c.recordOriginal(result)
				return result, true, nil
			}
		}
	}

	if chainCacheable {
		c.canonicalizeCache[key] = canonicalizeEntry{found: false}
	}
	return CanonicalizeResult{}, false, nil
}

// canonicalizeOne invokes importer.Canonicalize in a dynamic context that
// exposes the containing URL only when rawURL has an empty scheme or the
// importer declares its scheme non-canonical; the result's cacheability is
// !exposedContaining || !accessed.
func (c *Cache) canonicalizeOne(importer SyncImporter, rawURL string, containingURL *string, forImport bool) (CanonicalizeResult, bool, bool) {
	exposeContaining := containingURL != nil && (hasEmptyScheme(rawURL) || importer.IsNonCanonicalScheme(schemeOf(rawURL)))

	accessed := false
	ctx := &CanonicalizeContext{forImport: forImport, accessed: &accessed}
	if exposeContaining {
		ctx.containingURL = containingURL
	}

	canonical, ok := importer.Canonicalize(rawURL, ctx)
	cacheable := !exposeContaining || !accessed
	if !ok {
		return CanonicalizeResult{}, false, cacheable
	}
	return CanonicalizeResult{Importer: importer, CanonicalURL: canonical, OriginalURL: rawURL}, true, cacheable
}

func (c *Cache) recordOriginal(result CanonicalizeResult) {
	c.originalsFor[result.CanonicalURL] = append(c.originalsFor[result.CanonicalURL], result.OriginalURL)
}

// Import canonicalizes url and, on a hit, imports the canonical result.
// quiet suppresses the deprecation warning a relative canonical URL would
// otherwise emit, the same way spec.md §2 has a load-path-prefix option
// silence warnings from dependencies a user doesn't control.
func (c *Cache) Import(rawURL string, base *BaseImporter, forImport, quiet bool, parse Parser) (*Stylesheet, error) {
	result, found, err := c.Canonicalize(rawURL, base, forImport)
	if err != nil || !found {
		return nil, err
	}
	if !quiet {
		c.warnIfRelative(result.CanonicalURL)
	}
	return c.ImportCanonical(result.Importer, result.CanonicalURL, result.OriginalURL, quiet, parse)
}

// warnIfRelative reports MsgID_Deprecation_RelativeCanonicalURL when an
// importer's canonicalize returned a relative URL instead of an absolute
// one, per spec.md §4.4 ("a returned relative URL emits a deprecation
// warning"). It is a no-op when no Log has been attached.
func (c *Cache) warnIfRelative(canonicalURL string) {
	if c.Log.AddMsg == nil || !hasEmptyScheme(canonicalURL) {
		return
	}
	c.Log.AddWarningWithID(logger.MsgID_Deprecation_RelativeCanonicalURL,
		fmt.Sprintf("the importer for %q returned a relative canonical URL instead of an absolute one", canonicalURL))
}

// ImportCanonical memoizes canonicalURL in import_cache, loading and
// parsing it on a miss. ImportCanonical emits no warnings itself, so quiet
// has no effect here; the relative-canonical-URL warning it would silence
// is raised (or suppressed) by Import before it calls ImportCanonical.
func (c *Cache) ImportCanonical(importer SyncImporter, canonicalURL, originalURL string, quiet bool, parse Parser) (*Stylesheet, error) {
	c.mu.Lock()
	if entry, ok := c.importCache[canonicalURL]; ok {
		c.mu.Unlock()
		if !entry.found {
			return nil, nil
		}
		return entry.sheet, nil
	}
	c.mu.Unlock()

	result, ok := importer.Load(canonicalURL)
	if !ok {
		c.mu.Lock()
		c.importCache[canonicalURL] = importEntry{found: false}
		c.mu.Unlock()
		return nil, nil
	}

	c.mu.Lock()
	c.resultCache[canonicalURL] = result
	c.mu.Unlock()

	logicalURL, err := resolveRelative(originalURL, canonicalURL)
	if err != nil {
		logicalURL = canonicalURL
	}

	value, err := parse(result.Contents, result.Syntax, logicalURL)
	if err != nil {
		return nil, err
	}

	sheet := &Stylesheet{URL: logicalURL, Value: value}
	c.mu.Lock()
	c.importCache[canonicalURL] = importEntry{sheet: sheet, found: true}
	c.mu.Unlock()
	return sheet, nil
}

// ClearCanonicalize removes both for_import variants of url from
// canonicalize_cache, plus every per_importer_cache entry whose URL
// component equals url or whose recorded relative URL does.
func (c *Cache) ClearCanonicalize(rawURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.canonicalizeCache, canonicalizeKey{url: rawURL, forImport: false})
	delete(c.canonicalizeCache, canonicalizeKey{url: rawURL, forImport: true})

	for key := range c.perImporterCache {
		if key.url == rawURL {
			delete(c.perImporterCache, key)
			delete(c.relativeURLMap, key)
		}
	}
	for key, relative := range c.relativeURLMap {
		if relative == rawURL {
			delete(c.perImporterCache, key)
			delete(c.relativeURLMap, key)
		}
	}
}

// ClearImport removes the parsed-stylesheet and raw-result entries for
// canonicalURL.
func (c *Cache) ClearImport(canonicalURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.importCache, canonicalURL)
	delete(c.resultCache, canonicalURL)
}

// Humanize picks the shortest original URL that ever canonicalized to
// canonicalURL and re-resolves it against the canonical URL's basename, so
// a displayed path carries the canonical extension. It falls back to the
// canonical URL itself when no original is on record.
func (c *Cache) Humanize(canonicalURL string) string {
	c.mu.Lock()
	originals := append([]string{}, c.originalsFor[canonicalURL]...)
	c.mu.Unlock()

	if len(originals) == 0 {
		return canonicalURL
	}

	shortest := originals[0]
	for _, o := range originals[1:] {
		if len(o) < len(shortest) {
			shortest = o
		}
	}

	resolved, err := resolveRelative(shortest, path.Base(canonicalURL))
	if err != nil {
		return canonicalURL
	}
	return resolved
}

func schemeOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Scheme
}

func hasEmptyScheme(rawURL string) bool {
	return schemeOf(rawURL) == ""
}

func resolveRelative(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(r).String(), nil
}
