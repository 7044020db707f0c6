package importcache

// MapImporter is a test double: it canonicalizes through a fixed url ->
// canonicalURL map and loads through a canonicalURL -> contents map,
// counting how many times each method actually runs so tests can observe
// cache hits/misses (the scenario spec.md §8's concrete scenario 6 calls
// for).
type MapImporter struct {
	Canonical           map[string]string
	Contents            map[string]string
	NonCanonicalSchemes map[string]bool

	CanonicalizeCalls int
	LoadCalls         int
}

func NewMapImporter() *MapImporter {
	return &MapImporter{
		Canonical:           make(map[string]string),
		Contents:            make(map[string]string),
		NonCanonicalSchemes: make(map[string]bool),
	}
}

func (m *MapImporter) IsNonCanonicalScheme(scheme string) bool {
	return m.NonCanonicalSchemes[scheme]
}

func (m *MapImporter) Canonicalize(url string, ctx *CanonicalizeContext) (string, bool) {
	m.CanonicalizeCalls++
	canonical, ok := m.Canonical[url]
	return canonical, ok
}

func (m *MapImporter) Load(canonicalURL string) (LoadResult, bool) {
	m.LoadCalls++
	contents, ok := m.Contents[canonicalURL]
	if !ok {
		return LoadResult{}, false
	}
	return LoadResult{Contents: contents, Syntax: SyntaxSCSS}, true
}
