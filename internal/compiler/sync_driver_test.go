package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosass/sass/internal/importcache"
	"github.com/gosass/sass/internal/sassvalue"
)

type stubImporter struct {
	canonical map[string]string
	contents  map[string]string
}

func newStubImporter() *stubImporter {
	return &stubImporter{canonical: make(map[string]string), contents: make(map[string]string)}
}

func (s *stubImporter) IsNonCanonicalScheme(scheme string) bool { return false }

func (s *stubImporter) Canonicalize(url string, ctx *importcache.CanonicalizeContext) (string, bool) {
	canonical, ok := s.canonical[url]
	return canonical, ok
}

func (s *stubImporter) Load(canonicalURL string) (importcache.LoadResult, bool) {
	contents, ok := s.contents[canonicalURL]
	if !ok {
		return importcache.LoadResult{}, false
	}
	return importcache.LoadResult{Contents: contents, Syntax: importcache.SyntaxSCSS}, true
}

func identityParse(contents string, syntax importcache.Syntax, url string) (any, error) {
	return contents, nil
}

func TestSyncDriverImportReturnsParsedStylesheet(t *testing.T) {
	importer := newStubImporter()
	importer.canonical["a.scss"] = "file:///a.scss"
	importer.contents["file:///a.scss"] = "a { color: red }"

	driver := NewSyncDriver([]importcache.SyncImporter{importer}, identityParse)

	sheet, err := driver.Import("a.scss", nil, false, false)
	require.NoError(t, err)
	require.NotNil(t, sheet)
	assert.Equal(t, "file:///a.scss", sheet.CanonicalURL)
	assert.Equal(t, "a { color: red }", sheet.Root)
}

func TestSyncDriverImportMissReturnsNilWithoutError(t *testing.T) {
	driver := NewSyncDriver([]importcache.SyncImporter{newStubImporter()}, identityParse)

	sheet, err := driver.Import("missing.scss", nil, false, false)
	require.NoError(t, err)
	assert.Nil(t, sheet)
}

func TestSyncDriverCallFunctionInvokesRegisteredHost(t *testing.T) {
	driver := NewSyncDriver(nil, identityParse)
	driver.RegisterFunction("double", func(args []sassvalue.Value) (sassvalue.Value, error) {
		n := args[0].(sassvalue.Number)
		return sassvalue.NewUnitless(n.Value.Value() * 2), nil
	})

	result, err := driver.CallFunction("double", []sassvalue.Value{sassvalue.NewUnitless(21)})
	require.NoError(t, err)
	assert.Equal(t, sassvalue.NewUnitless(42), result)
}

func TestSyncDriverCallFunctionUnknownNameErrors(t *testing.T) {
	driver := NewSyncDriver(nil, identityParse)
	_, err := driver.CallFunction("missing", nil)
	assert.Error(t, err)
}
