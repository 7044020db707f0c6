package compiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosass/sass/internal/importcache"
	"github.com/gosass/sass/internal/sassvalue"
)

type stubCooperativeImporter struct {
	canonical map[string]string
	contents  map[string]string
}

func newStubCooperativeImporter() *stubCooperativeImporter {
	return &stubCooperativeImporter{canonical: make(map[string]string), contents: make(map[string]string)}
}

func (s *stubCooperativeImporter) IsNonCanonicalScheme(scheme string) bool { return false }

func (s *stubCooperativeImporter) CanonicalizeCooperative(url string, ctx *importcache.CanonicalizeContext) (string, bool, error) {
	canonical, ok := s.canonical[url]
	return canonical, ok, nil
}

func (s *stubCooperativeImporter) LoadCooperative(canonicalURL string) (importcache.LoadResult, bool, error) {
	contents, ok := s.contents[canonicalURL]
	if !ok {
		return importcache.LoadResult{}, false, nil
	}
	return importcache.LoadResult{Contents: contents, Syntax: importcache.SyntaxSCSS}, true, nil
}

func TestCooperativeDriverImportResolvesThroughAdapter(t *testing.T) {
	importer := newStubCooperativeImporter()
	importer.canonical["a.scss"] = "file:///a.scss"
	importer.contents["file:///a.scss"] = "a { color: red }"

	driver := NewCooperativeDriver([]importcache.CooperativeImporter{importer}, identityParse, make(chan *CooperativeCall))

	sheet, err := driver.Import("a.scss", nil, false, false)
	require.NoError(t, err)
	require.NotNil(t, sheet)
	assert.Equal(t, "file:///a.scss", sheet.CanonicalURL)
}

func TestCooperativeDriverCallFunctionSuspendsUntilResumed(t *testing.T) {
	calls := make(chan *CooperativeCall)
	driver := NewCooperativeDriver(nil, identityParse, calls)

	go func() {
		call := <-calls
		n := call.Arguments[0].(sassvalue.Number)
		call.Resume <- CooperativeResult{Value: sassvalue.NewUnitless(n.Value.Value() + 1)}
	}()

	done := make(chan sassvalue.Value, 1)
	go func() {
		result, err := driver.CallFunction("increment", []sassvalue.Value{sassvalue.NewUnitless(41)})
		require.NoError(t, err)
		done <- result
	}()

	select {
	case result := <-done:
		assert.Equal(t, sassvalue.NewUnitless(42), result)
	case <-time.After(time.Second):
		t.Fatal("CallFunction never resumed")
	}
}
