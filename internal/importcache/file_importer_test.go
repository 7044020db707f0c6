package importcache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileImporterCanonicalizeAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "_a.scss"), []byte("a { color: red }"), 0o644))

	importer := NewFileImporter(dir)
	canonical, ok := importer.Canonicalize("_a.scss", nil)
	require.True(t, ok)

	result, ok := importer.Load(canonical)
	require.True(t, ok)
	assert.Equal(t, "a { color: red }", result.Contents)
	assert.Equal(t, SyntaxSCSS, result.Syntax)
}

func TestFileImporterCanonicalizeMissingFileFails(t *testing.T) {
	importer := NewFileImporter(t.TempDir())
	_, ok := importer.Canonicalize("missing.scss", nil)
	assert.False(t, ok)
}

func TestFileImporterLoadReusesCacheWhenModTimeUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "_a.scss")
	require.NoError(t, os.WriteFile(path, []byte("a { color: red }"), 0o644))

	importer := NewFileImporter(dir)
	canonical, ok := importer.Canonicalize("_a.scss", nil)
	require.True(t, ok)

	first, ok := importer.Load(canonical)
	require.True(t, ok)

	second, ok := importer.Load(canonical)
	require.True(t, ok)
	assert.Equal(t, first.Contents, second.Contents)
}
