package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsQuietDepMatchesPrefix(t *testing.T) {
	opts := Options{QuietDepURLs: []string{"file:///vendor/"}}
	assert.True(t, opts.IsQuietDep("file:///vendor/lib/_index.scss"))
	assert.False(t, opts.IsQuietDep("file:///src/_index.scss"))
}

func TestLoadFileDecodesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sass.config.yaml")
	contents := "output_style: compressed\nload_paths:\n  - vendor\n  - node_modules\nquiet_dep_urls:\n  - file:///vendor/\ncharset: true\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	opts, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, OutputCompressed, opts.OutputStyle)
	assert.Equal(t, []string{"vendor", "node_modules"}, opts.LoadPaths)
	assert.Equal(t, []string{"file:///vendor/"}, opts.QuietDepURLs)
	assert.True(t, opts.Charset)
	assert.False(t, opts.SourceMap)
}

func TestLoadFileMissingFileReturnsError(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
