package importcache

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileImporter resolves "file://" URLs against a single root directory and
// loads them from disk, caching file contents keyed by modification time so
// a second load of an unchanged file skips the read. It exists to make this
// package's own tests exercisable against a real filesystem without
// pulling in a general resolver; it is not part of the core contract (an
// embedder supplies its own Importer for real filesystem/package
// resolution, per spec.md §6), and production call sites are expected to
// provide richer importers of their own.
type FileImporter struct {
	Root string

	mu      sync.Mutex
	entries map[string]fileEntry
}

type fileEntry struct {
	contents string
	modTime  time.Time
}

// NewFileImporter constructs a FileImporter rooted at root.
func NewFileImporter(root string) *FileImporter {
	return &FileImporter{Root: root, entries: make(map[string]fileEntry)}
}

func (f *FileImporter) IsNonCanonicalScheme(scheme string) bool { return false }

// Canonicalize resolves rawURL (a path relative to Root, or a "file://"
// URL already rooted there) to an absolute "file://" URL, succeeding only
// when the target file exists.
func (f *FileImporter) Canonicalize(rawURL string, ctx *CanonicalizeContext) (string, bool) {
	path := f.pathFor(rawURL)
	if path == "" {
		return "", false
	}
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String(), true
}

// Load reads the file canonicalURL names, reusing a cached read when the
// file's modification time hasn't changed since the last Load.
func (f *FileImporter) Load(canonicalURL string) (LoadResult, bool) {
	u, err := url.Parse(canonicalURL)
	if err != nil || u.Scheme != "file" {
		return LoadResult{}, false
	}
	path := filepath.FromSlash(u.Path)

	info, err := os.Stat(path)
	if err != nil {
		return LoadResult{}, false
	}

	f.mu.Lock()
	if entry, ok := f.entries[path]; ok && entry.modTime.Equal(info.ModTime()) {
		f.mu.Unlock()
		return LoadResult{Contents: entry.contents, Syntax: syntaxFor(path)}, true
	}
	f.mu.Unlock()

	contents, err := os.ReadFile(path)
	if err != nil {
		return LoadResult{}, false
	}

	f.mu.Lock()
	f.entries[path] = fileEntry{contents: string(contents), modTime: info.ModTime()}
	f.mu.Unlock()

	return LoadResult{Contents: string(contents), Syntax: syntaxFor(path)}, true
}

func (f *FileImporter) pathFor(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Scheme == "file" {
		return filepath.FromSlash(u.Path)
	}
	if hasEmptyScheme(rawURL) {
		return filepath.Join(f.Root, filepath.FromSlash(rawURL))
	}
	return ""
}

func syntaxFor(path string) Syntax {
	switch {
	case strings.HasSuffix(path, ".sass"):
		return SyntaxIndented
	case strings.HasSuffix(path, ".css"):
		return SyntaxCSS
	default:
		return SyntaxSCSS
	}
}
