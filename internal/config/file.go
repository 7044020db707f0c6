package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileOptions is the on-disk shape of a project config file: a convenience
// layer on top of Options, not a replacement for it, so it only names the
// fields a project would reasonably want to check into source control.
type fileOptions struct {
	OutputStyle  string   `yaml:"output_style"`
	LoadPaths    []string `yaml:"load_paths"`
	QuietDepURLs []string `yaml:"quiet_dep_urls"`
	Charset      bool     `yaml:"charset"`
	SourceMap    bool     `yaml:"source_map"`
}

// LoadFile reads a sass.config.yaml-shaped file at path and decodes it into
// an Options value. Importers are never part of the file format: they are
// Go values a caller constructs programmatically and must still assign
// after LoadFile returns.
func LoadFile(path string) (Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}

	var decoded fileOptions
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return Options{}, err
	}

	opts := Options{
		LoadPaths:    decoded.LoadPaths,
		QuietDepURLs: decoded.QuietDepURLs,
		Charset:      decoded.Charset,
		SourceMap:    decoded.SourceMap,
	}
	if decoded.OutputStyle == "compressed" {
		opts.OutputStyle = OutputCompressed
	}
	return opts, nil
}
