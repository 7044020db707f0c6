package compiler

import (
	"fmt"

	"github.com/gosass/sass/internal/importcache"
	"github.com/gosass/sass/internal/logger"
	"github.com/gosass/sass/internal/sassvalue"
)

// HostFunction is a custom function registered with a SyncDriver and invoked
// synchronously by its CallFunction. A CooperativeDriver does not use
// HostFunction values; it hands each call to its event loop instead.
type HostFunction func(args []sassvalue.Value) (sassvalue.Value, error)

// SyncDriver implements Driver directly over an importcache.Cache and a
// plain Go map of host functions: the synchronous flavor spec.md §5
// describes as the baseline the cooperative flavor must match semantics
// with.
type SyncDriver struct {
	Cache     *importcache.Cache
	Parse     importcache.Parser
	Functions map[string]HostFunction
}

// NewSyncDriver builds a SyncDriver over the given importer chain.
func NewSyncDriver(importers []importcache.SyncImporter, parse importcache.Parser) *SyncDriver {
	return &SyncDriver{
		Cache:     importcache.NewCache(importers),
		Parse:     parse,
		Functions: make(map[string]HostFunction),
	}
}

// RegisterFunction adds or replaces a custom function by name.
func (d *SyncDriver) RegisterFunction(name string, fn HostFunction) {
	d.Functions[name] = fn
}

// WithLog attaches log to d's underlying cache, so a relative canonical URL
// reports MsgID_Deprecation_RelativeCanonicalURL instead of passing silently.
func (d *SyncDriver) WithLog(log logger.Log) *SyncDriver {
	d.Cache.WithLog(log)
	return d
}

func (d *SyncDriver) Import(url string, base *importcache.BaseImporter, forImport, quiet bool) (*Stylesheet, error) {
	sheet, err := d.Cache.Import(url, base, forImport, quiet, d.Parse)
	if err != nil || sheet == nil {
		return nil, err
	}
	return &Stylesheet{CanonicalURL: sheet.URL, Root: sheet.Value}, nil
}

func (d *SyncDriver) CallFunction(name string, args []sassvalue.Value) (sassvalue.Value, error) {
	fn, ok := d.Functions[name]
	if !ok {
		return nil, fmt.Errorf("compiler: no custom function registered with name %q", name)
	}
	return fn(args)
}
