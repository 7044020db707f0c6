package compiler

import (
	"github.com/gosass/sass/internal/importcache"
	"github.com/gosass/sass/internal/logger"
	"github.com/gosass/sass/internal/sassvalue"
)

// CooperativeCall carries a pending custom-function invocation out to
// whatever event loop owns a CooperativeDriver; the driver blocks on
// Resume until that loop answers it. This is the "custom-function
// callback" suspension point spec.md §5 names.
type CooperativeCall struct {
	Name      string
	Arguments []sassvalue.Value
	Resume    chan CooperativeResult
}

// CooperativeResult answers a CooperativeCall.
type CooperativeResult struct {
	Value sassvalue.Value
	Err   error
}

// CooperativeDriver implements Driver over a chain of CooperativeImporter
// values and a channel of pending function calls, rather than over
// SyncImporter/HostFunction directly. It reuses the exact same cache
// algorithm a SyncDriver does (see cooperativeAdapter) instead of
// reimplementing import resolution for the suspending case, matching
// DESIGN NOTES §9's "share all algorithms."
type CooperativeDriver struct {
	sync  *SyncDriver
	calls chan *CooperativeCall
}

// NewCooperativeDriver builds a CooperativeDriver. calls is the channel the
// owning event loop reads pending function invocations from and answers by
// sending on each CooperativeCall's Resume channel.
func NewCooperativeDriver(importers []importcache.CooperativeImporter, parse importcache.Parser, calls chan *CooperativeCall) *CooperativeDriver {
	adapted := make([]importcache.SyncImporter, len(importers))
	for i, imp := range importers {
		adapted[i] = &cooperativeAdapter{importer: imp}
	}
	return &CooperativeDriver{
		sync:  NewSyncDriver(adapted, parse),
		calls: calls,
	}
}

func (d *CooperativeDriver) Import(url string, base *importcache.BaseImporter, forImport, quiet bool) (*Stylesheet, error) {
	return d.sync.Import(url, base, forImport, quiet)
}

// WithLog attaches log to the underlying SyncDriver's cache; see
// SyncDriver.WithLog.
func (d *CooperativeDriver) WithLog(log logger.Log) *CooperativeDriver {
	d.sync.WithLog(log)
	return d
}

// CallFunction suspends by handing the call to d.calls and blocking on the
// per-call Resume channel, rather than looking the function up locally the
// way SyncDriver does.
func (d *CooperativeDriver) CallFunction(name string, args []sassvalue.Value) (sassvalue.Value, error) {
	resume := make(chan CooperativeResult, 1)
	d.calls <- &CooperativeCall{Name: name, Arguments: args, Resume: resume}
	result := <-resume
	return result.Value, result.Err
}

// cooperativeAdapter makes a CooperativeImporter usable as a
// SyncImporter, running its cooperative methods on a separate goroutine
// and blocking on a result channel. This is the channel-based "importer
// call" suspension point spec.md §5 names; importcache.Cache itself never
// needs to know the underlying importer might suspend.
type cooperativeAdapter struct {
	importer importcache.CooperativeImporter
}

func (a *cooperativeAdapter) IsNonCanonicalScheme(scheme string) bool {
	return a.importer.IsNonCanonicalScheme(scheme)
}

func (a *cooperativeAdapter) Canonicalize(url string, ctx *importcache.CanonicalizeContext) (string, bool) {
	type outcome struct {
		url string
		ok  bool
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		canonical, ok, err := a.importer.CanonicalizeCooperative(url, ctx)
		done <- outcome{canonical, ok, err}
	}()
	result := <-done
	if result.err != nil {
		return "", false
	}
	return result.url, result.ok
}

func (a *cooperativeAdapter) Load(canonicalURL string) (importcache.LoadResult, bool) {
	type outcome struct {
		result importcache.LoadResult
		ok     bool
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, ok, err := a.importer.LoadCooperative(canonicalURL)
		done <- outcome{result, ok, err}
	}()
	result := <-done
	if result.err != nil {
		return importcache.LoadResult{}, false
	}
	return result.result, result.ok
}
