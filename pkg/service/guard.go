package service

import (
	"maps"
	"sync"
)

// content kinds guarded against concurrent runs
const (
	KindHistorical = "historical"
	KindNews       = "news"
	KindCleanup    = "cleanup"
)

// Kinds lists the task kinds which can be triggered
var Kinds = []string{KindHistorical, KindNews, KindCleanup}

// Guard allows at most one run per kind. A second acquire while a run is in flight fails
// immediately, it is never queued.
type Guard struct {
	mu      sync.Mutex
	running map[string]bool
}

// NewGuard makes an empty guard
func NewGuard() *Guard {
	return &Guard{running: map[string]bool{}}
}

// TryAcquire marks kind as running. Returns false if it already runs, otherwise a release func
// which is safe to call more than once.
func (g *Guard) TryAcquire(kind string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running[kind] {
		return func() {}, false
	}
	g.running[kind] = true

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.running, kind)
			g.mu.Unlock()
		})
	}, true
}

// Running reports whether kind is in flight
func (g *Guard) Running(kind string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running[kind]
}

// Snapshot returns in-flight status for all known kinds
func (g *Guard) Snapshot() map[string]bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	res := make(map[string]bool, len(Kinds))
	for _, k := range Kinds {
		res[k] = false
	}
	maps.Copy(res, g.running)
	return res
}
