package feed

import (
	"context"
	"sync"
	"time"
)

// intervalGate enforces a minimal interval between requests to one source
type intervalGate struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

// Wait blocks until interval has passed since the previous request, callers are served one at a time
func (g *intervalGate) Wait(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.last.IsZero() {
		if wait := g.interval - time.Since(g.last); wait > 0 {
			timer := time.NewTimer(wait)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	g.last = time.Now()
	return nil
}
