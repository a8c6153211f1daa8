package session

import (
	"context"
	"time"
)

// Runner drives an engine in real time for consumers without their own
// event loop.
type Runner struct {
	engine   *Engine
	interval time.Duration
}

// NewRunner creates a runner that ticks e every TickInterval.
func NewRunner(e *Engine) *Runner {
	return &Runner{engine: e, interval: TickInterval}
}

// Run ticks the engine until ctx is cancelled and returns ctx's error.
func (r *Runner) Run(ctx context.Context) error {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			r.engine.Tick(r.engine.clock.Now())
		}
	}
}
