// Package progress provides a lightweight tracker that keeps aggregated
// checkpoint counters (total, exact, approximate, mismatch, failed) for a
// single validation run. The tracker instance lives in the run context -
// every component that receives the context can atomically update the
// counters via the Delta helper without requiring a global registry.
package progress

import (
	"context"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted while checkpoints
// are being evaluated. The fields are signed and therefore can be either
// positive (increment) or negative (decrement).
type Delta struct {
	Total       int
	Exact       int
	Approximate int
	Mismatch    int
	Failed      int
}

// Progress keeps aggregated checkpoint counters for one validation run. It
// is safe for concurrent use.
type Progress struct {
	// Identification - informative only, filled when the run starts.
	RunID     string
	Model     string
	StartedAt time.Time

	// Counters - modified via Update().
	TotalCheckpoints int
	ExactCount       int
	ApproximateCount int
	MismatchCount    int
	FailedCount      int

	sync.Mutex
	onChange func(Progress)
}

// Update applies the supplied delta to the tracker. It is safe to call from
// multiple goroutines. If an onChange callback has been registered it is
// invoked with a copy of the updated tracker outside the critical section so
// that the callback can perform slow operations (e.g. JSON encoding, I/O)
// without blocking the evaluation workers.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.Lock()

	p.TotalCheckpoints += d.Total
	p.ExactCount += d.Exact
	p.ApproximateCount += d.Approximate
	p.MismatchCount += d.Mismatch
	p.FailedCount += d.Failed

	snapshot := p.snapshot()
	cb := p.onChange

	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.snapshot()
}

// snapshot copies the counters while the lock is held
func (p *Progress) snapshot() Progress {
	return Progress{
		RunID:            p.RunID,
		Model:            p.Model,
		StartedAt:        p.StartedAt,
		TotalCheckpoints: p.TotalCheckpoints,
		ExactCount:       p.ExactCount,
		ApproximateCount: p.ApproximateCount,
		MismatchCount:    p.MismatchCount,
		FailedCount:      p.FailedCount,
	}
}

// OnChange registers a callback invoked after every update
func (p *Progress) OnChange(callback func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	defer p.Unlock()
	p.onChange = callback
}

type contextKey struct{}

// WithContext embeds the tracker in the context so that downstream services
// can report into it
func WithContext(ctx context.Context, p *Progress) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the tracker embedded in the context or nil; a nil
// tracker accepts updates as no-ops, so callers never need to branch
func FromContext(ctx context.Context) *Progress {
	p, _ := ctx.Value(contextKey{}).(*Progress)
	return p
}
