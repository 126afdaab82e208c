// Package policy provides an optional per-run tolerance layer that can be
// attached to a validation run via context. It is deliberately decoupled
// from the validator so that using it is entirely opt-in - runs that do not
// embed a Policy in their context keep the default discrepancy thresholds.
package policy

import (
	"context"
	"fmt"
)

// Default discrepancy thresholds; both bounds are half-open.
const (
	DefaultExactThreshold       = 1e-10
	DefaultApproximateThreshold = 1e-2
)

// Policy represents the tolerance settings for the current validation run.
//
// A nil *Policy means "use the default thresholds" and is therefore the
// zero-cost default. A zero threshold inherits its default, which keeps a
// partially populated policy useful.
type Policy struct {
	ExactThreshold       float64
	ApproximateThreshold float64
}

// Config represents the declarative, serialisable form of a Policy.
type Config struct {
	Exact       float64 `json:"exact,omitempty" yaml:"exact,omitempty"`
	Approximate float64 `json:"approximate,omitempty" yaml:"approximate,omitempty"`
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{
		Exact:       p.ExactThreshold,
		Approximate: p.ApproximateThreshold,
	}
}

// FromConfig converts a stored Config back to a runtime Policy.
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{
		ExactThreshold:       c.Exact,
		ApproximateThreshold: c.Approximate,
	}
}

// Thresholds resolves the effective discrepancy bounds; nil policy and zero
// fields fall back to the defaults
func (p *Policy) Thresholds() (exact, approximate float64) {
	exact, approximate = DefaultExactThreshold, DefaultApproximateThreshold
	if p == nil {
		return exact, approximate
	}
	if p.ExactThreshold > 0 {
		exact = p.ExactThreshold
	}
	if p.ApproximateThreshold > 0 {
		approximate = p.ApproximateThreshold
	}
	return exact, approximate
}

// Validate returns an error describing inconsistent settings or nil
func (p *Policy) Validate() error {
	if p == nil {
		return nil
	}
	exact, approximate := p.Thresholds()
	if exact >= approximate {
		return fmt.Errorf("exact threshold %v must be below approximate threshold %v", exact, approximate)
	}
	return nil
}

type contextKey struct{}

// WithContext embeds the policy in the context for the duration of a run
func WithContext(ctx context.Context, p *Policy) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the policy embedded in the context or nil
func FromContext(ctx context.Context) *Policy {
	p, _ := ctx.Value(contextKey{}).(*Policy)
	return p
}
