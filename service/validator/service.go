package validator

import (
	"context"
	"fmt"
	"log"
	"math/cmplx"
	"sync"

	"github.com/viant/ampmodel/internal/clock"
	"github.com/viant/ampmodel/internal/idgen"
	"github.com/viant/ampmodel/model"
	"github.com/viant/ampmodel/model/state"
	"github.com/viant/ampmodel/policy"
	"github.com/viant/ampmodel/progress"
	"github.com/viant/ampmodel/runtime/workspace"
	"github.com/viant/ampmodel/tracing"
)

// Config represents validator service configuration
type Config struct {
	// WorkerCount is the number of workers evaluating checkpoints
	WorkerCount int
}

// DefaultConfig returns the default validator configuration
func DefaultConfig() Config {
	return Config{WorkerCount: 4}
}

// Validate returns an error describing invalid settings or nil
func (c *Config) Validate() error {
	if c.WorkerCount <= 0 {
		return fmt.Errorf("validator.workerCount must be > 0")
	}
	return nil
}

// UnknownDistributionError indicates a checkpoint referencing a workspace
// entry that does not exist
type UnknownDistributionError struct {
	Name string
}

// Error implements error
func (e *UnknownDistributionError) Error() string {
	return fmt.Sprintf("unknown distribution %q", e.Name)
}

// UnknownPointError indicates a checkpoint referencing a parameter point
// that does not exist
type UnknownPointError struct {
	Name string
}

// Error implements error
func (e *UnknownPointError) Error() string {
	return fmt.Sprintf("unknown parameter point %q", e.Name)
}

// Service validates a populated workspace against reference checkpoints.
// Checkpoints are independent fixtures: they are fanned out over a worker
// pool and a failure in one never aborts the others. The workspace is
// treated as shared read-only state, so no locking is needed.
type Service struct {
	config Config
}

// Validate evaluates every checkpoint against the workspace and returns one
// result per checkpoint, in checkpoint order regardless of which worker
// finished first. The only error returned is context cancellation; per
// checkpoint failures are embedded in the corresponding result.
func (s *Service) Validate(ctx context.Context, ws *workspace.Workspace, checkpoints model.Checkpoints, points state.Points) ([]*Result, error) {
	ctx, span := tracing.StartSpan(ctx, "validator.Validate", "INTERNAL")
	var err error
	defer func() { tracing.EndSpan(span, err) }()

	runID := idgen.New()
	started := clock.Now()
	span.WithAttributes(map[string]string{
		"run.id":      runID,
		"checkpoints": fmt.Sprintf("%d", len(checkpoints)),
	})

	exact, approximate := policy.FromContext(ctx).Thresholds()
	tracker := progress.FromContext(ctx)
	if tracker != nil {
		tracker.RunID = runID
		tracker.StartedAt = started
	}

	results := make([]*Result, len(checkpoints))
	indexes := make(chan int)
	var wg sync.WaitGroup

	workerCount := s.config.WorkerCount
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(checkpoints) {
		workerCount = len(checkpoints)
	}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range indexes {
				result := s.evaluate(ws, checkpoints[index], points, exact, approximate)
				results[index] = result
				tracker.Update(resultDelta(result))
			}
		}()
	}

feed:
	for i := range checkpoints {
		select {
		case indexes <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(indexes)
	wg.Wait()
	if err != nil {
		return nil, err
	}

	elapsed := clock.Since(started)
	for _, result := range results {
		result.RunID = runID
		result.Elapsed = elapsed
	}
	return results, nil
}

// resultDelta projects an evaluation outcome onto a progress counter change
func resultDelta(result *Result) progress.Delta {
	delta := progress.Delta{Total: 1}
	switch {
	case result.Err != nil:
		delta.Mismatch = 1
		delta.Failed = 1
	case result.Tier == TierExact:
		delta.Exact = 1
	case result.Tier == TierApproximate:
		delta.Approximate = 1
	default:
		delta.Mismatch = 1
	}
	return delta
}

// evaluate runs a single checkpoint; any failure, a panicking component
// included, is folded into a mismatch-tier result rather than propagated
func (s *Service) evaluate(ws *workspace.Workspace, checkpoint *model.Checkpoint, points state.Points, exact, approximate float64) (result *Result) {
	result = &Result{
		Distribution: checkpoint.Distribution,
		Point:        checkpoint.Point,
		Reference:    checkpoint.Value,
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("checkpoint %v@%v panicked: %v", checkpoint.Distribution, checkpoint.Point, r)
			result.fail(fmt.Errorf("panic: %v", r))
		}
	}()
	distribution, ok := ws.Lookup(checkpoint.Distribution)
	if !ok {
		return result.fail(&UnknownDistributionError{Name: checkpoint.Distribution})
	}
	point, ok := points.Lookup(checkpoint.Point)
	if !ok {
		return result.fail(&UnknownPointError{Name: checkpoint.Point})
	}
	values, err := point.Parameters.Values()
	if err != nil {
		return result.fail(err)
	}
	computed, err := distribution.Evaluate(values)
	if err != nil {
		return result.fail(err)
	}
	result.Computed = computed
	result.Delta = cmplx.Abs(checkpoint.Value.Complex() - computed.Complex())
	result.Tier = classify(result.Delta, exact, approximate)
	return result
}

// New creates a new validator service
func New(options ...Option) *Service {
	s := &Service{config: DefaultConfig()}
	for _, option := range options {
		option(s)
	}
	return s
}
