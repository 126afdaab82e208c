package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/viant/ampmodel/model/value"
	"github.com/viant/ampmodel/policy"
)

// Tier classifies the discrepancy between a recomputed value and its
// stored reference
type Tier int

const (
	// TierExact means the discrepancy is below ExactThreshold
	TierExact = Tier(iota)
	// TierApproximate means the discrepancy is below ApproximateThreshold
	TierApproximate
	// TierMismatch means the discrepancy is at or above ApproximateThreshold,
	// or the checkpoint could not be evaluated at all
	TierMismatch
)

// Discrepancy thresholds; both bounds are half-open
const (
	ExactThreshold       = policy.DefaultExactThreshold
	ApproximateThreshold = policy.DefaultApproximateThreshold
)

// Classify maps a discrepancy onto its tier using the default thresholds
func Classify(delta float64) Tier {
	return classify(delta, ExactThreshold, ApproximateThreshold)
}

func classify(delta, exact, approximate float64) Tier {
	switch {
	case delta < exact:
		return TierExact
	case delta < approximate:
		return TierApproximate
	default:
		return TierMismatch
	}
}

// String implements fmt.Stringer
func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierApproximate:
		return "approximate"
	default:
		return "mismatch"
	}
}

// Result is the outcome of a single checkpoint evaluation
type Result struct {
	RunID        string        `json:"runId,omitempty"`
	Distribution string        `json:"distribution"`
	Point        string        `json:"point"`
	Tier         Tier          `json:"tier"`
	Reference    value.Scalar  `json:"reference"`
	Computed     value.Scalar  `json:"computed,omitempty"`
	Delta        float64       `json:"delta"`
	Elapsed      time.Duration `json:"elapsed,omitempty"`
	Err          error         `json:"-"`
}

// Status renders the tier with a distinguishing marker for checkpoints
// that failed to evaluate
func (r *Result) Status() string {
	if r.Err != nil {
		return fmt.Sprintf("%v (%v)", TierMismatch, r.Err)
	}
	return r.Tier.String()
}

// fail folds an evaluation error into a mismatch-tier result
func (r *Result) fail(err error) *Result {
	r.Tier = TierMismatch
	r.Err = err
	return r
}

// Report renders results as a plain text table suitable for the reporting
// layer
func Report(results []*Result) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-32v %-16v %-12v %v\n", "distribution", "point", "status", "delta"))
	for _, result := range results {
		delta := fmt.Sprintf("%.3e", result.Delta)
		if result.Err != nil {
			delta = "n/a"
		}
		b.WriteString(fmt.Sprintf("%-32v %-16v %-12v %v\n", result.Distribution, result.Point, result.Status(), delta))
	}
	return b.String()
}
