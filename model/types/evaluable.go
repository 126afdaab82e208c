package types

import (
	"github.com/viant/ampmodel/model/state"
	"github.com/viant/ampmodel/model/value"
)

// Evaluable is the contract every built component satisfies: given a
// flattened parameter context it produces a numeric value. Implementations
// must be pure so that a workspace can be shared read-only across
// concurrent evaluations.
type Evaluable interface {
	Evaluate(params state.Values) (value.Scalar, error)
}

// EvaluableFunc adapts a plain function to the Evaluable interface
type EvaluableFunc func(params state.Values) (value.Scalar, error)

// Evaluate implements Evaluable
func (f EvaluableFunc) Evaluate(params state.Values) (value.Scalar, error) {
	return f(params)
}
