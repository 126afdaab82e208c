package component

import (
	"fmt"
	"math/cmplx"
	"reflect"

	"github.com/viant/x"

	"github.com/viant/ampmodel/extension"
	"github.com/viant/ampmodel/model/state"
	"github.com/viant/ampmodel/model/types"
	"github.com/viant/ampmodel/model/value"
)

// ComplexAmplitudeConfig configures the ComplexAmplitude kind: a complex
// coefficient expressed through a magnitude and a phase parameter
type ComplexAmplitudeConfig struct {
	Magnitude string `json:"magnitude"`
	Phase     string `json:"phase"`
}

type complexAmplitude struct {
	magnitude string
	phase     string
}

// Evaluate implements types.Evaluable
func (c *complexAmplitude) Evaluate(params state.Values) (value.Scalar, error) {
	magnitude, ok := params[c.magnitude]
	if !ok {
		return 0, types.NewUnknownParameterError(c.magnitude)
	}
	phase, ok := params[c.phase]
	if !ok {
		return 0, types.NewUnknownParameterError(c.phase)
	}
	return value.Scalar(complex(magnitude.Real(), 0) * cmplx.Exp(complex(0, phase.Real()))), nil
}

func newComplexAmplitude(config interface{}, _ extension.Resolver) (types.Evaluable, error) {
	cfg, ok := config.(*ComplexAmplitudeConfig)
	if !ok {
		return nil, types.NewInvalidConfigError(config)
	}
	return &complexAmplitude{magnitude: cfg.Magnitude, phase: cfg.Phase}, nil
}

// CoherentSumConfig configures the CoherentSum kind: a complex-weighted sum
// of amplitude references. Coefficients name the parameters carrying the
// complex weights; when omitted every weight is one.
type CoherentSumConfig struct {
	Terms        []string `json:"terms"`
	Coefficients []string `json:"coefficients,omitempty"`
}

type coherentSum struct {
	terms        []types.Evaluable
	coefficients []string
}

// Evaluate implements types.Evaluable
func (c *coherentSum) Evaluate(params state.Values) (value.Scalar, error) {
	var total complex128
	for i, term := range c.terms {
		v, err := term.Evaluate(params)
		if err != nil {
			return 0, err
		}
		weight := complex128(1)
		if len(c.coefficients) > 0 {
			coefficient, ok := params[c.coefficients[i]]
			if !ok {
				return 0, types.NewUnknownParameterError(c.coefficients[i])
			}
			weight = coefficient.Complex()
		}
		total += weight * v.Complex()
	}
	return value.Scalar(total), nil
}

func newCoherentSum(config interface{}, resolver extension.Resolver) (types.Evaluable, error) {
	cfg, ok := config.(*CoherentSumConfig)
	if !ok {
		return nil, types.NewInvalidConfigError(config)
	}
	if len(cfg.Coefficients) > 0 && len(cfg.Coefficients) != len(cfg.Terms) {
		return nil, fmt.Errorf("coherent sum has %v terms but %v coefficients", len(cfg.Terms), len(cfg.Coefficients))
	}
	terms, err := resolveAll(resolver, cfg.Terms)
	if err != nil {
		return nil, err
	}
	return &coherentSum{terms: terms, coefficients: cfg.Coefficients}, nil
}

func amplitudeKinds() []*extension.Kind {
	return []*extension.Kind{
		{
			Name:   "ComplexAmplitude",
			Config: x.NewType(reflect.TypeOf(ComplexAmplitudeConfig{})),
			New:    newComplexAmplitude,
		},
		{
			Name:   "CoherentSum",
			Config: x.NewType(reflect.TypeOf(CoherentSumConfig{})),
			New:    newCoherentSum,
		},
	}
}
