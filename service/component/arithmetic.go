package component

import (
	"reflect"

	"github.com/viant/x"

	"github.com/viant/ampmodel/extension"
	"github.com/viant/ampmodel/model/state"
	"github.com/viant/ampmodel/model/types"
	"github.com/viant/ampmodel/model/value"
)

// resolve looks up a name-valued field in the workspace built so far
func resolve(resolver extension.Resolver, name string) (types.Evaluable, error) {
	if resolver != nil {
		if component, ok := resolver.Lookup(name); ok {
			return component, nil
		}
	}
	return nil, types.NewMissingDependencyError(name)
}

// resolveAll resolves a list of name-valued references
func resolveAll(resolver extension.Resolver, names []string) ([]types.Evaluable, error) {
	result := make([]types.Evaluable, 0, len(names))
	for _, name := range names {
		component, err := resolve(resolver, name)
		if err != nil {
			return nil, err
		}
		result = append(result, component)
	}
	return result, nil
}

// ScaleConfig configures the Scale kind
type ScaleConfig struct {
	Source string      `json:"source"`
	Factor interface{} `json:"factor"`
}

type scale struct {
	source types.Evaluable
	factor value.Scalar
}

// Evaluate implements types.Evaluable
func (s *scale) Evaluate(params state.Values) (value.Scalar, error) {
	v, err := s.source.Evaluate(params)
	if err != nil {
		return 0, err
	}
	return value.Scalar(v.Complex() * s.factor.Complex()), nil
}

func newScale(config interface{}, resolver extension.Resolver) (types.Evaluable, error) {
	cfg, ok := config.(*ScaleConfig)
	if !ok {
		return nil, types.NewInvalidConfigError(config)
	}
	source, err := resolve(resolver, cfg.Source)
	if err != nil {
		return nil, err
	}
	factor, err := value.Coerce(cfg.Factor)
	if err != nil {
		return nil, err
	}
	return &scale{source: source, factor: factor}, nil
}

// TermsConfig configures the n-ary Sum and Product kinds
type TermsConfig struct {
	Terms []string `json:"terms"`
}

type sum struct {
	terms []types.Evaluable
}

// Evaluate implements types.Evaluable
func (s *sum) Evaluate(params state.Values) (value.Scalar, error) {
	var total complex128
	for _, term := range s.terms {
		v, err := term.Evaluate(params)
		if err != nil {
			return 0, err
		}
		total += v.Complex()
	}
	return value.Scalar(total), nil
}

type product struct {
	terms []types.Evaluable
}

// Evaluate implements types.Evaluable
func (p *product) Evaluate(params state.Values) (value.Scalar, error) {
	total := complex128(1)
	for _, term := range p.terms {
		v, err := term.Evaluate(params)
		if err != nil {
			return 0, err
		}
		total *= v.Complex()
	}
	return value.Scalar(total), nil
}

func newSum(config interface{}, resolver extension.Resolver) (types.Evaluable, error) {
	cfg, ok := config.(*TermsConfig)
	if !ok {
		return nil, types.NewInvalidConfigError(config)
	}
	terms, err := resolveAll(resolver, cfg.Terms)
	if err != nil {
		return nil, err
	}
	return &sum{terms: terms}, nil
}

func newProduct(config interface{}, resolver extension.Resolver) (types.Evaluable, error) {
	cfg, ok := config.(*TermsConfig)
	if !ok {
		return nil, types.NewInvalidConfigError(config)
	}
	terms, err := resolveAll(resolver, cfg.Terms)
	if err != nil {
		return nil, err
	}
	return &product{terms: terms}, nil
}

// SourceConfig configures kinds with a single upstream reference
type SourceConfig struct {
	Source string `json:"source"`
}

type squaredModulus struct {
	source types.Evaluable
}

// Evaluate implements types.Evaluable
func (s *squaredModulus) Evaluate(params state.Values) (value.Scalar, error) {
	v, err := s.source.Evaluate(params)
	if err != nil {
		return 0, err
	}
	modulus := v.Abs()
	return value.Real(modulus * modulus), nil
}

func newSquaredModulus(config interface{}, resolver extension.Resolver) (types.Evaluable, error) {
	cfg, ok := config.(*SourceConfig)
	if !ok {
		return nil, types.NewInvalidConfigError(config)
	}
	source, err := resolve(resolver, cfg.Source)
	if err != nil {
		return nil, err
	}
	return &squaredModulus{source: source}, nil
}

func arithmeticKinds() []*extension.Kind {
	return []*extension.Kind{
		{
			Name:   "Scale",
			Config: x.NewType(reflect.TypeOf(ScaleConfig{})),
			New:    newScale,
		},
		{
			Name:   "Sum",
			Config: x.NewType(reflect.TypeOf(TermsConfig{})),
			New:    newSum,
		},
		{
			Name:   "Product",
			Config: x.NewType(reflect.TypeOf(TermsConfig{})),
			New:    newProduct,
		},
		{
			Name:   "SquaredModulus",
			Config: x.NewType(reflect.TypeOf(SourceConfig{})),
			New:    newSquaredModulus,
		},
	}
}
