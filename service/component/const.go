package component

import (
	"reflect"

	"github.com/viant/x"

	"github.com/viant/ampmodel/extension"
	"github.com/viant/ampmodel/model/state"
	"github.com/viant/ampmodel/model/types"
	"github.com/viant/ampmodel/model/value"
)

// ConstConfig configures the Const kind
type ConstConfig struct {
	Value interface{} `json:"value"`
}

type constant struct {
	value value.Scalar
}

// Evaluate implements types.Evaluable
func (c *constant) Evaluate(state.Values) (value.Scalar, error) {
	return c.value, nil
}

func newConst(config interface{}, _ extension.Resolver) (types.Evaluable, error) {
	cfg, ok := config.(*ConstConfig)
	if !ok {
		return nil, types.NewInvalidConfigError(config)
	}
	v, err := value.Coerce(cfg.Value)
	if err != nil {
		return nil, err
	}
	return &constant{value: v}, nil
}

// ParameterConfig configures the Parameter kind
type ParameterConfig struct {
	Parameter string      `json:"parameter"`
	Default   interface{} `json:"default,omitempty"`
}

type parameter struct {
	name     string
	fallback *value.Scalar
}

// Evaluate implements types.Evaluable
func (p *parameter) Evaluate(params state.Values) (value.Scalar, error) {
	if v, ok := params[p.name]; ok {
		return v, nil
	}
	if p.fallback != nil {
		return *p.fallback, nil
	}
	return 0, types.NewUnknownParameterError(p.name)
}

func newParameter(config interface{}, _ extension.Resolver) (types.Evaluable, error) {
	cfg, ok := config.(*ParameterConfig)
	if !ok {
		return nil, types.NewInvalidConfigError(config)
	}
	result := &parameter{name: cfg.Parameter}
	if cfg.Default != nil {
		fallback, err := value.Coerce(cfg.Default)
		if err != nil {
			return nil, err
		}
		result.fallback = &fallback
	}
	return result, nil
}

func constKinds() []*extension.Kind {
	return []*extension.Kind{
		{
			Name:   "Const",
			Config: x.NewType(reflect.TypeOf(ConstConfig{})),
			New:    newConst,
		},
		{
			Name:   "Parameter",
			Config: x.NewType(reflect.TypeOf(ParameterConfig{})),
			New:    newParameter,
		},
	}
}
