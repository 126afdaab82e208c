package component

import (
	"fmt"
	"math"
	"reflect"

	"github.com/viant/x"

	"github.com/viant/ampmodel/extension"
	"github.com/viant/ampmodel/model/state"
	"github.com/viant/ampmodel/model/types"
	"github.com/viant/ampmodel/model/value"
)

// BreitWignerConfig configures the BreitWigner kind; variable names the
// context parameter supplying the invariant mass squared
type BreitWignerConfig struct {
	Mass     float64 `json:"mass"`
	Width    float64 `json:"width"`
	Variable string  `json:"variable"`
}

type breitWigner struct {
	mass     float64
	width    float64
	variable string
}

// Evaluate implements types.Evaluable; the amplitude is
// 1 / (m^2 - s - i*m*Gamma)
func (b *breitWigner) Evaluate(params state.Values) (value.Scalar, error) {
	s, ok := params[b.variable]
	if !ok {
		return 0, types.NewUnknownParameterError(b.variable)
	}
	denominator := complex(b.mass*b.mass-s.Real(), -b.mass*b.width)
	return value.Scalar(1 / denominator), nil
}

func newBreitWigner(config interface{}, _ extension.Resolver) (types.Evaluable, error) {
	cfg, ok := config.(*BreitWignerConfig)
	if !ok {
		return nil, types.NewInvalidConfigError(config)
	}
	if cfg.Mass <= 0 || cfg.Width <= 0 {
		return nil, fmt.Errorf("breit-wigner requires positive mass and width, had mass: %v, width: %v", cfg.Mass, cfg.Width)
	}
	return &breitWigner{mass: cfg.Mass, width: cfg.Width, variable: cfg.Variable}, nil
}

// BlattWeisskopfConfig configures the BlattWeisskopf barrier-factor kind;
// variable names the context parameter supplying the break-up momentum
// squared
type BlattWeisskopfConfig struct {
	Radius   float64 `json:"radius"`
	L        int     `json:"l"`
	Variable string  `json:"variable"`
}

type blattWeisskopf struct {
	radius   float64
	l        int
	variable string
}

// Evaluate implements types.Evaluable
func (b *blattWeisskopf) Evaluate(params state.Values) (value.Scalar, error) {
	q2, ok := params[b.variable]
	if !ok {
		return 0, types.NewUnknownParameterError(b.variable)
	}
	z := q2.Real() * b.radius * b.radius
	switch b.l {
	case 0:
		return value.Real(1), nil
	case 1:
		return value.Real(math.Sqrt(2 * z / (1 + z))), nil
	default: // l == 2
		return value.Real(math.Sqrt(13 * z * z / ((z-3)*(z-3) + 9*z))), nil
	}
}

func newBlattWeisskopf(config interface{}, _ extension.Resolver) (types.Evaluable, error) {
	cfg, ok := config.(*BlattWeisskopfConfig)
	if !ok {
		return nil, types.NewInvalidConfigError(config)
	}
	if cfg.L < 0 || cfg.L > 2 {
		return nil, fmt.Errorf("unsupported angular momentum %v, expected 0..2", cfg.L)
	}
	if cfg.Radius <= 0 {
		return nil, fmt.Errorf("blatt-weisskopf requires positive radius, had: %v", cfg.Radius)
	}
	return &blattWeisskopf{radius: cfg.Radius, l: cfg.L, variable: cfg.Variable}, nil
}

func lineshapeKinds() []*extension.Kind {
	return []*extension.Kind{
		{
			Name:   "BreitWigner",
			Config: x.NewType(reflect.TypeOf(BreitWignerConfig{})),
			New:    newBreitWigner,
		},
		{
			Name:   "BlattWeisskopf",
			Config: x.NewType(reflect.TypeOf(BlattWeisskopfConfig{})),
			New:    newBlattWeisskopf,
		},
	}
}
