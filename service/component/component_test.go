package component

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/ampmodel/extension"
	"github.com/viant/ampmodel/model/state"
	"github.com/viant/ampmodel/model/types"
	"github.com/viant/ampmodel/model/value"
)

// mapResolver is a minimal extension.Resolver for tests
type mapResolver map[string]types.Evaluable

func (m mapResolver) Lookup(name string) (types.Evaluable, bool) {
	component, ok := m[name]
	return component, ok
}

func TestConst(t *testing.T) {
	built, err := newConst(&ConstConfig{Value: 2.0}, nil)
	assert.Nil(t, err)
	actual, err := built.Evaluate(nil)
	assert.Nil(t, err)
	assert.Equal(t, value.Real(2), actual)

	built, err = newConst(&ConstConfig{Value: "1+2i"}, nil)
	assert.Nil(t, err)
	actual, err = built.Evaluate(nil)
	assert.Nil(t, err)
	assert.Equal(t, value.New(1, 2), actual)

	_, err = newConst(&ConstConfig{}, nil)
	assert.NotNil(t, err)
}

func TestParameter(t *testing.T) {
	built, err := newParameter(&ParameterConfig{Parameter: "mass"}, nil)
	assert.Nil(t, err)

	actual, err := built.Evaluate(state.Values{"mass": value.Real(0.77)})
	assert.Nil(t, err)
	assert.Equal(t, value.Real(0.77), actual)

	_, err = built.Evaluate(state.Values{})
	assert.NotNil(t, err)

	withDefault, err := newParameter(&ParameterConfig{Parameter: "mass", Default: 1.0}, nil)
	assert.Nil(t, err)
	actual, err = withDefault.Evaluate(state.Values{})
	assert.Nil(t, err)
	assert.Equal(t, value.Real(1), actual)
}

func TestScale(t *testing.T) {
	source, _ := newConst(&ConstConfig{Value: 2.0}, nil)
	resolver := mapResolver{"f1": source}

	built, err := newScale(&ScaleConfig{Source: "f1", Factor: 3.0}, resolver)
	assert.Nil(t, err)
	actual, err := built.Evaluate(nil)
	assert.Nil(t, err)
	assert.Equal(t, value.Real(6), actual)

	_, err = newScale(&ScaleConfig{Source: "missing", Factor: 3.0}, resolver)
	if assert.NotNil(t, err) {
		var missing *types.MissingDependencyError
		assert.ErrorAs(t, err, &missing)
		assert.Equal(t, "missing", missing.Dependency)
	}
}

func TestSumAndProduct(t *testing.T) {
	two, _ := newConst(&ConstConfig{Value: 2.0}, nil)
	three, _ := newConst(&ConstConfig{Value: 3.0}, nil)
	resolver := mapResolver{"two": two, "three": three}

	built, err := newSum(&TermsConfig{Terms: []string{"two", "three"}}, resolver)
	assert.Nil(t, err)
	actual, err := built.Evaluate(nil)
	assert.Nil(t, err)
	assert.Equal(t, value.Real(5), actual)

	built, err = newProduct(&TermsConfig{Terms: []string{"two", "three"}}, resolver)
	assert.Nil(t, err)
	actual, err = built.Evaluate(nil)
	assert.Nil(t, err)
	assert.Equal(t, value.Real(6), actual)
}

func TestSquaredModulus(t *testing.T) {
	source, _ := newConst(&ConstConfig{Value: "3+4i"}, nil)
	resolver := mapResolver{"amp": source}

	built, err := newSquaredModulus(&SourceConfig{Source: "amp"}, resolver)
	assert.Nil(t, err)
	actual, err := built.Evaluate(nil)
	assert.Nil(t, err)
	assert.InDelta(t, 25.0, actual.Real(), 1e-12)
	assert.True(t, actual.IsReal())
}

func TestComplexAmplitude(t *testing.T) {
	built, err := newComplexAmplitude(&ComplexAmplitudeConfig{Magnitude: "mag", Phase: "phi"}, nil)
	assert.Nil(t, err)

	params := state.Values{
		"mag": value.Real(2),
		"phi": value.Real(math.Pi / 2),
	}
	actual, err := built.Evaluate(params)
	assert.Nil(t, err)
	assert.InDelta(t, 0, actual.Real(), 1e-12)
	assert.InDelta(t, 2, actual.Imag(), 1e-12)

	_, err = built.Evaluate(state.Values{"mag": value.Real(2)})
	assert.NotNil(t, err)
}

func TestCoherentSum(t *testing.T) {
	one, _ := newConst(&ConstConfig{Value: 1.0}, nil)
	i, _ := newConst(&ConstConfig{Value: "1i"}, nil)
	resolver := mapResolver{"a1": one, "a2": i}

	built, err := newCoherentSum(&CoherentSumConfig{
		Terms:        []string{"a1", "a2"},
		Coefficients: []string{"c1", "c2"},
	}, resolver)
	assert.Nil(t, err)

	params := state.Values{
		"c1": value.Real(2),
		"c2": value.New(0, 1),
	}
	actual, err := built.Evaluate(params)
	assert.Nil(t, err)
	// 2*1 + i*i = 2 - 1
	assert.InDelta(t, 1, actual.Real(), 1e-12)
	assert.InDelta(t, 0, actual.Imag(), 1e-12)

	_, err = newCoherentSum(&CoherentSumConfig{
		Terms:        []string{"a1", "a2"},
		Coefficients: []string{"c1"},
	}, resolver)
	assert.NotNil(t, err)
}

func TestBreitWigner(t *testing.T) {
	built, err := newBreitWigner(&BreitWignerConfig{Mass: 0.7736, Width: 0.1491, Variable: "m2"}, nil)
	assert.Nil(t, err)

	actual, err := built.Evaluate(state.Values{"m2": value.Real(0.6)})
	assert.Nil(t, err)

	// 1 / (m^2 - s - i*m*width)
	m2 := 0.7736 * 0.7736
	denominator := complex(m2-0.6, -0.7736*0.1491)
	expect := 1 / denominator
	assert.InDelta(t, real(expect), actual.Real(), 1e-12)
	assert.InDelta(t, imag(expect), actual.Imag(), 1e-12)

	_, err = built.Evaluate(state.Values{})
	assert.NotNil(t, err)

	_, err = newBreitWigner(&BreitWignerConfig{Mass: 0, Width: 0.1}, nil)
	assert.NotNil(t, err)
}

func TestBlattWeisskopf(t *testing.T) {
	testCases := []struct {
		name   string
		l      int
		q2     float64
		expect float64
	}{
		{name: "l0", l: 0, q2: 0.04, expect: 1},
		{name: "l1", l: 1, q2: 0.04, expect: math.Sqrt(2 * 0.09 / 1.09)},
		{name: "l2", l: 2, q2: 0.04, expect: math.Sqrt(13 * 0.09 * 0.09 / ((0.09-3)*(0.09-3) + 9*0.09))},
	}
	for _, testCase := range testCases {
		built, err := newBlattWeisskopf(&BlattWeisskopfConfig{Radius: 1.5, L: testCase.l, Variable: "q2"}, nil)
		if !assert.Nil(t, err, testCase.name) {
			continue
		}
		actual, err := built.Evaluate(state.Values{"q2": value.Real(testCase.q2)})
		assert.Nil(t, err, testCase.name)
		assert.InDelta(t, testCase.expect, actual.Real(), 1e-12, testCase.name)
	}

	_, err := newBlattWeisskopf(&BlattWeisskopfConfig{Radius: 1.5, L: 3}, nil)
	assert.NotNil(t, err)
}

func TestRegister(t *testing.T) {
	registry := extension.NewTypes()
	Register(registry)
	assert.Equal(t, []string{
		"BlattWeisskopf",
		"BreitWigner",
		"CoherentSum",
		"ComplexAmplitude",
		"Const",
		"Parameter",
		"Product",
		"Scale",
		"SquaredModulus",
		"Sum",
	}, registry.Kinds())
}
