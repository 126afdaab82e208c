package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ampmodel/model/value"
)

const modelJSON = `{
  "functions": [
    {"name": "rho770", "type": "BreitWigner", "mass": 0.7736, "width": 0.1491, "variable": "m2"},
    {"name": "norm", "type": "Const", "value": 2.0}
  ],
  "distributions": [
    {"name": "signal", "type": "Scale", "source": "rho770", "factor": 3.0},
    {"name": "intensity", "type": "SquaredModulus", "source": "signal"}
  ],
  "parameter_points": [
    {"name": "default", "parameters": [
      {"name": "m2", "value": 0.5},
      {"name": "coupling", "value": "1.2+3.4i"}
    ]}
  ],
  "misc": {
    "amplitude_model_checksums": [
      {"point": "default", "distribution": "intensity", "value": "0.695+0.564i"}
    ]
  }
}`

func TestModel_Decode(t *testing.T) {
	aModel := &Model{}
	err := json.Unmarshal([]byte(modelJSON), aModel)
	assert.Nil(t, err)

	assert.Equal(t, 2, len(aModel.Functions))
	assert.Equal(t, 2, len(aModel.Distributions))

	rho := aModel.LookupSpec("rho770")
	if assert.NotNil(t, rho) {
		assert.Equal(t, "BreitWigner", rho.Type)
		assert.Equal(t, 0.7736, rho.Fields["mass"])
		assert.Equal(t, "m2", rho.Fields["variable"])
	}

	point, ok := aModel.ParameterPoints.Lookup("default")
	if assert.True(t, ok) {
		values, err := point.Parameters.Values()
		assert.Nil(t, err)
		assert.Equal(t, value.Real(0.5), values["m2"])
		assert.Equal(t, value.New(1.2, 3.4), values["coupling"])
	}

	checksums := aModel.Checksums()
	if assert.Equal(t, 1, len(checksums)) {
		assert.Equal(t, "intensity", checksums[0].Distribution)
		assert.Equal(t, value.New(0.695, 0.564), checksums[0].Value)
	}
	assert.Empty(t, aModel.Validate())
}

func TestComponentSpec_RoundTrip(t *testing.T) {
	spec := NewComponentSpec("signal", "Scale").
		WithField("source", "rho770").
		WithField("factor", 3.0)

	data, err := json.Marshal(spec)
	assert.Nil(t, err)

	decoded := &ComponentSpec{}
	assert.Nil(t, json.Unmarshal(data, decoded))
	assert.Equal(t, spec.Name, decoded.Name)
	assert.Equal(t, spec.Type, decoded.Type)
	assert.Equal(t, "rho770", decoded.Fields["source"])
	assert.Equal(t, 3.0, decoded.Fields["factor"])
}

func TestModel_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		model  *Model
		expect int
	}{
		{
			name:   "empty model",
			model:  NewModel("empty"),
			expect: 0,
		},
		{
			name: "duplicate component name",
			model: NewModel("dup").
				WithFunction(NewComponentSpec("f1", "Const")).
				WithDistribution(NewComponentSpec("f1", "Scale")),
			expect: 1,
		},
		{
			name: "empty type",
			model: NewModel("notype").
				WithFunction(NewComponentSpec("f1", "")),
			expect: 1,
		},
		{
			name: "checksum without references",
			model: func() *Model {
				m := NewModel("bad")
				m.WithChecksum("", "", value.Real(1))
				return m
			}(),
			expect: 2,
		},
	}
	for _, testCase := range testCases {
		issues := testCase.model.Validate()
		assert.Equal(t, testCase.expect, len(issues), testCase.name)
	}
}
