package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ampmodel/model/value"
)

func TestParameters_Index(t *testing.T) {
	var params Parameters
	params.Add("mass", value.Real(0.77))
	params.Add("width", value.Real(0.15))
	params.Add("coupling", value.New(1, 0.5))

	index, err := params.Index()
	assert.Nil(t, err)
	assert.Equal(t, 3, len(index))
	assert.Equal(t, value.Real(0.15), index["width"].Value)

	values, err := params.Values()
	assert.Nil(t, err)
	assert.Equal(t, value.New(1, 0.5), values["coupling"])

	params.Add("mass", value.Real(1.0))
	_, err = params.Index()
	if assert.NotNil(t, err) {
		var duplicate *DuplicateNameError
		assert.ErrorAs(t, err, &duplicate)
		assert.Equal(t, "mass", duplicate.Name)
	}
	_, err = params.Values()
	assert.NotNil(t, err)
}

func TestPoints_Lookup(t *testing.T) {
	points := Points{
		{Name: "default"},
		{Name: "alternative", Parameters: Parameters{{Name: "mass", Value: value.Real(0.5)}}},
	}
	point, ok := points.Lookup("alternative")
	assert.True(t, ok)
	assert.Equal(t, "alternative", point.Name)

	_, ok = points.Lookup("missing")
	assert.False(t, ok)

	index, err := points.Index()
	assert.Nil(t, err)
	assert.Equal(t, 2, len(index))

	points = append(points, &ParameterPoint{Name: "default"})
	_, err = points.Index()
	assert.NotNil(t, err)
}
