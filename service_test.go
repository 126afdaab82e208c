package ampmodel

import (
	"context"
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	_ "github.com/viant/afs/embed"

	"github.com/viant/ampmodel/extension"
	"github.com/viant/ampmodel/model"
	"github.com/viant/ampmodel/model/state"
	"github.com/viant/ampmodel/model/types"
	"github.com/viant/ampmodel/model/value"
	"github.com/viant/ampmodel/service/validator"
)

//go:embed testdata/*
var embedFS embed.FS

func newTestService(options ...Option) *Service {
	options = append([]Option{
		WithMetaBaseURL("embed:///testdata"),
		WithMetaFsOptions(&embedFS),
	}, options...)
	return New(options...)
}

func TestService_Run(t *testing.T) {
	srv := newTestService()
	results, err := srv.Run(context.Background(), "scale.json")
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, 3, len(results)) {
		return
	}
	assert.Equal(t, validator.TierExact, results[0].Tier)
	assert.Equal(t, value.Real(6), results[0].Computed)
	assert.Equal(t, validator.TierApproximate, results[1].Tier)
	assert.Equal(t, validator.TierMismatch, results[2].Tier)
}

func TestService_Run_Lineshape(t *testing.T) {
	srv := newTestService()
	results, err := srv.Run(context.Background(), "rho.json")
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, 2, len(results)) {
		return
	}
	for _, result := range results {
		assert.Equal(t, validator.TierExact, result.Tier, "%v@%v delta %v", result.Distribution, result.Point, result.Delta)
	}
}

func TestService_Populate_UnknownType(t *testing.T) {
	srv := newTestService()
	aModel := model.NewModel("broken").
		WithFunction(model.NewComponentSpec("f1", "Fancy"))
	_, err := srv.Populate(context.Background(), aModel)
	if !assert.NotNil(t, err) {
		return
	}
	assert.ErrorAs(t, err, new(*extension.UnknownTypeError))
}

func TestService_WithKinds(t *testing.T) {
	kind := &extension.Kind{
		Name: "Unit",
		New: func(_ interface{}, _ extension.Resolver) (types.Evaluable, error) {
			return types.EvaluableFunc(func(state.Values) (value.Scalar, error) {
				return value.Real(1), nil
			}), nil
		},
	}
	srv := newTestService(WithKinds(kind))

	aModel := model.NewModel("custom").
		WithFunction(model.NewComponentSpec("one", "Unit")).
		WithDistribution(model.NewComponentSpec("d1", "Scale").
			WithField("source", "one").
			WithField("factor", 4.0)).
		WithPoint(&state.ParameterPoint{Name: "nominal"}).
		WithChecksum("nominal", "d1", value.Real(4))

	ctx := context.Background()
	ws, err := srv.Populate(ctx, aModel)
	if !assert.Nil(t, err) {
		return
	}
	results, err := srv.Validate(ctx, ws, aModel)
	assert.Nil(t, err)
	if assert.Equal(t, 1, len(results)) {
		assert.Equal(t, validator.TierExact, results[0].Tier)
	}
}

func TestService_Populate_MissingDependency(t *testing.T) {
	srv := newTestService()
	aModel := model.NewModel("dangling").
		WithDistribution(model.NewComponentSpec("d1", "Scale").
			WithField("source", "ghost").
			WithField("factor", 2.0))
	_, err := srv.Populate(context.Background(), aModel)
	if !assert.NotNil(t, err) {
		return
	}
	var missing *types.MissingDependencyError
	if assert.ErrorAs(t, err, &missing) {
		assert.Equal(t, "d1", missing.Spec)
		assert.Equal(t, "ghost", missing.Dependency)
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.Nil(t, DefaultConfig().Validate())
	invalid := &Config{}
	assert.NotNil(t, invalid.Validate())
}
