// Package builder turns component specs into live evaluable objects. The
// service resolves the spec's type tag against the component kind registry,
// converts the kind-specific fields into the kind's typed configuration and
// invokes the factory with a read-only view of the workspace built so far.
package builder

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/viant/structology/conv"

	"github.com/viant/ampmodel/extension"
	"github.com/viant/ampmodel/model"
	"github.com/viant/ampmodel/model/types"
	"github.com/viant/ampmodel/runtime/workspace"
	"github.com/viant/ampmodel/tracing"
)

// Option customizes the builder service
type Option func(*Service)

// WithOverwrite restores last-write-wins workspace registration for legacy
// documents
func WithOverwrite(flag bool) Option {
	return func(s *Service) {
		s.overwrite = flag
	}
}

// Service builds components and populates workspaces
type Service struct {
	types     *extension.Types
	converter *conv.Converter
	overwrite bool
}

// Build constructs a single component from its spec. The call has no side
// effect on the workspace; registering the result under spec.Name is the
// caller's responsibility, which keeps rebuilding idempotent.
func (s *Service) Build(spec *model.ComponentSpec, ws *workspace.Workspace) (types.Evaluable, error) {
	kind, err := s.types.Lookup(spec.Type)
	if err != nil {
		return nil, err
	}
	config, err := s.typedConfig(kind, spec)
	if err != nil {
		return nil, fmt.Errorf("invalid config for component %q: %w", spec.Name, err)
	}
	component, err := kind.New(config, ws)
	if err != nil {
		var missing *types.MissingDependencyError
		if errors.As(err, &missing) && missing.Spec == "" {
			missing.Spec = spec.Name
		}
		return nil, err
	}
	return component, nil
}

// Populate builds a workspace from the document in two in-order phases:
// all functions first, then all distributions. Document order is the only
// dependency order - a spec may reference only names built strictly before
// it, and a cyclic reference surfaces as a missing dependency on the first
// offending spec. Any construction error aborts the whole population.
func (s *Service) Populate(ctx context.Context, aModel *model.Model) (*workspace.Workspace, error) {
	_, span := tracing.StartSpan(ctx, "builder.Populate", "INTERNAL")
	var err error
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]string{"model.name": aModel.Name})

	ws := workspace.New(workspace.WithOverwrite(s.overwrite))
	for _, spec := range aModel.Functions {
		if err = s.buildInto(spec, ws); err != nil {
			err = fmt.Errorf("failed to build function %q: %w", spec.Name, err)
			return nil, err
		}
	}
	for _, spec := range aModel.Distributions {
		if err = s.buildInto(spec, ws); err != nil {
			err = fmt.Errorf("failed to build distribution %q: %w", spec.Name, err)
			return nil, err
		}
	}
	return ws, nil
}

func (s *Service) buildInto(spec *model.ComponentSpec, ws *workspace.Workspace) error {
	component, err := s.Build(spec, ws)
	if err != nil {
		return err
	}
	return ws.Register(spec.Name, component)
}

// typedConfig converts the spec's loose fields into the kind's
// configuration record
func (s *Service) typedConfig(kind *extension.Kind, spec *model.ComponentSpec) (interface{}, error) {
	if kind.Config == nil {
		return nil, nil
	}
	instance := newInstancePtr(kind.Config.Type)
	if err := s.converter.Convert(spec.Fields, instance); err != nil {
		return nil, err
	}
	return instance, nil
}

// newInstancePtr creates a new instance pointer of the given type
func newInstancePtr(t reflect.Type) interface{} {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return reflect.New(t).Interface()
}

// New creates a new builder service
func New(registry *extension.Types, options ...Option) *Service {
	converterOptions := conv.DefaultOptions()
	converterOptions.ClonePointerData = true
	converterOptions.IgnoreUnmapped = true
	converterOptions.AccessUnexported = true

	s := &Service{
		types:     registry,
		converter: conv.NewConverter(converterOptions),
	}
	for _, option := range options {
		option(s)
	}
	return s
}
