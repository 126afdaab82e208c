package ampmodel

import (
	"context"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"

	"github.com/viant/ampmodel/extension"
	"github.com/viant/ampmodel/model"
	"github.com/viant/ampmodel/runtime/workspace"
	"github.com/viant/ampmodel/service/builder"
	"github.com/viant/ampmodel/service/component"
	"github.com/viant/ampmodel/service/dao/document"
	"github.com/viant/ampmodel/service/meta"
	"github.com/viant/ampmodel/service/validator"
)

// Service is the high-level façade over the model pipeline: it loads
// serialized model documents, populates workspaces with built components and
// validates them against the reference checksums carried by the document.
type Service struct {
	config        *Config
	metaService   *meta.Service
	documents     *document.Service
	types         *extension.Types
	builder       *builder.Service
	validator     *validator.Service
	kinds         []*extension.Kind
	metaBaseURL   string
	metaFsOptions []storage.Option
	overwrite     bool
}

func (s *Service) init(options []Option) {
	s.config = DefaultConfig()
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	s.types = extension.NewTypes()
	component.Register(s.types)
	for _, kind := range s.kinds {
		s.types.Register(kind)
	}
	s.builder = builder.New(s.types, builder.WithOverwrite(s.overwrite))
	s.validator = validator.New(validator.WithConfig(s.config.Validator))
}

func (s *Service) ensureBaseSetup() {
	if s.metaService == nil {
		s.metaService = meta.New(afs.New(), s.metaBaseURL, s.metaFsOptions...)
	}
	if s.documents == nil {
		s.documents = document.New(document.WithMetaService(s.metaService))
	}
}

// Types returns the component kind registry
func (s *Service) Types() *extension.Types {
	return s.types
}

// RegisterKinds adds component kinds after construction
func (s *Service) RegisterKinds(kinds ...*extension.Kind) {
	for i := range kinds {
		s.types.Register(kinds[i])
	}
}

// LoadModel loads a model document from the given location
func (s *Service) LoadModel(ctx context.Context, location string) (*model.Model, error) {
	return s.documents.Load(ctx, location)
}

// Populate builds a workspace from the model document
func (s *Service) Populate(ctx context.Context, aModel *model.Model) (*workspace.Workspace, error) {
	return s.builder.Populate(ctx, aModel)
}

// Validate evaluates the model's checksums against the workspace and returns
// one result per checkpoint, in document order
func (s *Service) Validate(ctx context.Context, ws *workspace.Workspace, aModel *model.Model) ([]*validator.Result, error) {
	return s.validator.Validate(ctx, ws, aModel.Checksums(), aModel.ParameterPoints)
}

// Run loads the model at the given location, populates a workspace from it
// and validates every checksum
func (s *Service) Run(ctx context.Context, location string) ([]*validator.Result, error) {
	aModel, err := s.LoadModel(ctx, location)
	if err != nil {
		return nil, err
	}
	ws, err := s.Populate(ctx, aModel)
	if err != nil {
		return nil, err
	}
	return s.Validate(ctx, ws, aModel)
}

// New creates a new service
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}
