package ampmodel

import (
	"github.com/viant/afs/storage"

	"github.com/viant/ampmodel/extension"
	"github.com/viant/ampmodel/service/dao/document"
	"github.com/viant/ampmodel/service/meta"
)

// Option customizes the service
type Option func(s *Service)

// WithMetaService sets the meta service
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) {
		s.metaService = service
	}
}

// WithMetaBaseURL sets the base URL model locations are resolved against
func WithMetaBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.metaBaseURL = baseURL
	}
}

// WithMetaFsOptions sets the storage options passed to every meta service
// operation (e.g. an embed.FS handle for the embed scheme)
func WithMetaFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.metaFsOptions = options
	}
}

// WithDocumentService sets the model document service
func WithDocumentService(service *document.Service) Option {
	return func(s *Service) {
		s.documents = service
	}
}

// WithKinds registers additional component kinds on top of the built-ins; a
// kind sharing a built-in name shadows it
func WithKinds(kinds ...*extension.Kind) Option {
	return func(s *Service) {
		s.kinds = append(s.kinds, kinds...)
	}
}

// WithConfig sets the whole service configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithValidatorWorkers sets the number of checkpoint evaluation workers
func WithValidatorWorkers(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.config.Validator.WorkerCount = count
		}
	}
}

// WithOverwrite restores last-write-wins workspace registration for legacy
// documents with duplicate component names
func WithOverwrite(flag bool) Option {
	return func(s *Service) {
		s.overwrite = flag
	}
}
