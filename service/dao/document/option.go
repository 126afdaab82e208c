package document

import "github.com/viant/ampmodel/service/meta"

type Option func(*Service)

// WithMetaService sets the meta service
func WithMetaService(metaService *meta.Service) Option {
	return func(s *Service) {
		s.metaService = metaService
	}
}
