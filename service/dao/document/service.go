package document

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/viant/ampmodel/model"
	"github.com/viant/ampmodel/service/meta"
)

// Service loads serialized model documents, caching decoded models by
// location so that repeated populate/validate cycles do not re-fetch them.
type Service struct {
	metaService *meta.Service
	mux         sync.RWMutex
	cache       map[string]*model.Model
}

// DecodeJSON decodes a model document from JSON
func (s *Service) DecodeJSON(encoded []byte) (*model.Model, error) {
	aModel := &model.Model{}
	if err := json.Unmarshal(encoded, aModel); err != nil {
		return nil, err
	}
	return s.finalize("", aModel)
}

// DecodeYAML decodes a model document from YAML
func (s *Service) DecodeYAML(encoded []byte) (*model.Model, error) {
	aModel := &model.Model{}
	if err := yaml.Unmarshal(encoded, aModel); err != nil {
		return nil, err
	}
	return s.finalize("", aModel)
}

// Load loads a model document from the specified location; locations
// without an extension default to .json
func (s *Service) Load(ctx context.Context, location string) (*model.Model, error) {
	if filepath.Ext(location) == "" {
		location += ".json"
	}
	s.mux.RLock()
	cached, ok := s.cache[location]
	s.mux.RUnlock()
	if ok {
		return cached, nil
	}

	aModel := &model.Model{}
	if err := s.metaService.Load(ctx, location, aModel); err != nil {
		return nil, fmt.Errorf("failed to load model from %s: %w", location, err)
	}
	result, err := s.finalize(location, aModel)
	if err != nil {
		return nil, err
	}
	s.mux.Lock()
	s.cache[location] = result
	s.mux.Unlock()
	return result, nil
}

// Refresh discards any cached model decoded from the given location; the
// next Load fetches it again
func (s *Service) Refresh(location string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	delete(s.cache, location)
}

// Upsert stores the supplied model in the cache under the given location,
// making it immediately available to subsequent Load calls
func (s *Service) Upsert(location string, aModel *model.Model) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.cache[location] = aModel
}

// finalize assigns source metadata and runs structural validation
func (s *Service) finalize(location string, aModel *model.Model) (*model.Model, error) {
	if location != "" {
		aModel.Source = &model.Source{URL: location}
		if aModel.Name == "" {
			aModel.Name = modelNameFromLocation(location)
		}
	}
	if issues := aModel.Validate(); len(issues) > 0 {
		return nil, fmt.Errorf("invalid model %s: %w", aModel.Name, issues[0])
	}
	return aModel, nil
}

// modelNameFromLocation extracts the model name from a location (file name
// without extension)
func modelNameFromLocation(location string) string {
	base := filepath.Base(location)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// New creates a new model document service
func New(options ...Option) *Service {
	ret := &Service{
		cache: make(map[string]*model.Model),
	}
	for _, option := range options {
		option(ret)
	}
	if ret.metaService == nil {
		ret.metaService = meta.New(afs.New(), "")
	}
	return ret
}
