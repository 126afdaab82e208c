package meta

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"

	"encoding/json"
)

// Service loads declarative documents from any location supported by the
// abstract file system (file, embed, mem, cloud schemes) and decodes them
// into the supplied target based on the location extension.
type Service struct {
	fs        afs.Service
	baseURL   string
	fsOptions []storage.Option
}

// Resolve expands ${env.KEY} expressions in the location and joins relative
// locations with the configured base URL
func (s *Service) Resolve(location string) string {
	location = expandEnvExpr(location)
	if s.baseURL == "" || strings.Contains(location, "://") || strings.HasPrefix(location, "/") {
		return location
	}
	return url.Join(s.baseURL, location)
}

// Load fetches the document at the given location and decodes it into
// target; .yaml/.yml decode as YAML, anything else as JSON
func (s *Service) Load(ctx context.Context, location string, target interface{}) error {
	location = s.Resolve(location)
	data, err := s.fs.DownloadWithURL(ctx, location, s.fsOptions...)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", location, err)
	}
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, target); err != nil {
			return fmt.Errorf("failed to decode %s: %w", location, err)
		}
	default:
		if err = json.Unmarshal(data, target); err != nil {
			return fmt.Errorf("failed to decode %s: %w", location, err)
		}
	}
	return nil
}

// New creates a new meta service; fsOptions are passed through to every
// storage operation (e.g. an embed.FS handle for the embed scheme)
func New(fs afs.Service, baseURL string, fsOptions ...storage.Option) *Service {
	return &Service{
		fs:        fs,
		baseURL:   baseURL,
		fsOptions: fsOptions,
	}
}
