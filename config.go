package ampmodel

import (
	"fmt"

	"github.com/viant/ampmodel/service/validator"
)

// Config is a serialisable representation of the service configuration. It
// can be populated from JSON or YAML; the zero-value is useful - all nested
// fields inherit their package defaults.
type Config struct {
	Validator validator.Config `json:"validator" yaml:"validator"`
}

// DefaultConfig returns a Config populated with the package defaults
func DefaultConfig() *Config {
	return &Config{
		Validator: validator.DefaultConfig(),
	}
}

// Validate returns an error describing invalid settings or nil
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if err := c.Validator.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
