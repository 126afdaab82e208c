package model

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/viant/ampmodel/internal/yml"
)

// ComponentSpec is one serialized record describing a single function or
// distribution. Beyond the common name and type tag every kind carries its
// own fields; those are captured verbatim in Fields and converted to the
// kind's typed configuration at build time.
type ComponentSpec struct {
	Name   string                 `json:"name" yaml:"name"`
	Type   string                 `json:"type" yaml:"type"`
	Fields map[string]interface{} `json:"-" yaml:"-"`
}

// UnmarshalJSON captures name and type and keeps the remaining fields
func (s *ComponentSpec) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.fromMap(raw)
	return nil
}

// MarshalJSON merges the kind-specific fields back into a flat record
func (s *ComponentSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.asMap())
}

// UnmarshalYAML mirrors the JSON decoding
func (s *ComponentSpec) UnmarshalYAML(node *yaml.Node) error {
	raw, ok := (*yml.Node)(node).Interface().(map[string]interface{})
	if !ok {
		return fmt.Errorf("expected a mapping, had %v", node.Kind)
	}
	s.fromMap(raw)
	return nil
}

// MarshalYAML mirrors the JSON encoding
func (s *ComponentSpec) MarshalYAML() (interface{}, error) {
	return s.asMap(), nil
}

func (s *ComponentSpec) fromMap(raw map[string]interface{}) {
	s.Fields = make(map[string]interface{}, len(raw))
	for key, aValue := range raw {
		switch key {
		case "name":
			if text, ok := aValue.(string); ok {
				s.Name = text
				continue
			}
		case "type":
			if text, ok := aValue.(string); ok {
				s.Type = text
				continue
			}
		}
		s.Fields[key] = aValue
	}
}

func (s *ComponentSpec) asMap() map[string]interface{} {
	result := make(map[string]interface{}, len(s.Fields)+2)
	for key, aValue := range s.Fields {
		result[key] = aValue
	}
	result["name"] = s.Name
	result["type"] = s.Type
	return result
}

// WithField sets a kind-specific field
func (s *ComponentSpec) WithField(name string, aValue interface{}) *ComponentSpec {
	if s.Fields == nil {
		s.Fields = make(map[string]interface{})
	}
	s.Fields[name] = aValue
	return s
}

// NewComponentSpec creates a component spec with the given name and type
func NewComponentSpec(name, kind string) *ComponentSpec {
	return &ComponentSpec{Name: name, Type: kind, Fields: make(map[string]interface{})}
}
