package model

import (
	"fmt"

	"github.com/viant/ampmodel/model/state"
	"github.com/viant/ampmodel/model/value"
)

// Model is the root of a deserialized amplitude model document. Field names
// are part of the external wire contract and must match serialized model
// files exactly.
type Model struct {

	// Source provides information about the origin of the model
	Source *Source `json:"source,omitempty" yaml:"source,omitempty"`

	// Name is the model identifier, derived from the source location when
	// the document does not carry one
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Functions are leaf computational units (lineshapes, form factors)
	Functions []*ComponentSpec `json:"functions,omitempty" yaml:"functions,omitempty"`

	// Distributions are composite evaluable quantities; they may reference
	// functions and earlier distributions by name
	Distributions []*ComponentSpec `json:"distributions,omitempty" yaml:"distributions,omitempty"`

	// ParameterPoints are the named points at which checksums were recorded
	ParameterPoints state.Points `json:"parameter_points,omitempty" yaml:"parameter_points,omitempty"`

	// Misc carries auxiliary sections, notably the reference checksums
	Misc *Misc `json:"misc,omitempty" yaml:"misc,omitempty"`
}

// Misc groups the auxiliary document sections
type Misc struct {
	Checksums Checkpoints `json:"amplitude_model_checksums,omitempty" yaml:"amplitude_model_checksums,omitempty"`
}

// Checkpoint pairs a parameter point and a distribution with the reference
// value recorded when the model was serialized
type Checkpoint struct {
	Point        string       `json:"point" yaml:"point"`
	Distribution string       `json:"distribution" yaml:"distribution"`
	Value        value.Scalar `json:"value" yaml:"value"`
}

// Checkpoints is a collection of validation fixtures
type Checkpoints []*Checkpoint

// Source describes where a model document was loaded from
type Source struct {
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Checksums returns the checkpoint list, nil-safe
func (m *Model) Checksums() Checkpoints {
	if m.Misc == nil {
		return nil
	}
	return m.Misc.Checksums
}

// Specs returns functions followed by distributions in document order
func (m *Model) Specs() []*ComponentSpec {
	result := make([]*ComponentSpec, 0, len(m.Functions)+len(m.Distributions))
	result = append(result, m.Functions...)
	result = append(result, m.Distributions...)
	return result
}

// LookupSpec retrieves a function or distribution by name
func (m *Model) LookupSpec(name string) *ComponentSpec {
	for _, spec := range m.Specs() {
		if spec.Name == name {
			return spec
		}
	}
	return nil
}

// Validate performs a best-effort structural validation of the document.
// The returned slice is empty when the document is sound; otherwise it
// contains human-readable error descriptions. Reference integrity of
// checkpoints is deliberately not checked here - checkpoints are
// independent fixtures and a broken one surfaces as a per-row validation
// result rather than a load failure.
func (m *Model) Validate() []error {
	var issues []error

	seen := map[string]bool{}
	for _, spec := range m.Specs() {
		if spec.Name == "" {
			issues = append(issues, fmt.Errorf("component with type %q has empty name", spec.Type))
			continue
		}
		if spec.Type == "" {
			issues = append(issues, fmt.Errorf("component %q has empty type", spec.Name))
		}
		if seen[spec.Name] {
			issues = append(issues, fmt.Errorf("duplicate component name %q", spec.Name))
		}
		seen[spec.Name] = true
	}

	points := map[string]bool{}
	for _, point := range m.ParameterPoints {
		if point.Name == "" {
			issues = append(issues, fmt.Errorf("parameter point has empty name"))
			continue
		}
		if points[point.Name] {
			issues = append(issues, fmt.Errorf("duplicate parameter point %q", point.Name))
		}
		points[point.Name] = true
		if _, err := point.Parameters.Index(); err != nil {
			issues = append(issues, fmt.Errorf("parameter point %q: %w", point.Name, err))
		}
	}

	for i, checkpoint := range m.Checksums() {
		if checkpoint.Distribution == "" {
			issues = append(issues, fmt.Errorf("checksum %v has empty distribution", i))
		}
		if checkpoint.Point == "" {
			issues = append(issues, fmt.Errorf("checksum %v has empty point", i))
		}
	}

	return issues
}

// NewModel creates a new model with the given name
func NewModel(name string) *Model {
	return &Model{Name: name}
}

// WithFunction appends a function spec
func (m *Model) WithFunction(spec *ComponentSpec) *Model {
	m.Functions = append(m.Functions, spec)
	return m
}

// WithDistribution appends a distribution spec
func (m *Model) WithDistribution(spec *ComponentSpec) *Model {
	m.Distributions = append(m.Distributions, spec)
	return m
}

// WithPoint appends a parameter point
func (m *Model) WithPoint(point *state.ParameterPoint) *Model {
	m.ParameterPoints = append(m.ParameterPoints, point)
	return m
}

// WithChecksum appends a reference checkpoint
func (m *Model) WithChecksum(point, distribution string, reference value.Scalar) *Model {
	if m.Misc == nil {
		m.Misc = &Misc{}
	}
	m.Misc.Checksums = append(m.Misc.Checksums, &Checkpoint{
		Point:        point,
		Distribution: distribution,
		Value:        reference,
	})
	return m
}
