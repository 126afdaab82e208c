package types

import "fmt"

// MissingDependencyError indicates a component spec referencing a name that
// is not present in the workspace yet; with the in-order, two-phase build
// this means the document violated the declared-before-used rule.
type MissingDependencyError struct {
	Spec       string
	Dependency string
}

// Error implements error
func (e *MissingDependencyError) Error() string {
	if e.Spec == "" {
		return fmt.Sprintf("missing dependency %q", e.Dependency)
	}
	return fmt.Sprintf("component %q references unknown dependency %q", e.Spec, e.Dependency)
}

// NewMissingDependencyError creates a missing dependency error
func NewMissingDependencyError(dependency string) *MissingDependencyError {
	return &MissingDependencyError{Dependency: dependency}
}

// NewUnknownParameterError creates an error for an evaluation context that
// lacks a required parameter
func NewUnknownParameterError(name string) error {
	return fmt.Errorf("unknown parameter %q", name)
}

// NewInvalidConfigError creates an error for a factory invoked with a
// configuration record of an unexpected type
func NewInvalidConfigError(config interface{}) error {
	return fmt.Errorf("invalid config %T", config)
}
