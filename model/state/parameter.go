package state

import (
	"fmt"

	"github.com/viant/ampmodel/model/value"
)

// Parameter represents a named numeric value
type Parameter struct {
	Name  string       `json:"name" yaml:"name"`
	Value value.Scalar `json:"value" yaml:"value"`
}

// Parameters is a collection of named values
type Parameters []*Parameter

// Values is a flattened evaluation context: parameter name to numeric value
type Values map[string]value.Scalar

// DuplicateNameError indicates two records sharing a name where uniqueness
// is required
type DuplicateNameError struct {
	Name string
}

// Error implements error
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate name %q", e.Name)
}

// NewDuplicateNameError creates a duplicate name error
func NewDuplicateNameError(name string) *DuplicateNameError {
	return &DuplicateNameError{Name: name}
}

// Add appends a parameter to the collection
func (p *Parameters) Add(name string, aValue value.Scalar) {
	*p = append(*p, &Parameter{Name: name, Value: aValue})
}

// Get retrieves a parameter by name
func (p Parameters) Get(name string) (*Parameter, bool) {
	for _, param := range p {
		if param.Name == name {
			return param, true
		}
	}
	return nil, false
}

// Index produces a name to record mapping; duplicates fail with
// DuplicateNameError rather than silently shadowing earlier entries.
func (p Parameters) Index() (map[string]*Parameter, error) {
	result := make(map[string]*Parameter, len(p))
	for _, param := range p {
		if _, ok := result[param.Name]; ok {
			return nil, NewDuplicateNameError(param.Name)
		}
		result[param.Name] = param
	}
	return result, nil
}

// Values projects the collection to a name to value mapping usable directly
// as an evaluation context; duplicate handling matches Index.
func (p Parameters) Values() (Values, error) {
	result := make(Values, len(p))
	for _, param := range p {
		if _, ok := result[param.Name]; ok {
			return nil, NewDuplicateNameError(param.Name)
		}
		result[param.Name] = param.Value
	}
	return result, nil
}
