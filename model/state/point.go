package state

// ParameterPoint is a named, read-only set of parameter values at which
// distributions are evaluated
type ParameterPoint struct {
	Name       string     `json:"name" yaml:"name"`
	Parameters Parameters `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Points is a collection of parameter points
type Points []*ParameterPoint

// Lookup retrieves a point by name
func (p Points) Lookup(name string) (*ParameterPoint, bool) {
	for _, point := range p {
		if point.Name == name {
			return point, true
		}
	}
	return nil, false
}

// Index produces a name to point mapping; duplicates fail with
// DuplicateNameError
func (p Points) Index() (map[string]*ParameterPoint, error) {
	result := make(map[string]*ParameterPoint, len(p))
	for _, point := range p {
		if _, ok := result[point.Name]; ok {
			return nil, NewDuplicateNameError(point.Name)
		}
		result[point.Name] = point
	}
	return result, nil
}
