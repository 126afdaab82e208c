package extension

import (
	"fmt"
	"sort"
	"sync"

	"github.com/viant/ampmodel/model/types"
	"github.com/viant/x"
)

// Resolver grants read access to previously built components so that a
// factory can resolve name-valued fields
type Resolver interface {
	Lookup(name string) (types.Evaluable, bool)
}

// Factory builds a component instance from its typed configuration; the
// resolver exposes the workspace entries built before this component
type Factory func(config interface{}, resolver Resolver) (types.Evaluable, error)

// Kind describes one supported component kind: its wire name, the Go type
// of its configuration record and the factory producing instances
type Kind struct {
	Name   string
	Config *x.Type
	New    Factory
}

// UnknownTypeError indicates a component spec with a type tag that has no
// registered kind
type UnknownTypeError struct {
	Kind string
}

// Error implements error
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown component type %q", e.Kind)
}

// NewUnknownTypeError creates an unknown type error
func NewUnknownTypeError(kind string) *UnknownTypeError {
	return &UnknownTypeError{Kind: kind}
}

// Types is the component kind registry. Configuration types are also
// registered with the embedded x.Registry so that callers can introspect
// them by Go type name.
type Types struct {
	x.Registry
	kinds map[string]*Kind
	mux   sync.RWMutex
}

// Register adds a component kind to the registry; a later registration of
// the same name replaces the earlier one, which lets applications shadow a
// built-in kind
func (t *Types) Register(kind *Kind) {
	t.mux.Lock()
	defer t.mux.Unlock()
	if kind.Config != nil {
		t.Registry.Register(kind.Config)
	}
	t.kinds[kind.Name] = kind
}

// Lookup returns the kind registered under the supplied type name
func (t *Types) Lookup(name string) (*Kind, error) {
	t.mux.RLock()
	defer t.mux.RUnlock()
	kind, ok := t.kinds[name]
	if !ok {
		return nil, NewUnknownTypeError(name)
	}
	return kind, nil
}

// Kinds returns the registered kind names, sorted
func (t *Types) Kinds() []string {
	t.mux.RLock()
	defer t.mux.RUnlock()
	result := make([]string, 0, len(t.kinds))
	for name := range t.kinds {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// NewTypes creates a new component kind registry
func NewTypes(options ...x.RegistryOption) *Types {
	return &Types{
		Registry: *x.NewRegistry(options...),
		kinds:    make(map[string]*Kind),
	}
}
