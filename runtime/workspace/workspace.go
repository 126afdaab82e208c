package workspace

import (
	"fmt"
	"sync"

	"github.com/viant/ampmodel/model/types"
)

// DuplicateNameError indicates two component specs claiming the same
// workspace entry
type DuplicateNameError struct {
	Name string
}

// Error implements error
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate workspace entry %q", e.Name)
}

// NewDuplicateNameError creates a duplicate name error
func NewDuplicateNameError(name string) *DuplicateNameError {
	return &DuplicateNameError{Name: name}
}

// Option customizes a workspace
type Option func(*Workspace)

// WithOverwrite restores last-write-wins registration for legacy documents
// that rely on later entries shadowing earlier ones
func WithOverwrite(flag bool) Option {
	return func(w *Workspace) {
		w.overwrite = flag
	}
}

// Workspace is the insertion-ordered registry of named, built, evaluable
// components derived from one model document. It is populated sequentially
// during the build phase and treated as read-only afterwards, which makes
// concurrent evaluation safe without coordination.
type Workspace struct {
	names     []string
	entries   map[string]types.Evaluable
	overwrite bool
	mux       sync.RWMutex
}

// Register inserts a component under the given name. Duplicates fail with
// DuplicateNameError unless the workspace was created with WithOverwrite,
// in which case the later entry replaces the earlier one in place.
func (w *Workspace) Register(name string, component types.Evaluable) error {
	w.mux.Lock()
	defer w.mux.Unlock()
	if _, ok := w.entries[name]; ok {
		if !w.overwrite {
			return NewDuplicateNameError(name)
		}
		w.entries[name] = component
		return nil
	}
	w.names = append(w.names, name)
	w.entries[name] = component
	return nil
}

// Lookup retrieves a component by name
func (w *Workspace) Lookup(name string) (types.Evaluable, bool) {
	w.mux.RLock()
	defer w.mux.RUnlock()
	component, ok := w.entries[name]
	return component, ok
}

// Names returns the entry names in insertion order
func (w *Workspace) Names() []string {
	w.mux.RLock()
	defer w.mux.RUnlock()
	result := make([]string, len(w.names))
	copy(result, w.names)
	return result
}

// Len returns the number of entries
func (w *Workspace) Len() int {
	w.mux.RLock()
	defer w.mux.RUnlock()
	return len(w.entries)
}

// New creates an empty workspace
func New(options ...Option) *Workspace {
	result := &Workspace{
		entries: make(map[string]types.Evaluable),
	}
	for _, option := range options {
		option(result)
	}
	return result
}
