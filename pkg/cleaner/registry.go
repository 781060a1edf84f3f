package cleaner

import (
	"github.com/cachesweep/cachesweep/pkg/errors"
)

// Registry maps tool names to cleaners, preserving registration order so
// scan and clean output is stable.
type Registry struct {
	names    []string
	cleaners map[string]Cleaner
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cleaners: make(map[string]Cleaner),
	}
}

// Register adds a cleaner. Registering the same name twice is an error.
func (r *Registry) Register(c Cleaner) error {
	name := c.Name()
	if _, exists := r.cleaners[name]; exists {
		return errors.Wrapf(errors.ErrCleanerExists, "%s", name)
	}
	r.names = append(r.names, name)
	r.cleaners[name] = c
	return nil
}

// Get returns the cleaner registered under name.
func (r *Registry) Get(name string) (Cleaner, error) {
	c, ok := r.cleaners[name]
	if !ok {
		return nil, errors.ErrCleanerNotFoundWithName(name)
	}
	return c, nil
}

// All returns the cleaners in registration order.
func (r *Registry) All() []Cleaner {
	out := make([]Cleaner, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.cleaners[name])
	}
	return out
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered cleaners.
func (r *Registry) Len() int {
	return len(r.names)
}
