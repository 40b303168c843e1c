package sv

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrDuplicateClass is returned by Register when a name is already taken.
var ErrDuplicateClass = errors.New("sv: class already registered")

// Registry maps class names to blueprints. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]Class
}

// NewRegistry returns a registry holding classes.
func NewRegistry(classes ...Class) (*Registry, error) {
	r := &Registry{}
	for _, c := range classes {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds cls under its class name.
func (r *Registry) Register(cls Class) error {
	if cls == nil {
		return errors.New("sv: cannot register nil class")
	}
	name := cls.Name()
	if name == "" {
		return errors.New("sv: class name is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.classes == nil {
		r.classes = make(map[string]Class)
	}
	if _, ok := r.classes[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateClass, name)
	}
	r.classes[name] = cls
	return nil
}

// MustRegister is Register that panics on error, for package-level setup.
func (r *Registry) MustRegister(classes ...Class) *Registry {
	for _, c := range classes {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
	return r
}

// Lookup returns the class registered under name.
func (r *Registry) Lookup(name string) (Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.classes[name]
	return c, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.classes))
	for n := range r.classes {
		out = append(out, n)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Selector returns a Selector resolving the discriminator field's string value
// against the registry at call time, so classes registered later are found.
func (r *Registry) Selector(discriminator string) Selector {
	return func(raw any) Class {
		v, ok := Field(raw, discriminator)
		if !ok {
			return nil
		}
		name, ok := asString(v)
		if !ok {
			return nil
		}
		c, _ := r.Lookup(name)
		return c
	}
}

// Union snapshots the registered classes into a Union keyed by discriminator.
// Unlike Selector, the result can be enumerated by JSONSchema.
func (r *Registry) Union(discriminator string) *Union {
	names := r.Names()
	classes := make([]Class, 0, len(names))
	for _, n := range names {
		if c, ok := r.Lookup(n); ok {
			classes = append(classes, c)
		}
	}
	return &Union{Discriminator: discriminator, Classes: classes}
}
