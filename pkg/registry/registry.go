package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/typecheck/pkg/check"
)

// ErrShapeNotFound is returned when no shape is registered under a name.
var ErrShapeNotFound = errors.New("shape not found")

// Entry is a named checker.
type Entry struct {
	Name        string
	Description string
	Checker     check.Checker
}

// Registry manages the available shapes.
type Registry struct {
	mu     sync.RWMutex
	shapes map[string]Entry
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		shapes: make(map[string]Entry),
	}
}

// Register adds a shape to the registry.
// If a shape with the same name exists, it is overwritten.
func (r *Registry) Register(name, description string, c check.Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shapes[name] = Entry{Name: name, Description: description, Checker: c}
}

// Lookup returns the shape registered under name.
func (r *Registry) Lookup(name string) (Entry, error) {
	r.mu.RLock()
	e, ok := r.shapes[name]
	r.mu.RUnlock()

	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrShapeNotFound, name)
	}
	return e, nil
}

// Names returns the registered shape names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns every registered shape ordered by name.
func (r *Registry) Entries() []Entry {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		if e, ok := r.shapes[name]; ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Check looks up a shape by name and applies it to v.
// Returns an error if the shape is not found or ctx is done.
func (r *Registry) Check(ctx context.Context, name string, v any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	e, err := r.Lookup(name)
	if err != nil {
		return false, err
	}
	return e.Checker.Check(v), nil
}
