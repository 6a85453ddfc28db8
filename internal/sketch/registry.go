package sketch

import (
	"errors"
	"fmt"
)

// ErrUnknownSketch is returned when no constructor is registered for an id.
var ErrUnknownSketch = errors.New("unknown sketch")

// Constructor builds a fresh, not yet set up, sketch instance.
type Constructor func() Sketch

// Registry maps sketch ids to constructors, in registration order.
type Registry struct {
	order []string
	ctors map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register adds a constructor. Registering an id twice replaces the
// constructor but keeps the original listing position.
func (r *Registry) Register(id string, c Constructor) {
	if _, ok := r.ctors[id]; !ok {
		r.order = append(r.order, id)
	}
	r.ctors[id] = c
}

// New creates a new instance of the sketch registered under id.
func (r *Registry) New(id string) (Sketch, error) {
	c, ok := r.ctors[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSketch, id)
	}
	return c(), nil
}

// IDs lists registered ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Metadata describes every registered sketch that implements Described.
func (r *Registry) Metadata() []Metadata {
	var out []Metadata
	for _, id := range r.order {
		if d, ok := r.ctors[id]().(Described); ok {
			out = append(out, d.Metadata())
		}
	}
	return out
}

// Lookup returns the metadata for one id.
func (r *Registry) Lookup(id string) (Metadata, error) {
	c, ok := r.ctors[id]
	if !ok {
		return Metadata{}, fmt.Errorf("%w: %q", ErrUnknownSketch, id)
	}
	if d, ok := c().(Described); ok {
		return d.Metadata(), nil
	}
	return Metadata{ID: id}, nil
}
