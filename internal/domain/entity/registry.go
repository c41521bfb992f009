package entity

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"
	"github.com/younwookim/art/internal/infrastructure/assets"
	"github.com/younwookim/art/internal/infrastructure/render"
)

// ErrDuplicateID is returned when an object is added under an ID that is
// already taken.
var ErrDuplicateID = errors.New("duplicate object id")

// Registry is a scene's object collection. Objects are updated and drawn
// in insertion order.
type Registry struct {
	index *intmap.Map[ObjectID, int] // id -> position in order
	order []Object
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: intmap.New[ObjectID, int](64)}
}

// Add appends obj.
func (r *Registry) Add(obj Object) error {
	if r.index.Has(obj.ID()) {
		return fmt.Errorf("%w: %d", ErrDuplicateID, obj.ID())
	}
	r.index.Put(obj.ID(), len(r.order))
	r.order = append(r.order, obj)
	return nil
}

// Get returns the object with the given ID.
func (r *Registry) Get(id ObjectID) (Object, bool) {
	i, ok := r.index.Get(id)
	if !ok {
		return nil, false
	}
	return r.order[i], true
}

// Remove deletes the object with the given ID and reports whether it was
// present. The order of the remaining objects is kept.
func (r *Registry) Remove(id ObjectID) bool {
	i, ok := r.index.Get(id)
	if !ok {
		return false
	}
	r.index.Del(id)
	r.order = append(r.order[:i], r.order[i+1:]...)
	for j := i; j < len(r.order); j++ {
		r.index.Put(r.order[j].ID(), j)
	}
	return true
}

// Len returns the number of objects.
func (r *Registry) Len() int {
	return len(r.order)
}

// Each calls fn for every object in order until fn returns false.
func (r *Registry) Each(fn func(Object) bool) {
	for _, obj := range r.order {
		if !fn(obj) {
			return
		}
	}
}

// Update updates every object.
func (r *Registry) Update(now float64) {
	for _, obj := range r.order {
		obj.Update(now)
	}
}

// Draw draws every object and stops at the first error.
func (r *Registry) Draw(s render.Surface, images assets.ImageStore) error {
	for _, obj := range r.order {
		if err := obj.Draw(s, images); err != nil {
			return err
		}
	}
	return nil
}
