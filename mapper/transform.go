package mapper

import (
	"maps"
	"slices"

	"github.com/ygrebnov/errorc"
)

// TransformID names a transformation.
type TransformID string

// Built-in transformations. They are always available and cannot be registered.
const (
	// Drop yields nil for any input.
	Drop TransformID = "drop"
	// Copy yields its input unchanged.
	Copy TransformID = "copy"
)

// IsBuiltin reports whether id is Drop or Copy.
func (id TransformID) IsBuiltin() bool {
	return id == Drop || id == Copy
}

// TransformFunc converts value while copying one field. primary and other are the
// two records of the Copy call, in that order regardless of direction.
type TransformFunc func(value any, primary, other Record) (any, error)

// Registry holds the named transformations available to a Mapper.
type Registry struct {
	funcs map[TransformID]TransformFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[TransformID]TransformFunc),
	}
}

// Register adds fn under id, replacing any previous registration.
func (r *Registry) Register(id TransformID, fn TransformFunc) error {
	if id == "" || fn == nil {
		return errorc.With(ErrInvalidTransform, errorc.String(ErrorFieldTransform, string(id)))
	}

	if id.IsBuiltin() {
		return errorc.With(ErrReservedTransform, errorc.String(ErrorFieldTransform, string(id)))
	}

	r.funcs[id] = fn

	return nil
}

// MustRegister is Register that panics on error. Intended for package-level setup.
func (r *Registry) MustRegister(id TransformID, fn TransformFunc) *Registry {
	if err := r.Register(id, fn); err != nil {
		panic(err)
	}

	return r
}

// Func returns the function registered under id.
func (r *Registry) Func(id TransformID) (TransformFunc, bool) {
	if r == nil {
		return nil, false
	}

	fn, ok := r.funcs[id]

	return fn, ok
}

// Has reports whether id is built in or registered.
func (r *Registry) Has(id TransformID) bool {
	if id.IsBuiltin() {
		return true
	}

	_, ok := r.Func(id)

	return ok
}

// IDs returns the registered ids in sorted order, built-ins excluded.
func (r *Registry) IDs() []TransformID {
	if r == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(r.funcs))
}

func (r *Registry) clone() *Registry {
	c := NewRegistry()
	if r != nil {
		maps.Copy(c.funcs, r.funcs)
	}

	return c
}
