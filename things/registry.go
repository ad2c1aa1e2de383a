// Package things maps entity type names, as they appear in room
// formulas, to the constructors that build the live entities.
package things

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Ctor builds a live entity from a placement parsed out of a room
// scene. The concrete entity types are owned by the game runtime, not
// by the compiler; args are the positional formula arguments.
type Ctor func(pos mgl64.Vec3, args []string) (any, error)

// Registry maps entity type names to constructors. The game registers
// every type explicitly at startup, so registration order stays under
// caller control instead of depending on package initialization order.
type Registry struct {
	ctors map[string]Ctor
}

func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Ctor)}
}

// Register binds name to fn, replacing any previous binding.
func (r *Registry) Register(name string, fn Ctor) {
	r.ctors[name] = fn
}

// Known reports whether name has a registered constructor.
func (r *Registry) Known(name string) bool {
	_, ok := r.ctors[name]
	return ok
}

// Create instantiates an entity of the given type at pos.
func (r *Registry) Create(name string, pos mgl64.Vec3, args []string) (any, error) {
	fn, ok := r.ctors[name]
	if !ok {
		return nil, fmt.Errorf("unknown entity type %q", name)
	}
	return fn(pos, args)
}
