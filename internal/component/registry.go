package component

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrMissingComponent is returned when a referenced component name cannot be
// resolved. It is a distinct kind so callers can tell a typo in a component
// reference apart from a structurally malformed graph definition.
var ErrMissingComponent = errors.New("component not found in registry")

// Factory constructs a live component instance from merged parameters and the
// graph's random seed. A factory must reject unknown or invalid parameter
// values with an error rather than ignoring them.
type Factory func(parameters map[string]any, seed int64) (Component, error)

// Definition describes a registered component type: its display name, its
// capability kind, its declared default parameters, and its factory.
type Definition struct {
	Name     string
	Kind     Kind
	Defaults map[string]any
	New      Factory
}

// Registry is an explicit registration table mapping display names to
// component definitions. It is populated once at startup and read-only
// thereafter; there is deliberately no process-wide global instance.
type Registry struct {
	defs  map[string]*Definition
	names []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds a component definition. Registering two definitions under the
// same name is a programmer error and panics, matching init-once lifecycle.
func (r *Registry) Register(def *Definition) {
	if def.Name == "" {
		panic("component: definition must have a name")
	}
	if def.New == nil {
		panic(fmt.Sprintf("component: definition %q must have a factory", def.Name))
	}
	if _, exists := r.defs[def.Name]; exists {
		panic(fmt.Sprintf("component %q already registered", def.Name))
	}
	slog.Debug("Registering component.", "name", def.Name, "kind", def.Kind.String())
	r.defs[def.Name] = def
	r.names = append(r.names, def.Name)
}

// Lookup resolves a component name to its definition. Unresolvable names
// return an error wrapping ErrMissingComponent.
func (r *Registry) Lookup(name string) (*Definition, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingComponent, name)
	}
	return def, nil
}

// Names returns all registered component names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Module is the interface a built-in component package implements to register
// itself with a registry.
type Module interface {
	Register(r *Registry)
}
