package estimator

import "fmt"

// Registry maps an operator-kind name to the Factory that builds its
// cardinality estimator, mirroring the handler registries operator
// libraries use elsewhere in this codebase.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register installs factory under kind. It panics on a duplicate kind,
// since two operator implementations registering under the same name
// indicates a build-time wiring bug, not a runtime condition to recover
// from.
func (r *Registry) Register(kind string, factory Factory) {
	if _, exists := r.factories[kind]; exists {
		panic(fmt.Sprintf("estimator: factory for kind %q already registered", kind))
	}
	r.factories[kind] = factory
}

// Lookup returns the factory registered for kind, or (nil, false) if none
// was registered.
func (r *Registry) Lookup(kind string) (Factory, bool) {
	f, ok := r.factories[kind]
	return f, ok
}
