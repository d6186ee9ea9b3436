package overrides

// Looks up override records through a [Gate].
type Resolver struct {
	gate     Gate
	registry *Registry
}

// Creates a resolver over the given registry.
func NewResolver(gate Gate, registry *Registry) *Resolver {
	return &Resolver{gate: gate, registry: registry}
}

// Returns the override record for the named package.
//
// When the gate is inactive the result is always absent, whatever the
// registry holds. Otherwise the name is matched exactly. An unregistered
// package is a normal outcome and reports false.
func (r *Resolver) Resolve(name string) (Record, bool) {
	if !r.gate.Active() {
		return Record{}, false
	}
	return r.registry.Lookup(name)
}

// Returns the gate the resolver was created with.
func (r *Resolver) Gate() Gate {
	return r.gate
}
