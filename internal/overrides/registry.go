package overrides

import (
	"maps"
	"slices"
)

// Immutable mapping from package name to override record.
//
// A nil registry is valid and empty.
type Registry struct {
	records map[string]Record
}

// Creates a registry from the given table. The table is deep-copied, so later
// changes to it do not reach the registry.
func NewRegistry(records map[string]Record) *Registry {
	r := &Registry{records: make(map[string]Record, len(records))}
	for name, rec := range records {
		r.records[name] = rec.Clone()
	}
	return r
}

// Returns a copy of the record registered under name.
//
// Matching is exact and case-sensitive. An unregistered name is not an error.
func (r *Registry) Lookup(name string) (Record, bool) {
	if r == nil {
		return Record{}, false
	}
	rec, ok := r.records[name]
	if !ok {
		return Record{}, false
	}
	return rec.Clone(), true
}

// Returns the number of registered packages.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.records)
}

// Returns the registered package names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.records))
}

// Combines registries into one.
//
// Layers are given lowest precedence first: typically the public default
// followed by private overlays. A record in a later layer replaces the
// earlier record for the same package as a whole; fields are not combined
// across layers.
func Layer(layers ...*Registry) *Registry {
	out := &Registry{records: make(map[string]Record)}
	for _, l := range layers {
		if l == nil {
			continue
		}
		for name, rec := range l.records {
			out.records[name] = rec.Clone()
		}
	}
	return out
}
