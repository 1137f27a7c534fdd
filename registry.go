// Package mapreg dispatches data transforms keyed by a (source, target) type pair.
package mapreg

import "sync"

// Mapper maps data between two registered type identifiers.
type Mapper interface {
	Map(data any, source, target TypeID) (any, error)
}

// MapperFunc adapts a plain function to the Mapper interface.
type MapperFunc func(data any, source, target TypeID) (any, error)

func (f MapperFunc) Map(data any, source, target TypeID) (any, error) {
	return f(data, source, target)
}

var _ Mapper = (*Registry)(nil)

// pairKey identifies an entry by its ordered type pair.
type pairKey struct {
	source TypeID
	target TypeID
}

// Registry dispatches Map calls to the entry registered for a (source, target)
// pair. It is safe for concurrent use; the zero value is ready to use.
//
// Registrations are expected at startup, but Register and Map may interleave:
// the duplicate check and insert happen under one lock, and transforms run
// without holding it.
//
// Example:
//
//	reg := mapreg.NewRegistry()
//	if err := reg.Register(entry); err != nil {
//	    return err
//	}
//	out, err := reg.Map(in, "Celsius", "Fahrenheit")
type Registry struct {
	mu      sync.RWMutex
	entries map[pairKey]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[pairKey]Entry)}
}

// Register adds entry to the registry. If an entry for the same pair exists,
// it is kept and a *DuplicateMappingError is returned.
func (r *Registry) Register(entry Entry) error {
	if r == nil {
		return ErrRegistryNil
	}
	if err := entry.validate(); err != nil {
		return err
	}

	key := entry.key()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[pairKey]Entry)
	}
	if _, exists := r.entries[key]; exists {
		return NewDuplicateMappingError(entry.source, entry.target)
	}
	r.entries[key] = entry
	return nil
}

// Map applies the entry registered for (source, target) to data. A missing
// pair yields *MappingNotFoundError; a failing transform yields the
// *MappingExecutionError from Entry.Apply as is.
func (r *Registry) Map(data any, source, target TypeID) (any, error) {
	if r == nil {
		return nil, ErrRegistryNil
	}
	r.mu.RLock()
	entry, ok := r.entries[pairKey{source: source, target: target}]
	r.mu.RUnlock()
	if !ok {
		return nil, NewMappingNotFoundError(source, target)
	}
	return entry.Apply(data)
}
