package registry

import (
	"iter"

	"github.com/vk/pinlock/internal/config"
)

// Record is one pinned build dependency as held by the registry.
type Record struct {
	Name      string
	Version   string
	Integrity string
	Kind      string
	SourceURL string
}

// Registry is the read-only table of dependency records for one build
// configuration. The zero value is an empty registry.
type Registry struct {
	// records keeps every loaded record, including duplicates, so that
	// Validate can report them. index resolves a name to the first record
	// carrying it.
	records          []Record
	index            map[string]int
	requireIntegrity bool
}

// Option configures registry construction.
type Option func(*Registry)

// WithRequiredIntegrity makes Validate treat a missing integrity hash as
// a violation on every record. Projects that only pin hash-verified
// archives turn this on.
func WithRequiredIntegrity() Option {
	return func(r *Registry) {
		r.requireIntegrity = true
	}
}

// New builds a registry from the loaded configuration model. The model is
// copied; later changes to it do not affect the registry.
func New(model *config.Model, opts ...Option) *Registry {
	r := &Registry{
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	if model == nil {
		return r
	}

	for _, dep := range model.Dependencies {
		rec := Record{
			Name:      dep.Name,
			Version:   dep.Version,
			Integrity: dep.Integrity,
			Kind:      dep.Kind,
			SourceURL: dep.SourceURL,
		}
		r.records = append(r.records, rec)
		if _, exists := r.index[rec.Name]; !exists {
			r.index[rec.Name] = len(r.records) - 1
		}
	}
	return r
}

// Get returns the record registered under name. When two records share a
// name (a state Validate reports as broken) the first one wins. The error
// is a *NotFoundError when the name is absent.
func (r *Registry) Get(name string) (Record, error) {
	i, ok := r.index[name]
	if !ok {
		return Record{}, &NotFoundError{Name: name}
	}
	return r.records[i], nil
}

// All returns an iterator over every record in insertion order. The
// sequence is finite, has no side effects, and may be ranged over any
// number of times.
func (r *Registry) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, rec := range r.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// Len returns the number of records, counting duplicates.
func (r *Registry) Len() int {
	return len(r.records)
}
