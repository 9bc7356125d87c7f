package config

// Model is the unified, format-agnostic representation of all loaded pin
// files. Dependency order follows file order, so repeated loads of the
// same inputs produce the same model.
type Model struct {
	Dependencies []*Dependency
}

// Dependency is the format-agnostic representation of one pinned build
// dependency.
type Dependency struct {
	// Name is the logical identifier of the dependency. It must be unique
	// across the registry; uniqueness is checked by registry validation,
	// not at load time, so that duplicates can be reported together.
	Name string

	// Version is the pinned version string. It is opaque: no semantic
	// versioning scheme is assumed or parsed.
	Version string

	// Integrity is the expected digest of the dependency's archive in
	// "algo:hex" form, e.g. "sha256:dd7...". Empty when the dependency is
	// not hash-pinned (plain toolchain versions usually are not).
	Integrity string

	// Kind is a free-form category such as "tool", "ruleset" or
	// "toolchain". Optional.
	Kind string

	// SourceURL is the fully rendered download URL for this version.
	// Loaders resolve any version placeholder before populating it.
	// Optional; fetching is the consumer's concern, not ours.
	SourceURL string
}

// Merge appends the dependencies of other to m, preserving order. It is
// used to combine the output of several loaders into one model.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Dependencies = append(m.Dependencies, other.Dependencies...)
}
