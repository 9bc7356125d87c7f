// Package registry holds the immutable table of pinned build dependencies.
//
// A Registry is built once from the loaded configuration model and never
// mutated afterwards, so any number of goroutines may query it without
// locking. It answers lookups by name, enumerates all records in insertion
// order, and validates the structural invariants of the table: unique
// names, well-formed versions, and well-formed (optionally mandatory)
// integrity hashes. Validation reports every violation it finds rather
// than stopping at the first, so a broken pin file can be fixed in one
// round trip.
package registry
