// Package scan extracts third-party import requirements from a Go source
// tree so a build orchestrator can check them against the pin registry.
//
// The scanner reports which external modules a package imports, which of
// those appear only in test files, and a few structural hints (whether
// the tree builds a main binary, carries tests, or uses cgo). Standard
// library imports and the module's own packages are excluded; the
// consumer only cares about dependencies that need pinning.
package scan
