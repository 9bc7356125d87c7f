// Package app wires the pin file loaders, the registry, and the logger
// into one application instance and implements the operations exposed by
// the CLI.
package app
