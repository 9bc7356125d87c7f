// Package config defines the format-agnostic model for pin files and the
// interfaces that format-specific loaders implement.
//
// Pin files declare the external build dependencies of a project: a unique
// name, a version string, and optionally an integrity hash and a download
// URL. Loaders for concrete formats (HCL, YAML) translate their input into
// the single Model defined here, so the rest of the application never sees
// format-specific types.
package config
