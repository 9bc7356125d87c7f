// Package yaml provides the YAML implementation of the pin file loader
// interface defined in the `config` package, for projects that keep their
// pins in .yaml files instead of HCL.
package yaml
