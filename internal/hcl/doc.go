// Package hcl provides the HCL implementation of the pin file loader
// interface defined in the `config` package. It is responsible for file
// parsing, HCL-to-model translation, and rendering of version-templated
// source URLs via cty expression evaluation.
package hcl
