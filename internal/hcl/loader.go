package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/pinlock/internal/config"
	"github.com/vk/pinlock/internal/ctxlog"
	"github.com/vk/pinlock/internal/fsutil"
)

// Extension is the file extension this loader claims.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL pin file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers all .hcl files under the given paths, parses them, and
// translates every dependency block into the format-agnostic model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL pin files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Dependencies {
			dep, err := l.translateDependency(block)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Dependencies = append(model.Dependencies, dep)
		}
	}

	logger.Debug("HCL loading complete.", "dependencies", len(model.Dependencies))
	return model, nil
}

// translateDependency converts the HCL-specific block into the agnostic
// model, rendering the source URL with the block's version in scope.
func (l *Loader) translateDependency(block *DependencyBlock) (*config.Dependency, error) {
	dep := &config.Dependency{
		Name:      block.Name,
		Kind:      block.Kind,
		Version:   block.Version,
		Integrity: block.Integrity,
	}

	source, err := renderSource(block.Source, block.Version)
	if err != nil {
		return nil, fmt.Errorf("dependency %q: %w", block.Name, err)
	}
	dep.SourceURL = source

	return dep, nil
}

// renderSource evaluates the source expression with a `version` string
// variable in scope, so URL templates like ".../v${version}/x.tar.gz"
// resolve to the pinned version. A nil or absent expression yields "".
func renderSource(expr hcl.Expression, version string) (string, error) {
	if expr == nil {
		return "", nil
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"version": cty.StringVal(version),
		},
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to evaluate source: %w", diags)
	}
	if val.IsNull() {
		return "", nil
	}

	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("source must be a string: %w", err)
	}
	return val.AsString(), nil
}
