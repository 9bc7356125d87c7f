package yaml

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vk/pinlock/internal/config"
	"github.com/vk/pinlock/internal/ctxlog"
	"github.com/vk/pinlock/internal/fsutil"
)

// Extensions are the file extensions this loader claims.
var Extensions = []string{".yaml", ".yml"}

// versionPlaceholder is the token replaced by the pinned version inside a
// source URL template.
const versionPlaceholder = "${version}"

// fileRoot is the top-level structure of a YAML pin file.
type fileRoot struct {
	Dependencies []dependencyEntry `yaml:"dependencies"`
}

// dependencyEntry is one list item under `dependencies:`.
type dependencyEntry struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"`
	Version   string `yaml:"version"`
	Integrity string `yaml:"integrity"`
	Source    string `yaml:"source"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML pin file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers all .yaml/.yml files under the given paths, parses them,
// and translates every dependency entry into the format-agnostic model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML pin files.", "count", len(files))

	model := &config.Model{}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}

		var root fileRoot
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}

		for _, entry := range root.Dependencies {
			model.Dependencies = append(model.Dependencies, &config.Dependency{
				Name:      entry.Name,
				Kind:      entry.Kind,
				Version:   entry.Version,
				Integrity: entry.Integrity,
				SourceURL: strings.ReplaceAll(entry.Source, versionPlaceholder, entry.Version),
			})
		}
	}

	logger.Debug("YAML loading complete.", "dependencies", len(model.Dependencies))
	return model, nil
}
