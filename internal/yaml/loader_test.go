package yaml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePins(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writePins(t, dir, "pins.yaml", `
dependencies:
  - name: gazelle
    kind: tool
    version: 0.29.0
    integrity: "sha256:abc123"
  - name: go
    kind: toolchain
    version: 1.20.5
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Dependencies, 2)

	gazelle := model.Dependencies[0]
	assert.Equal(t, "gazelle", gazelle.Name)
	assert.Equal(t, "tool", gazelle.Kind)
	assert.Equal(t, "0.29.0", gazelle.Version)
	assert.Equal(t, "sha256:abc123", gazelle.Integrity)

	assert.Equal(t, "go", model.Dependencies[1].Name)
	assert.Empty(t, model.Dependencies[1].Integrity)
}

func TestLoadSubstitutesVersionPlaceholder(t *testing.T) {
	dir := t.TempDir()
	writePins(t, dir, "pins.yml", `
dependencies:
  - name: rules_rust
    version: 0.21.1
    source: https://example.com/releases/v${version}/rules_rust-v${version}.tar.gz
`)

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Dependencies, 1)
	assert.Equal(t,
		"https://example.com/releases/v0.21.1/rules_rust-v0.21.1.tar.gz",
		model.Dependencies[0].SourceURL)
}

func TestLoadBothExtensions(t *testing.T) {
	dir := t.TempDir()
	writePins(t, dir, "a.yaml", "dependencies: [{name: a, version: \"1\"}]\n")
	writePins(t, dir, "b.yml", "dependencies: [{name: b, version: \"2\"}]\n")

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, model.Dependencies, 2)
}

func TestLoadMissingPathYieldsEmptyModel(t *testing.T) {
	model, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, model.Dependencies)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := writePins(t, dir, "broken.yaml", "dependencies: [\n")

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}
