package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePins(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pins.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the command tree and returns stdout plus the error.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Execute(args, &out, &errOut)
	return out.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	return exitErr.Code
}

func TestListCommand(t *testing.T) {
	pins := writePins(t, `
dependency "gazelle" {
  kind    = "tool"
  version = "0.29.0"
}
`)

	out, err := run(t, "--pins", pins, "--log-level", "error", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "gazelle")
	assert.Contains(t, out, "0.29.0")
}

func TestGetCommand(t *testing.T) {
	pins := writePins(t, `
dependency "rules_rust" {
  version = "0.21.1"
}
`)

	t.Run("known name", func(t *testing.T) {
		out, err := run(t, "--pins", pins, "--log-level", "error", "get", "rules_rust")
		require.NoError(t, err)
		assert.Contains(t, out, "version:   0.21.1")
	})

	t.Run("unknown name exits 1", func(t *testing.T) {
		_, err := run(t, "--pins", pins, "--log-level", "error", "get", "absent")
		assert.Equal(t, ExitFailure, exitCode(t, err))
	})

	t.Run("missing argument is a usage error", func(t *testing.T) {
		_, err := run(t, "--pins", pins, "--log-level", "error", "get")
		assert.Equal(t, ExitUsage, exitCode(t, err))
	})
}

func TestValidateCommand(t *testing.T) {
	t.Run("sound pins succeed", func(t *testing.T) {
		pins := writePins(t, `
dependency "tool" {
  version = "1.0.0"
}
`)
		out, err := run(t, "--pins", pins, "--log-level", "error", "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "ok: 1 dependencies validated")
	})

	t.Run("duplicate names exit 3", func(t *testing.T) {
		pins := writePins(t, `
dependency "dup" {
  version = "1.0.0"
}
dependency "dup" {
  version = "2.0.0"
}
`)
		out, err := run(t, "--pins", pins, "--log-level", "error", "validate")
		assert.Equal(t, ExitValidation, exitCode(t, err))
		assert.Contains(t, out, `dependency "dup"`)
	})

	t.Run("require-integrity tightens the check", func(t *testing.T) {
		pins := writePins(t, `
dependency "unhashed" {
  version = "1.0.0"
}
`)
		_, err := run(t, "--pins", pins, "--log-level", "error", "--require-integrity", "validate")
		assert.Equal(t, ExitValidation, exitCode(t, err))
	})
}

func TestScanCommand(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "main.go"), []byte(`package main

import "github.com/spf13/cobra"

func main() { _ = cobra.Command{} }
`), 0o644))

	t.Run("plain scan reports imports", func(t *testing.T) {
		pins := writePins(t, `dependency "x" {
  version = "1.0.0"
}
`)
		out, err := run(t, "--pins", pins, "--log-level", "error", "scan", srcDir)
		require.NoError(t, err)
		assert.Contains(t, out, "github.com/spf13/cobra")
	})

	t.Run("check against unpinned import exits 3", func(t *testing.T) {
		pins := writePins(t, `dependency "x" {
  version = "1.0.0"
}
`)
		_, err := run(t, "--pins", pins, "--log-level", "error", "scan", "--check", srcDir)
		assert.Equal(t, ExitValidation, exitCode(t, err))
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pinlock")

	out, err = run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestUsageErrors(t *testing.T) {
	t.Run("unknown command", func(t *testing.T) {
		_, err := run(t, "frobnicate")
		assert.Equal(t, ExitUsage, exitCode(t, err))
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := run(t, "list", "--no-such-flag")
		assert.Equal(t, ExitUsage, exitCode(t, err))
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, err := run(t, "--log-level", "loud", "list")
		assert.Equal(t, ExitUsage, exitCode(t, err))
	})

	t.Run("invalid log format", func(t *testing.T) {
		_, err := run(t, "--log-format", "xml", "list")
		assert.Equal(t, ExitUsage, exitCode(t, err))
	})
}

func TestExitErrorImplementsError(t *testing.T) {
	var err error = &ExitError{Code: 3, Message: "boom"}
	assert.Equal(t, "boom", err.Error())

	var target *ExitError
	assert.True(t, errors.As(err, &target))
}
