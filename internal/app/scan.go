package app

import (
	"context"
	"fmt"

	"github.com/vk/pinlock/internal/scan"
)

// UnpinnedError reports third-party imports with no registry record.
type UnpinnedError struct {
	Imports []string
}

func (e *UnpinnedError) Error() string {
	return fmt.Sprintf("%d third-party import(s) are not pinned", len(e.Imports))
}

// Scan walks the Go sources under root, prints the third-party imports
// they require, and — when check is set — cross-references them against
// the registry, failing with *UnpinnedError if any import lacks a record.
func (a *App) Scan(ctx context.Context, root string, check bool) error {
	ctx = a.Context(ctx)

	scanner := scan.NewScanner(a.cfg.ModulePath)
	result, err := scanner.Dir(ctx, root)
	if err != nil {
		return fmt.Errorf("scan of %s failed: %w", root, err)
	}

	fmt.Fprintf(a.outW, "imports (%d):\n", len(result.Imports))
	for _, path := range result.Imports {
		fmt.Fprintf(a.outW, "  %s\n", path)
	}
	if len(result.TestImports) > 0 {
		fmt.Fprintf(a.outW, "test-only imports (%d):\n", len(result.TestImports))
		for _, path := range result.TestImports {
			fmt.Fprintf(a.outW, "  %s\n", path)
		}
	}
	fmt.Fprintf(a.outW, "hints: main=%t tests=%t cgo=%t\n",
		result.Hints.HasMain, result.Hints.HasTests, result.Hints.UsesCgo)

	if !check {
		return nil
	}

	missing := scan.Unpinned(a.registry, result)
	if len(missing) == 0 {
		fmt.Fprintln(a.outW, "all imports pinned")
		return nil
	}

	fmt.Fprintf(a.outW, "unpinned imports (%d):\n", len(missing))
	for _, path := range missing {
		fmt.Fprintf(a.outW, "  %s\n", path)
	}
	return &UnpinnedError{Imports: missing}
}
