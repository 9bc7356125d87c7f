package scan

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/vk/pinlock/internal/ctxlog"
)

// Hints are structural facts about the scanned sources that a build
// orchestrator uses when generating build rules.
type Hints struct {
	// HasMain is set when a top-level `func main` exists in package main.
	HasMain bool
	// HasTests is set when the sources declare test functions.
	HasTests bool
	// UsesCgo is set when any file imports "C".
	UsesCgo bool
}

// Result is the aggregated outcome of a scan.
type Result struct {
	// Imports are the third-party import paths used by non-test sources,
	// sorted and deduplicated.
	Imports []string
	// TestImports are the third-party import paths used only by test
	// sources, i.e. the test set minus the regular set.
	TestImports []string
	Hints       Hints
}

// Scanner extracts imports from Go sources.
type Scanner struct {
	// modulePath is the import prefix of the module being scanned. Imports
	// under it are internal and excluded, the same way a crate's own name
	// is not one of its dependencies. Empty disables the check.
	modulePath string

	fset        *token.FileSet
	imports     map[string]struct{}
	testImports map[string]struct{}
	hints       Hints
}

// NewScanner creates a scanner for the module rooted at modulePath.
func NewScanner(modulePath string) *Scanner {
	return &Scanner{
		modulePath:  modulePath,
		fset:        token.NewFileSet(),
		imports:     make(map[string]struct{}),
		testImports: make(map[string]struct{}),
	}
}

// Dir walks the Go source tree under root and aggregates every file into
// one result. Vendor trees, testdata, hidden directories, and directories
// the Go toolchain ignores (underscore-prefixed) are skipped.
func (s *Scanner) Dir(ctx context.Context, root string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Source scan started.", "root", root)

	fileCount := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".go") {
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("could not read file %s: %w", path, err)
		}
		if err := s.Source(path, src); err != nil {
			return err
		}
		fileCount++
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := s.result()
	logger.Debug("Source scan complete.",
		"files", fileCount,
		"imports", len(result.Imports),
		"test_imports", len(result.TestImports))
	return result, nil
}

// File parses a single Go file and folds it into the scanner's state.
func (s *Scanner) File(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", path, err)
	}
	return s.Source(path, src)
}

// Source parses Go source and folds it into the scanner's state. Whether
// imports count as test-only is decided by the _test.go name convention.
func (s *Scanner) Source(filename string, src []byte) error {
	file, err := parser.ParseFile(s.fset, filename, src, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("could not parse %s: %w", filename, err)
	}

	isTest := strings.HasSuffix(filepath.Base(filename), "_test.go")
	target := s.imports
	if isTest {
		target = s.testImports
	}

	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		if path == "C" {
			s.hints.UsesCgo = true
			continue
		}
		if !thirdParty(path) {
			continue
		}
		if s.modulePath != "" && isSubpath(path, s.modulePath) {
			continue
		}
		target[path] = struct{}{}
	}

	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil {
			continue
		}
		switch {
		case !isTest && file.Name.Name == "main" && fn.Name.Name == "main":
			s.hints.HasMain = true
		case isTest && isTestFunc(fn.Name.Name):
			s.hints.HasTests = true
		}
	}

	return nil
}

// result snapshots the scanner state. Test imports that also appear in
// regular sources are dropped; they are pinned either way.
func (s *Scanner) result() *Result {
	res := &Result{Hints: s.hints}

	for path := range s.imports {
		res.Imports = append(res.Imports, path)
	}
	for path := range s.testImports {
		if _, ok := s.imports[path]; !ok {
			res.TestImports = append(res.TestImports, path)
		}
	}

	sort.Strings(res.Imports)
	sort.Strings(res.TestImports)
	return res
}

// thirdParty reports whether an import path refers to an external module.
// Standard library paths carry no dot in their first segment.
func thirdParty(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return strings.Contains(first, ".")
}

// isSubpath reports whether path equals prefix or lives under it.
func isSubpath(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// skipDir reports whether the walker should ignore a directory. Matches
// the set of directories the Go toolchain itself does not build.
func skipDir(name string) bool {
	return name == "vendor" ||
		name == "testdata" ||
		strings.HasPrefix(name, ".") ||
		strings.HasPrefix(name, "_")
}

// isTestFunc reports whether a top-level function name marks a test,
// benchmark, fuzz target, or example.
func isTestFunc(name string) bool {
	for _, prefix := range []string{"Test", "Benchmark", "Fuzz", "Example"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
