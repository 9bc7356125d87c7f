package scan

import (
	"errors"

	"github.com/vk/pinlock/internal/registry"
)

// Unpinned cross-checks a scan result against the registry and returns
// every third-party import, test imports included, that has no record.
// The returned list is sorted because the result's import lists are.
func Unpinned(reg *registry.Registry, res *Result) []string {
	var missing []string

	check := func(paths []string) {
		for _, path := range paths {
			if _, err := reg.Get(path); err != nil {
				var notFound *registry.NotFoundError
				if errors.As(err, &notFound) {
					missing = append(missing, path)
				}
			}
		}
	}

	check(res.Imports)
	check(res.TestImports)
	return missing
}
