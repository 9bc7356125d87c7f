package app

import (
	"errors"
	"fmt"

	"github.com/vk/pinlock/internal/registry"
)

// Validate runs the registry's structural checks and prints the outcome.
// On failure every violation is printed and the underlying
// *registry.ValidationError is returned so callers can map it to an exit
// code.
func (a *App) Validate() error {
	err := a.registry.Validate()
	if err == nil {
		fmt.Fprintf(a.outW, "ok: %d dependencies validated\n", a.registry.Len())
		return nil
	}

	var verr *registry.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(a.outW, "validation failed with %d issue(s):\n", len(verr.Issues))
		for _, issue := range verr.Issues {
			fmt.Fprintf(a.outW, "  - %s\n", issue)
		}
	}
	return err
}
