package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vk/pinlock/internal/app"
)

func scanCmd(opts *rootOptions) *cobra.Command {
	var (
		modulePath string
		check      bool
	)

	cmd := &cobra.Command{
		Use:   "scan DIR",
		Short: "Extract third-party imports from a Go source tree",
		Long: `Walk the Go sources under DIR and report the third-party imports they
require, separating imports that only tests use, along with structural
hints (main binary, tests, cgo).

With --check, every import is cross-referenced against the pin table and
unpinned imports fail the command with exit code 3.

Examples:
  pinlock scan .
  pinlock scan ./services/api --module github.com/acme/api --check`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd.Context(), modulePath)
			if err != nil {
				return err
			}

			err = a.Scan(cmd.Context(), args[0], check)
			var unpinned *app.UnpinnedError
			if errors.As(err, &unpinned) {
				return &ExitError{Code: ExitValidation, Message: err.Error()}
			}
			return err
		},
	}

	cmd.Flags().StringVar(&modulePath, "module", "", "Import prefix of the scanned module; its own packages are skipped.")
	cmd.Flags().BoolVar(&check, "check", false, "Fail when an import has no pin in the registry.")

	return cmd
}
