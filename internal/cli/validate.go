package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vk/pinlock/internal/registry"
)

func validateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the structural invariants of the pin table",
		Long: `Validate the loaded pin table: unique names, well-formed versions,
and well-formed integrity hashes. Every violation is reported, not just
the first. With --require-integrity, pins without a hash also fail.

Exits with code 3 when the table is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd.Context(), "")
			if err != nil {
				return err
			}

			err = a.Validate()
			var verr *registry.ValidationError
			if errors.As(err, &verr) {
				return &ExitError{Code: ExitValidation, Message: "pin table is invalid"}
			}
			return err
		},
	}

	return cmd
}
