package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vk/pinlock/internal/registry"
)

func getCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Print the pin registered under NAME",
		Long: `Look up one dependency pin by name.

Examples:
  pinlock get gazelle
  pinlock get rules_rust --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd.Context(), "")
			if err != nil {
				return err
			}

			err = a.Get(args[0], asJSON)
			var notFound *registry.NotFoundError
			if errors.As(err, &notFound) {
				return &ExitError{Code: ExitFailure, Message: err.Error()}
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of key-value text.")

	return cmd
}
