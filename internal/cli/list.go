package cli

import "github.com/spf13/cobra"

func listCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every registered dependency pin",
		Long: `Print every dependency pin in insertion order.

Examples:
  pinlock list
  pinlock list --json
  pinlock --pins build/pins list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd.Context(), "")
			if err != nil {
				return err
			}
			return a.List(asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit a JSON array instead of a table.")

	return cmd
}
