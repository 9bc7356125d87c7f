package cli

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vk/pinlock/internal/app"
	"github.com/vk/pinlock/internal/hcl"
	"github.com/vk/pinlock/internal/yaml"
)

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	outW io.Writer
	errW io.Writer

	pins             []string
	logLevel         string
	logFormat        string
	requireIntegrity bool
}

// newApp builds the application instance from the persistent flags,
// wiring in both pin file loaders.
func (o *rootOptions) newApp(ctx context.Context, modulePath string) (*app.App, error) {
	cfg, err := app.NewConfig(app.Config{
		PinPaths:         o.pins,
		ModulePath:       modulePath,
		LogFormat:        o.logFormat,
		LogLevel:         o.logLevel,
		RequireIntegrity: o.requireIntegrity,
	})
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	return app.NewApp(ctx, o.outW, o.errW, cfg, hcl.NewLoader(), yaml.NewLoader())
}

// NewRootCmd builds the pinlock command tree. Output and error writers
// are injected so tests can capture everything the commands print.
func NewRootCmd(outW, errW io.Writer) *cobra.Command {
	opts := &rootOptions{outW: outW, errW: errW}

	rootCmd := &cobra.Command{
		Use:   "pinlock",
		Short: "Maintain and verify a registry of pinned build dependencies",
		Long: `Pinlock maintains a declarative table of (name, version, integrity hash)
pins for build-system dependencies, loads it from HCL or YAML pin files,
and answers queries from build tooling or humans.

It does not fetch archives or verify downloaded bytes; it is the table
of record that fetchers consult.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.logFormat {
			case "text", "json":
			default:
				return &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
			}
			switch opts.logLevel {
			case "debug", "info", "warn", "error":
			default:
				return &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
			}
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringArrayVarP(&opts.pins, "pins", "p", []string{"pins.hcl"}, "Pin file or directory; repeatable.")
	pf.StringVar(&opts.logLevel, "log-level", "info", "Logging level: 'debug', 'info', 'warn', or 'error'.")
	pf.StringVar(&opts.logFormat, "log-format", "text", "Log output format: 'text' or 'json'.")
	pf.BoolVar(&opts.requireIntegrity, "require-integrity", false, "Treat a missing integrity hash as a validation failure.")

	rootCmd.AddCommand(
		listCmd(opts),
		getCmd(opts),
		validateCmd(opts),
		scanCmd(opts),
		versionCmd(outW),
	)

	return rootCmd
}

// Execute runs the command tree against args and returns the resulting
// error, if any. The caller maps ExitError to a process exit code.
func Execute(args []string, outW, errW io.Writer) error {
	rootCmd := NewRootCmd(outW, errW)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(outW)
	rootCmd.SetErr(errW)

	err := rootCmd.Execute()
	if err != nil && isUsageError(err) {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	return err
}

// isUsageError reports whether cobra produced the error while parsing the
// invocation rather than running a command.
func isUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"unknown command", "unknown flag", "unknown shorthand flag", "invalid argument", "accepts "} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
