// Package cli implements the fwdiff command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string      // "json" | "text"
	Logger  *zap.Logger // built from Verbose when nil
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the fwdiff CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	builtLogger := false

	cmd := &cobra.Command{
		Use:   "fwdiff",
		Short: "fwdiff - forward-mode automatic differentiation",
		Long: `Exact first-order derivatives through dual numbers.

Every registered function is evaluated once with all of its inputs seeded,
so a single pass yields the value and the full gradient or Jacobian.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Logger != nil {
				return nil
			}

			logger, err := newLogger(opts.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.Logger = logger
			builtLogger = true

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if builtLogger && opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose (debug) logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewGradCommand(opts))
	cmd.AddCommand(NewJacCommand(opts))

	return cmd
}

// newLogger builds a production logger, at debug level when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

// log returns the configured logger, or a no-op one for commands run
// without the root (tests construct subcommands directly).
func (o *RootOptions) log() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}

// fail writes err as a JSON error response when --format json is active
// and returns it unchanged for the exit status.
func (o *RootOptions) fail(cmd *cobra.Command, err error) error {
	if err == nil || o.Format != "json" {
		return err
	}
	if werr := writeJSONError(cmd.OutOrStdout(), err); werr != nil {
		o.log().Debug("Failed to write error response", zap.Error(werr))
	}

	return err
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
