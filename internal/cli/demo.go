package cli

import (
	"github.com/katalvlaran/fwdiff/internal/catalog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	*RootOptions
	Path string
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the reference scenarios with expected and computed results",
		Long: `Print the reference scenarios with expected and computed results.

Each scenario is evaluated at a=1, b=2, c=3 (variables 0, 1, 2) followed by
the single-variable product 123 * 42. --path selects the eager dual API or
the lazy expression layer; both print the same numbers.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.log().Debug("Running reference scenarios", zap.String("path", opts.Path))
			return catalog.WriteReference(cmd.OutOrStdout(), opts.Path)
		},
	}

	cmd.Flags().StringVar(&opts.Path, "path", catalog.PathTree, "evaluation path (eager|tree)")

	return cmd
}
