// Package cli provides the command-line interface for termfolio.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atomicstack/termfolio/internal/app"
	"github.com/atomicstack/termfolio/internal/config"
	"github.com/atomicstack/termfolio/internal/logging"
)

// Options configure the command tree.
type Options struct {
	// Environ supplies environment variables for configuration lookup.
	Environ []string
	// OnStart runs once configuration is resolved, before any command.
	OnStart func(config.Config)
}

// state carries the resolved configuration from the persistent pre-run to
// the command that runs.
type state struct {
	cfg config.Config
}

// NewRootCmd creates the root command. Without a subcommand it runs the
// terminal UI.
func NewRootCmd(opts Options) *cobra.Command {
	st := &state{}
	root := &cobra.Command{
		Use:           "termfolio",
		Short:         "A terminal portfolio with splittable panes",
		Long:          "termfolio renders a portfolio as an interactive shell. Panes can be split, resized and closed; each keeps its own history and output.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromFlags(cmd.Flags(), opts.Environ)
			if err != nil {
				return err
			}
			cfg.Args = append([]string(nil), args...)
			if err := config.Validate(cfg); err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}
			logging.Configure(cfg.Logging.FilePath)
			logging.SetTraceEnabled(cfg.Logging.Trace)
			st.cfg = cfg
			if opts.OnStart != nil {
				opts.OnStart(cfg)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), st.cfg.App)
		},
	}
	config.RegisterFlags(root.PersistentFlags())
	root.AddCommand(
		newServeCmd(st),
		newThemeCmd(st),
		newPrintCmd(st),
	)
	return root
}

// Execute runs the command tree with args.
func Execute(ctx context.Context, args []string, opts Options) error {
	root := NewRootCmd(opts)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
