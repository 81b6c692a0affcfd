package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// ErrCancelled is returned by pick when the user dismissed the picker
var ErrCancelled = errors.New("selection cancelled")

// Version information (set via ldflags during build)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

type rootOptions struct {
	configPath string
	logFile    string
	verbosity  int
}

// NewRootCommand builds the lookup command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "lookup",
		Short: "Pick one item from a searchable list",
		Long: `lookup - pick one item from a searchable list in the terminal

Items come from a JSON, YAML or TOML file, or one per line on stdin.
The chosen item is printed to stdout; cancelling exits with status 1.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is the per-user config.toml)")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	root.PersistentFlags().IntVarP(&opts.verbosity, "verbose", "v", 0, "log verbosity")

	root.AddCommand(newPickCommand(opts))
	root.AddCommand(newConfigCommand(opts))
	root.AddCommand(newKeysCommand())
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the root command. Cancelling ctx stops a running picker.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
