package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/buildinfo"
	"github.com/cleared-dev/tally/internal/config"
)

type globalOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Without a subcommand it behaves like "tally run".
func NewRootCommand() *cobra.Command {
	var global globalOptions
	var run runOptions

	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "In-memory console banking ledger",
		Version: buildinfo.String(),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, global, run)
		},
	}

	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", config.FileName, "path to config file")
	rootCmd.PersistentFlags().StringVar(&global.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	addRunFlags(rootCmd, &run)

	rootCmd.AddCommand(newRunCommand(&global))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
