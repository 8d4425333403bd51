package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/five82/liftoff/internal/app"
)

// newRootCmd builds the command tree. The root command runs the TUI.
func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "liftoff",
		Short: "Browse SpaceX launches grouped by day, with webcasts and flight comments.",
		Long: `liftoff queries a SpaceX launches GraphQL endpoint and shows the launches
grouped by UTC day. Selecting a launch loads its community comments from a
second GraphQL service when one is configured.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/liftoff/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/liftoff/prefs.toml)")
	flags.StringVarP(&opts.LogLevel, "log-level", "l", "", "log level: debug, info, warn, error, fatal (overrides config)")

	root.AddCommand(newLaunchesCmd(&opts), newCommentsCmd(&opts))
	return root
}

func newLaunchesCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "launches",
		Short: "Print the launch timeline grouped by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.PrintTimeline(cmd.Context(), *opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func newCommentsCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "comments <flight>",
		Short: "Print community comments for a flight number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flight, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid flight number %q", args[0])
			}
			return app.PrintComments(cmd.Context(), *opts, flight, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}
