package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/flightlog/internal/logging"
	"github.com/ytget/flightlog/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

type rootFlags struct {
	logLevel string
	noBus    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "flightlog",
		Short:        "List flight data sessions and reveal them in the file manager",
		Version:      version,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error); LOG_LEVEL overrides")
	cmd.PersistentFlags().BoolVar(&opts.noBus, "no-bus", false, "Do not use the desktop bus; reveal by opening the containing folder")

	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newRevealCmd(opts, nil))
	return cmd
}

// commandsFactory builds the platform commands for a run. Tests replace it.
type commandsFactory func(opts *rootFlags, logger *zap.Logger) (*platform.Commands, func())

func defaultCommands(opts *rootFlags, logger *zap.Logger) (*platform.Commands, func()) {
	bus := platform.OpenDesktopBus(!opts.noBus, logger)
	return platform.NewCommands(bus, logger), func() { _ = bus.Close() }
}

func newListCmd(opts *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list <directory>",
		Short: "List csv sessions in a directory, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.FromEnv(opts.logLevel)
			defer func() { _ = logger.Sync() }()

			// Listing never touches the bus.
			commands := platform.NewCommandsWith(platform.NewSessionLister(), nil, logger)
			sessions, err := commands.ReadFlightData(args[0])
			if err != nil {
				return err
			}
			for _, s := range sessions {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func newRevealCmd(opts *rootFlags, factory commandsFactory) *cobra.Command {
	if factory == nil {
		factory = defaultCommands
	}
	return &cobra.Command{
		Use:   "reveal <path>",
		Short: "Show a file or folder in the native file manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.FromEnv(opts.logLevel)
			defer func() { _ = logger.Sync() }()

			commands, closeFn := factory(opts, logger)
			defer closeFn()
			return commands.ShowItemInFolder(args[0])
		},
	}
}
