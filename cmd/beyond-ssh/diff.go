package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mbikovitsky/beyond-ssh/pkg/protocol"
)

// diffMain is the entry point for the diff command.
func diffMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("diff requires exactly two paths")
	}

	// Load the global configuration.
	globalConfiguration, err := loadConfiguration()
	if err != nil {
		return err
	}

	// Determine the message format.
	messageFormat := diffConfiguration.effectiveMessageFormat(command.Flags(), globalConfiguration)

	// Serve the comparison session.
	return serveComparison(protocol.OperationDiff, arguments, messageFormat)
}

// diffCommand is the diff command.
var diffCommand = &cobra.Command{
	Use:          "diff <local> <remote>",
	Short:        "Serve a two-way comparison of the specified files",
	RunE:         diffMain,
	SilenceUsage: true,
}

// diffConfiguration stores configuration for the diff command.
var diffConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// serveFlags store flags shared by the session-serving commands.
	serveFlags
}

func init() {
	// Grab a handle for the command line flags.
	flags := diffCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&diffConfiguration.help, "help", "h", false, "Show help information")

	// Wire up serving flags.
	diffConfiguration.serveFlags.register(flags)
}
