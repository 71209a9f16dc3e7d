package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mbikovitsky/beyond-ssh/pkg/protocol"
)

// mergeMain is the entry point for the merge command.
func mergeMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 4 {
		return errors.New("merge requires exactly four paths")
	}

	// Load the global configuration.
	globalConfiguration, err := loadConfiguration()
	if err != nil {
		return err
	}

	// Determine the message format.
	messageFormat := mergeConfiguration.effectiveMessageFormat(command.Flags(), globalConfiguration)

	// Serve the comparison session.
	return serveComparison(protocol.OperationMerge, arguments, messageFormat)
}

// mergeCommand is the merge command.
var mergeCommand = &cobra.Command{
	Use:          "merge <local> <remote> <base> <merged>",
	Short:        "Serve a three-way merge of the specified files",
	RunE:         mergeMain,
	SilenceUsage: true,
}

// mergeConfiguration stores configuration for the merge command.
var mergeConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// serveFlags store flags shared by the session-serving commands.
	serveFlags
}

func init() {
	// Grab a handle for the command line flags.
	flags := mergeCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&mergeConfiguration.help, "help", "h", false, "Show help information")

	// Wire up serving flags.
	mergeConfiguration.serveFlags.register(flags)
}
