package main

import (
	"os"

	"github.com/fatih/color"

	isatty "github.com/mattn/go-isatty"

	"github.com/spf13/cobra"

	"github.com/mbikovitsky/beyond-ssh/cmd"

	"github.com/mbikovitsky/beyond-ssh/pkg/beyondssh"
)

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, _ []string) error {
	// If no command was specified, then just print help information. Positional
	// arguments can't reach this point because they'll be mistaken for
	// subcommands and generate an error.
	command.Help()

	// Success.
	return nil
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:           "beyond-ssh",
	Version:       beyondssh.Version,
	Short:         "Bridge version control diff and merge requests to Beyond Compare over SSH",
	RunE:          rootMain,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Disable Cobra's use of mousetrap. This tool is launched by version
	// control systems and terminal sessions, not from Explorer.
	cobra.MousetrapHelpText = ""

	// Disable colorized output if standard error isn't a terminal, since
	// that's where warning, error, and log output is written. The color
	// package bases its own check on standard output.
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("beyond-ssh version {{ .Version }}\n")

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Hide Cobra's completion command.
	rootCommand.CompletionOptions.HiddenDefaultCmd = true

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		diffCommand,
		mergeCommand,
		connectCommand,
		versionCommand,
		legalCommand,
	)
}

func main() {
	// Execute the root command and print any resulting error. Cobra's own
	// error printing is silenced so that errors from every command render
	// consistently with warning output.
	if err := rootCommand.Execute(); err != nil {
		cmd.Fatal(err)
	}
}
