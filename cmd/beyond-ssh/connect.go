package main

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mbikovitsky/beyond-ssh/pkg/logging"
	"github.com/mbikovitsky/beyond-ssh/pkg/session"
	"github.com/mbikovitsky/beyond-ssh/pkg/tools/bcompare"
)

// connectMain is the entry point for the connect command.
func connectMain(command *cobra.Command, arguments []string) error {
	// Validate and parse arguments.
	if len(arguments) != 2 {
		return errors.New("connect requires an address and a port")
	}
	address := arguments[0]
	port, err := strconv.ParseUint(arguments[1], 10, 16)
	if err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}

	// Load the global configuration.
	globalConfiguration, err := loadConfiguration()
	if err != nil {
		return err
	}

	// Determine the tunneling behavior, preferring the flag, then the
	// configuration file.
	tunnel := connectConfiguration.tunnel
	if !command.Flags().Changed("tunnel") && globalConfiguration.Connect.Tunnel {
		tunnel = true
	}

	// Determine the username, preferring the flag, then the configuration
	// file, and finally the current user.
	username := connectConfiguration.user
	if !command.Flags().Changed("user") && globalConfiguration.Connect.User != "" {
		username = globalConfiguration.Connect.User
	}
	if username == "" {
		current, err := user.Current()
		if err != nil {
			return fmt.Errorf("unable to determine current user: %w", err)
		}
		username = current.Username
	}

	// Determine the comparison tool path, preferring the flag, then the
	// configuration file, and finally the platform default.
	toolPath := connectConfiguration.command
	if !command.Flags().Changed("command") && globalConfiguration.Connect.Command != "" {
		toolPath = globalConfiguration.Connect.Command
	}

	// Create the session dispatcher.
	dispatcher, err := session.NewDispatcher(
		logging.RootLogger.Sublogger("dispatcher"),
		address,
		uint16(port),
		username,
		toolPath,
		tunnel,
	)
	if err != nil {
		return fmt.Errorf("unable to create session dispatcher: %w", err)
	}

	// Run the session to completion.
	if err := dispatcher.Run(); err != nil {
		return fmt.Errorf("unable to run session: %w", err)
	}

	// Success.
	return nil
}

// connectCommand is the connect command.
var connectCommand = &cobra.Command{
	Use:          "connect <address> <port>",
	Short:        "Connect to a session server and run the comparison tool",
	RunE:         connectMain,
	SilenceUsage: true,
}

// connectConfiguration stores configuration for the connect command.
var connectConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// tunnel indicates whether or not to reach the server through an SSH
	// tunnel rather than a direct TCP connection.
	tunnel bool
	// user is the username embedded in SFTP URLs and used for tunneling.
	user string
	// command is the comparison tool invocation path.
	command string
}

func init() {
	// Grab a handle for the command line flags.
	flags := connectCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&connectConfiguration.help, "help", "h", false, "Show help information")

	// Wire up connect command flags.
	flags.BoolVarP(
		&connectConfiguration.tunnel,
		"tunnel", "t",
		false,
		"Reach the server through an SSH tunnel",
	)
	flags.StringVarP(
		&connectConfiguration.user,
		"user", "u",
		"",
		"Specify the username for SFTP URLs and tunneling (defaults to the current user)",
	)
	flags.StringVarP(
		&connectConfiguration.command,
		"command", "x",
		bcompare.CommandPath(),
		"Specify the comparison tool invocation path",
	)
}
