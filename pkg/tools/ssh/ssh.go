package ssh

import (
	"context"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/mbikovitsky/beyond-ssh/pkg/process"
)

// sshCommandPath returns the full path to use for invoking ssh. It will use
// the BEYOND_SSH_SSH_PATH environment variable if provided, otherwise falling
// back to a platform-specific implementation.
func sshCommandPath() (string, error) {
	// If BEYOND_SSH_SSH_PATH is specified, then use it to perform the lookup.
	if searchPath := os.Getenv("BEYOND_SSH_SSH_PATH"); searchPath != "" {
		return process.FindCommand("ssh", []string{searchPath})
	}

	// Otherwise fall back to the platform-specific implementation.
	return sshCommandPathForPlatform()
}

// SSHCommand prepares (but does not start) an SSH command with the specified
// arguments and scoped to the lifetime of the provided context.
func SSHCommand(context context.Context, args ...string) (*exec.Cmd, error) {
	// Identify the command name or path.
	nameOrPath, err := sshCommandPath()
	if err != nil {
		return nil, errors.Wrap(err, "unable to identify 'ssh' command")
	}

	// Create the command.
	return exec.CommandContext(context, nameOrPath, args...), nil
}
