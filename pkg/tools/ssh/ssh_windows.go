package ssh

import (
	"os/exec"

	"github.com/mbikovitsky/beyond-ssh/pkg/process"
)

// commandSearchPaths specifies locations on Windows where we might find an
// ssh.exe binary if there isn't one in the user's path.
var commandSearchPaths = []string{
	`C:\Windows\System32\OpenSSH`,
	`C:\Program Files\Git\usr\bin`,
	`C:\Program Files (x86)\Git\usr\bin`,
	`C:\msys32\usr\bin`,
	`C:\msys64\usr\bin`,
	`C:\cygwin\bin`,
	`C:\cygwin64\bin`,
}

// sshCommandPathForPlatform searches for a suitable ssh command implementation
// on Windows, preferring one in the user's path.
func sshCommandPathForPlatform() (string, error) {
	// Check for ssh in the user's path first. Windows 10 and later ship with
	// an OpenSSH client that's usually registered there.
	if path, err := exec.LookPath("ssh"); err == nil {
		return path, nil
	}

	// Otherwise search the known install locations.
	return process.FindCommand("ssh", commandSearchPaths)
}
