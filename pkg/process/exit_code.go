package process

import (
	"errors"
	"os/exec"
)

// ExitCodeForError extracts the process exit code from an error returned by
// os/exec.Cmd.Run or os/exec.Cmd.Wait. It fails if the error does not
// represent a process exit (e.g. if it represents a failure to start the
// process). For processes terminated by a signal, the extracted code is -1.
func ExitCodeForError(err error) (int, error) {
	// Watch for exit errors, which are the only errors bearing exit
	// information.
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, errors.New("error does not contain exit information")
	}

	// Success.
	return exitErr.ExitCode(), nil
}
