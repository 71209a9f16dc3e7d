package process

import (
	"os/exec"
	"testing"

	"github.com/pkg/errors"
)

func TestExitCodeForNilError(t *testing.T) {
	if _, err := ExitCodeForError(nil); err == nil {
		t.Error("exit code was returned for nil error")
	}
}

func TestExitCodeForInvalidError(t *testing.T) {
	if _, err := ExitCodeForError(errors.New("not an exec error")); err == nil {
		t.Error("exit code was returned for invalid error")
	}
}

func TestExitCode(t *testing.T) {
	// Run the go tool with an invalid subcommand, which exits with a code of
	// 2, and verify that the code is extracted correctly.
	if err := exec.Command("go", "beyond-ssh-test-invalid").Run(); err == nil {
		t.Fatal("expected non-nil error when running invalid Go command")
	} else if code, codeErr := ExitCodeForError(err); codeErr != nil {
		t.Fatal("unable to extract error exit code:", codeErr)
	} else if code != 2 {
		t.Error("exit code did not match expected")
	}
}
