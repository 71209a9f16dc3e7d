package process

import (
	"io"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestConnectionReadOutput(t *testing.T) {
	// Create a command that writes to standard output and exits.
	command := exec.Command("go", "version")

	// Wrap its standard input/output in a connection.
	connection, err := NewConnection(command, 100*time.Millisecond)
	if err != nil {
		t.Fatal("unable to create connection:", err)
	}

	// Start the process.
	if err := command.Start(); err != nil {
		t.Fatal("unable to start process:", err)
	}

	// Read all process output through the connection.
	output, err := io.ReadAll(connection)
	if err != nil {
		t.Fatal("unable to read process output:", err)
	}
	if !strings.Contains(string(output), "go version") {
		t.Error("process output does not match expected:", string(output))
	}

	// Close the connection. The process has already exited at this point, so
	// teardown should succeed without a kill.
	if err := connection.Close(); err != nil {
		t.Error("unable to close connection:", err)
	}
}

func TestConnectionCloseBeforeStart(t *testing.T) {
	// Create a connection around an unstarted process.
	connection, err := NewConnection(exec.Command("go", "version"), 0)
	if err != nil {
		t.Fatal("unable to create connection:", err)
	}

	// Ensure that closure fails.
	if connection.Close() == nil {
		t.Error("close succeeded for unstarted process")
	}
}

func TestConnectionNegativeKillDelay(t *testing.T) {
	// Ensure that a negative kill delay is rejected.
	defer func() {
		if recover() == nil {
			t.Error("negative kill delay accepted")
		}
	}()
	NewConnection(exec.Command("go", "version"), -1*time.Second)
}

func TestConnectionAddresses(t *testing.T) {
	// Create a connection.
	connection, err := NewConnection(exec.Command("go", "version"), 0)
	if err != nil {
		t.Fatal("unable to create connection:", err)
	}

	// Verify address behavior.
	if connection.LocalAddr().Network() != "standard input/output" {
		t.Error("local address network does not match expected")
	}
	if connection.RemoteAddr().String() != "standard input/output" {
		t.Error("remote address does not match expected")
	}

	// Verify that deadlines are unsupported.
	if connection.SetDeadline(time.Now()) == nil {
		t.Error("deadline setting unexpectedly supported")
	}
	if connection.SetReadDeadline(time.Now()) == nil {
		t.Error("read deadline setting unexpectedly supported")
	}
	if connection.SetWriteDeadline(time.Now()) == nil {
		t.Error("write deadline setting unexpectedly supported")
	}
}
