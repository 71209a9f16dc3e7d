package main

import (
	"fmt"
	"os"

	"github.com/mbikovitsky/beyond-ssh/cmd"

	"github.com/mbikovitsky/beyond-ssh/pkg/logging"
	"github.com/mbikovitsky/beyond-ssh/pkg/protocol"
	"github.com/mbikovitsky/beyond-ssh/pkg/session"
)

// serveComparison runs a single comparison session for the specified operation
// and paths. If the session completes with a non-zero comparison tool exit
// code, then this function terminates the current process with a matching exit
// code so that the invoking version control system sees the tool's verdict.
func serveComparison(operation protocol.Operation, paths []string, messageFormat string) error {
	// Create the session server.
	server, err := session.NewServer(
		logging.RootLogger.Sublogger("server"),
		operation,
		paths,
		messageFormat,
	)
	if err != nil {
		return fmt.Errorf("unable to create session server: %w", err)
	}

	// Run the session to completion.
	result, err := server.Run()
	if err != nil {
		return fmt.Errorf("unable to run session: %w", err)
	}

	// Forward the comparison tool's exit code. Negative codes indicate that
	// the tool was terminated without exiting, so those are converted to a
	// generic failure code.
	if result < 0 {
		cmd.Warning("comparison tool terminated abnormally")
		os.Exit(1)
	} else if result != 0 {
		os.Exit(int(result))
	}

	// Success.
	return nil
}
