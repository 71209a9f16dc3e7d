package session

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/mbikovitsky/beyond-ssh/pkg/logging"
	"github.com/mbikovitsky/beyond-ssh/pkg/process"
	"github.com/mbikovitsky/beyond-ssh/pkg/protocol"
	"github.com/mbikovitsky/beyond-ssh/pkg/tools/ssh"
	"github.com/mbikovitsky/beyond-ssh/pkg/url"
)

const (
	// tunnelKillDelay is the duration to wait for a tunneling SSH process to
	// exit on its own during teardown before killing it.
	tunnelKillDelay = 5 * time.Second
)

// Dispatcher drives the remote half of a comparison session. It obtains a
// connection to the session server, receives the single comparison request,
// rewrites the request's paths into SFTP URLs, invokes the comparison tool,
// and reports the tool's exit code back to the server.
type Dispatcher struct {
	// logger is the dispatcher's logger.
	logger *logging.Logger
	// address is the session server's host. It doubles as the hostname
	// embedded in rewritten SFTP URLs.
	address string
	// port is the session server's port.
	port uint16
	// username is the username embedded in rewritten SFTP URLs and used for
	// SSH tunneling.
	username string
	// toolPath is the comparison tool invocation path.
	toolPath string
	// tunneled indicates whether to reach the server through an SSH tunnel
	// rather than a direct TCP connection.
	tunneled bool
}

// NewDispatcher creates a dispatcher targeting the session server at the
// specified address and port.
func NewDispatcher(logger *logging.Logger, address string, port uint16, username, toolPath string, tunneled bool) (*Dispatcher, error) {
	// Validate parameters.
	if address == "" {
		return nil, errors.New("empty address")
	} else if port == 0 {
		return nil, errors.New("invalid port")
	} else if username == "" {
		return nil, errors.New("empty username")
	} else if toolPath == "" {
		return nil, errors.New("empty comparison tool path")
	}

	// Success.
	return &Dispatcher{
		logger:   logger,
		address:  address,
		port:     port,
		username: username,
		toolPath: toolPath,
		tunneled: tunneled,
	}, nil
}

// Run executes the dispatch. It returns an error if the session fails at any
// point; a non-zero comparison tool exit code is not a failure.
func (d *Dispatcher) Run() error {
	// Establish the transport connection and defer its closure. For tunneled
	// transports, closure also tears down the SSH child process.
	connection, err := d.dial()
	if err != nil {
		return errors.Wrap(err, "unable to connect to session server")
	}
	defer connection.Close()

	// Perform the exchange.
	return d.run(connection)
}

// run performs the request/result exchange on an established connection.
func (d *Dispatcher) run(connection net.Conn) error {
	// Receive the request. Failure here is fatal: the server only ever issues
	// a single request, and there's no recovery protocol.
	request, err := protocol.ReadRequest(connection)
	if err != nil {
		return errors.Wrap(err, "unable to receive request")
	}
	d.logger.Infof("Received %s request", request.Operation)

	// Rewrite the request's paths into SFTP URLs, preserving order.
	arguments := make([]string, len(request.Paths))
	for i, path := range request.Paths {
		remote := &url.URL{
			Username: d.username,
			Hostname: d.address,
			Path:     path,
		}
		if err := remote.EnsureValid(); err != nil {
			return errors.Wrap(err, "invalid rewritten URL")
		}
		arguments[i] = remote.Format()
	}

	// Invoke the comparison tool. A non-zero exit code is a comparison
	// result, not a dispatch failure, so only invocation failures are fatal
	// here.
	result, err := d.invokeTool(arguments)
	if err != nil {
		return errors.Wrap(err, "unable to invoke comparison tool")
	}
	d.logger.Infof("Comparison tool exited with code %d", result)

	// Report the result code to the server.
	if err := protocol.WriteResult(connection, result); err != nil {
		return errors.Wrap(err, "unable to transmit result code")
	}

	// Success.
	return nil
}

// invokeTool runs the comparison tool with the specified arguments and
// returns its exit code. The tool's standard input/output/error are inherited
// so that its diagnostics remain visible.
func (d *Dispatcher) invokeTool(arguments []string) (int32, error) {
	// Create the tool process.
	tool := exec.Command(d.toolPath, arguments...)
	tool.Stdin = os.Stdin
	tool.Stdout = os.Stdout
	tool.Stderr = os.Stderr

	// Run the tool, treating a non-zero exit as a result rather than an
	// error.
	d.logger.Debugf("Invoking %s with arguments %v", d.toolPath, arguments)
	if err := tool.Run(); err != nil {
		if code, codeErr := process.ExitCodeForError(err); codeErr == nil {
			return int32(code), nil
		}
		return 0, err
	}

	// A nil error indicates a zero exit code.
	return 0, nil
}

// dial establishes the transport connection to the session server.
func (d *Dispatcher) dial() (net.Conn, error) {
	if d.tunneled {
		return d.dialTunnel()
	}
	return d.dialDirect()
}

// dialDirect establishes a direct TCP connection to the session server.
func (d *Dispatcher) dialDirect() (net.Conn, error) {
	target := net.JoinHostPort(d.address, strconv.Itoa(int(d.port)))
	d.logger.Debug("Connecting directly to ", target)
	return net.Dial("tcp", target)
}

// dialTunnel connects to the session server by spawning an SSH process in
// stdio forwarding mode and wrapping its standard input/output as the
// connection. The forwarding destination is loopback because the tunnel's
// exit is on the server's own machine.
func (d *Dispatcher) dialTunnel() (net.Conn, error) {
	// Compute the SSH target and forwarding destination.
	target := fmt.Sprintf("%s@%s", d.username, d.address)
	destination := fmt.Sprintf("localhost:%d", d.port)
	d.logger.Debugf("Tunneling to %s via %s", destination, target)

	// Create the SSH process.
	sshCommand, err := ssh.SSHCommand(context.Background(), "-W", destination, target)
	if err != nil {
		return nil, errors.Wrap(err, "unable to set up SSH invocation")
	}

	// Route the SSH process' standard error through our logger so that
	// connection diagnostics remain visible.
	sshCommand.Stderr = d.logger.Sublogger("ssh").Writer()

	// Create a connection around the process' standard input/output. This
	// must be done before the process is started.
	connection, err := process.NewConnection(sshCommand, tunnelKillDelay)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create SSH process connection")
	}

	// Start the SSH process.
	if err := sshCommand.Start(); err != nil {
		return nil, errors.Wrap(err, "unable to start SSH process")
	}

	// Success.
	return connection, nil
}
