package session

import (
	"net"

	"github.com/pkg/errors"

	"github.com/mbikovitsky/beyond-ssh/pkg/filesystem"
	"github.com/mbikovitsky/beyond-ssh/pkg/identifier"
	"github.com/mbikovitsky/beyond-ssh/pkg/logging"
	"github.com/mbikovitsky/beyond-ssh/pkg/protocol"
)

// Server drives the local half of a comparison session. It listens on an
// ephemeral TCP port, announces the port, accepts a single client, issues the
// comparison request, and relays back the client's result code.
type Server struct {
	// logger is the server's logger.
	logger *logging.Logger
	// request is the single request issued to the connecting client.
	request *protocol.Request
	// messageFormat is the format for the port announcement message.
	messageFormat string
}

// NewServer creates a session server for the specified operation and paths.
// Paths are converted to absolute form immediately: they're resolved against
// the invoking process' working directory, and they must remain meaningful
// when later evaluated by a remote client.
func NewServer(logger *logging.Logger, operation protocol.Operation, paths []string, messageFormat string) (*Server, error) {
	// Normalize the paths.
	normalized := make([]string, len(paths))
	for i, path := range paths {
		if n, err := filesystem.Normalize(path); err != nil {
			return nil, errors.Wrap(err, "unable to normalize path")
		} else {
			normalized[i] = n
		}
	}

	// Create and validate the request.
	request := &protocol.Request{Operation: operation, Paths: normalized}
	if err := request.EnsureValid(); err != nil {
		return nil, errors.Wrap(err, "invalid session request")
	}

	// Success.
	return &Server{
		logger:        logger,
		request:       request,
		messageFormat: messageFormat,
	}, nil
}

// listen creates a TCP listener on an ephemeral port on all interfaces. It
// prefers an IPv6 wildcard socket (which also accepts IPv4 connections on
// dual-stack systems), falling back to the platform's default family.
func listen() (net.Listener, error) {
	if listener, err := net.Listen("tcp", "[::]:0"); err == nil {
		return listener, nil
	}
	return net.Listen("tcp", ":0")
}

// Run executes the session, returning the result code reported by the client.
// It returns an error if the session fails before a result code is received.
func (s *Server) Run() (int32, error) {
	// Create the listener and defer its closure.
	listener, err := listen()
	if err != nil {
		return 0, errors.Wrap(err, "unable to create listener")
	}
	defer listener.Close()

	// Serve a single session.
	return s.serve(listener)
}

// serve performs a single session exchange on the specified listener. The
// listener's lifetime remains the caller's responsibility.
func (s *Server) serve(listener net.Listener) (int32, error) {
	// Extract the bound port.
	address, ok := listener.Addr().(*net.TCPAddr)
	if !ok {
		return 0, errors.New("listener does not have a TCP address")
	}
	port := uint16(address.Port)

	// Announce the port before blocking in accept so that automation watching
	// our output can initiate the connection.
	s.logger.Info(formatListenMessage(s.messageFormat, port))

	// Accept a single client connection and defer its closure.
	connection, err := listener.Accept()
	if err != nil {
		return 0, errors.Wrap(err, "unable to accept client connection")
	}
	defer connection.Close()

	// Generate an identifier for the session and derive the session's logger.
	sessionID, err := identifier.New(identifier.PrefixSession)
	if err != nil {
		return 0, errors.Wrap(err, "unable to generate session identifier")
	}
	logger := s.logger.Sublogger(sessionID)
	logger.Info("Client connected from ", connection.RemoteAddr())

	// Issue the request.
	logger.Debugf("Issuing %s request", s.request.Operation)
	if err := protocol.WriteRequest(connection, s.request); err != nil {
		return 0, errors.Wrap(err, "unable to transmit request")
	}

	// Wait for the result code.
	result, err := protocol.ReadResult(connection)
	if err != nil {
		return 0, errors.Wrap(err, "unable to read result code")
	}
	logger.Infof("Comparison tool exited with code %d", result)

	// Success.
	return result, nil
}
