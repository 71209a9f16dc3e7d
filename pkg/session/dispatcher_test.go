package session

import (
	"errors"
	"io"
	"net"
	"path/filepath"
	"testing"

	"github.com/mbikovitsky/beyond-ssh/pkg/protocol"
)

func TestNewDispatcherValidation(t *testing.T) {
	// Set up test cases, each with one invalid parameter.
	testCases := []struct {
		address  string
		port     uint16
		username string
		toolPath string
	}{
		{"", 6600, "bob", "/usr/bin/bcompare"},
		{"example.org", 0, "bob", "/usr/bin/bcompare"},
		{"example.org", 6600, "", "/usr/bin/bcompare"},
		{"example.org", 6600, "bob", ""},
	}

	// Process test cases.
	for _, testCase := range testCases {
		_, err := NewDispatcher(nil, testCase.address, testCase.port, testCase.username, testCase.toolPath, false)
		if err == nil {
			t.Error("invalid dispatcher parameters accepted")
		}
	}
}

func TestDispatcherUnknownTag(t *testing.T) {
	// Create a synchronous in-memory connection.
	client, server := net.Pipe()
	defer client.Close()

	// Feed an unknown operation tag from the server side.
	go func() {
		server.Write([]byte{0x03})
		server.Close()
	}()

	// Ensure that the dispatch fails with the appropriate error.
	dispatcher, err := NewDispatcher(nil, "example.org", 6600, "bob", "/does/not/matter", false)
	if err != nil {
		t.Fatal("unable to create dispatcher:", err)
	}
	if err := dispatcher.run(client); !errors.Is(err, protocol.ErrUnknownOperation) {
		t.Error("dispatch returned unexpected error:", err)
	}
}

func TestDispatcherImmediateEOF(t *testing.T) {
	// Create a synchronous in-memory connection and close the server side
	// immediately so that the first read yields EOF.
	client, server := net.Pipe()
	server.Close()
	defer client.Close()

	// Ensure that the dispatch treats the EOF as fatal.
	dispatcher, err := NewDispatcher(nil, "example.org", 6600, "bob", "/does/not/matter", false)
	if err != nil {
		t.Fatal("unable to create dispatcher:", err)
	}
	if err := dispatcher.run(client); !errors.Is(err, io.EOF) {
		t.Error("dispatch returned unexpected error:", err)
	}
}

func TestDispatcherToolInvocationFailure(t *testing.T) {
	// Create a synchronous in-memory connection and feed a valid request.
	client, server := net.Pipe()
	defer client.Close()
	go func() {
		protocol.WriteRequest(server, &protocol.Request{
			Operation: protocol.OperationDiff,
			Paths:     []string{"/a", "/b"},
		})
	}()

	// Dispatch with a non-existent tool and ensure that the failure to spawn
	// is treated as fatal rather than reported as a result code.
	dispatcher, err := NewDispatcher(nil, "example.org", 6600, "bob", filepath.Join(t.TempDir(), "missing"), false)
	if err != nil {
		t.Fatal("unable to create dispatcher:", err)
	}
	if dispatcher.run(client) == nil {
		t.Error("dispatch succeeded with non-existent tool")
	}
}

func TestDispatcherDirectDialFailure(t *testing.T) {
	// Bind and immediately close a loopback listener to obtain a port with
	// nothing listening on it.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal("unable to create listener:", err)
	}
	port := uint16(listener.Addr().(*net.TCPAddr).Port)
	listener.Close()

	// Ensure that dispatch fails when the connection is refused.
	dispatcher, err := NewDispatcher(nil, "127.0.0.1", port, "bob", "/does/not/matter", false)
	if err != nil {
		t.Fatal("unable to create dispatcher:", err)
	}
	if dispatcher.Run() == nil {
		t.Error("dispatch succeeded with no listening server")
	}
}
