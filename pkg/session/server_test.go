package session

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/mbikovitsky/beyond-ssh/pkg/protocol"
)

func TestNewServerArityMismatch(t *testing.T) {
	if _, err := NewServer(nil, protocol.OperationDiff, []string{"/a"}, DefaultMessageFormat); err == nil {
		t.Error("diff server accepted wrong path count")
	}
	if _, err := NewServer(nil, protocol.OperationMerge, []string{"/a", "/b"}, DefaultMessageFormat); err == nil {
		t.Error("merge server accepted wrong path count")
	}
}

func TestNewServerUnsupportedOperation(t *testing.T) {
	if _, err := NewServer(nil, protocol.Operation(0x09), []string{"/a", "/b"}, DefaultMessageFormat); err == nil {
		t.Error("server accepted unsupported operation")
	}
}

func TestNewServerNormalizesPaths(t *testing.T) {
	// Compute the current working directory.
	workingDirectory, err := os.Getwd()
	if err != nil {
		t.Fatal("unable to compute working directory:", err)
	}

	// Create a server with a relative path and an empty path.
	server, err := NewServer(nil, protocol.OperationDiff, []string{"relative.txt", ""}, DefaultMessageFormat)
	if err != nil {
		t.Fatal("unable to create server:", err)
	}

	// Verify that both were normalized against the working directory.
	if server.request.Paths[0] != filepath.Join(workingDirectory, "relative.txt") {
		t.Error("relative path not normalized:", server.request.Paths[0])
	}
	if server.request.Paths[1] != workingDirectory {
		t.Error("empty path did not normalize to working directory:", server.request.Paths[1])
	}
}

func TestListen(t *testing.T) {
	// Create a listener and defer its closure.
	listener, err := listen()
	if err != nil {
		t.Fatal("unable to create listener:", err)
	}
	defer listener.Close()

	// Ensure that it's bound to a concrete TCP port.
	if address, ok := listener.Addr().(*net.TCPAddr); !ok {
		t.Error("listener address is not TCP")
	} else if address.Port == 0 {
		t.Error("listener bound to port zero")
	}
}

func TestServeClientDisconnect(t *testing.T) {
	// Create a server.
	server, err := NewServer(nil, protocol.OperationDiff, []string{"/a", "/b"}, DefaultMessageFormat)
	if err != nil {
		t.Fatal("unable to create server:", err)
	}

	// Bind a loopback listener.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal("unable to create listener:", err)
	}
	defer listener.Close()
	port := listener.Addr().(*net.TCPAddr).Port

	// Connect and immediately disconnect without exchanging anything.
	go func() {
		if connection, err := net.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port)); err == nil {
			connection.Close()
		}
	}()

	// Ensure that the session fails rather than fabricating a result.
	if _, err := server.serve(listener); err == nil {
		t.Error("session succeeded with disconnecting client")
	}
}
