package protocol

import (
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	// maximumPathLength is the maximum path length that will be accepted when
	// decoding a request. It exists to avoid arbitrary allocations on
	// malformed or malicious streams.
	maximumPathLength = 1024 * 1024
)

var (
	// ErrUnknownOperation indicates that an operation tag does not correspond
	// to any known protocol operation.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrInvalidPathEncoding indicates that a path is not valid UTF-8.
	ErrInvalidPathEncoding = errors.New("path is not valid UTF-8")
)

// Request pairs a comparison operation with its path arguments. Path order is
// significant and is preserved by the wire encoding.
type Request struct {
	// Operation is the requested operation.
	Operation Operation
	// Paths are the operation's path arguments. Their count must match the
	// operation's arity. Empty paths are allowed.
	Paths []string
}

// EnsureValid ensures that Request's invariants are respected.
func (r *Request) EnsureValid() error {
	// A nil request is not valid.
	if r == nil {
		return errors.New("nil request")
	}

	// Ensure that the operation is supported.
	if !r.Operation.Supported() {
		return ErrUnknownOperation
	}

	// Ensure that the path count matches the operation's arity.
	if len(r.Paths) != r.Operation.PathCount() {
		return errors.Errorf(
			"path count (%d) does not match operation arity (%d)",
			len(r.Paths), r.Operation.PathCount(),
		)
	}

	// Ensure that all paths can be encoded.
	for _, path := range r.Paths {
		if !utf8.ValidString(path) {
			return ErrInvalidPathEncoding
		}
	}

	// Success.
	return nil
}

// WriteRequest encodes a request to the specified writer. The encoding
// consists of the operation's tag byte followed by each path as a 32-bit
// big-endian unsigned length and that many bytes of UTF-8 data. The entire
// request is transmitted with a single write.
func WriteRequest(writer io.Writer, request *Request) error {
	// Validate the request.
	if err := request.EnsureValid(); err != nil {
		return errors.Wrap(err, "invalid request")
	}

	// Compute the encoded size.
	size := 1
	for _, path := range request.Paths {
		size += 4 + len(path)
	}

	// Encode into a single buffer.
	buffer := make([]byte, 0, size)
	buffer = append(buffer, byte(request.Operation))
	for _, path := range request.Paths {
		var length [4]byte
		binary.BigEndian.PutUint32(length[:], uint32(len(path)))
		buffer = append(buffer, length[:]...)
		buffer = append(buffer, path...)
	}

	// Transmit the buffer.
	if _, err := writer.Write(buffer); err != nil {
		return errors.Wrap(err, "unable to transmit request")
	}

	// Success.
	return nil
}

// ReadRequest decodes a request from the specified reader. The operation tag
// is validated before any paths are read, so an unknown tag never consumes
// additional stream data. A truncated stream results in an error.
func ReadRequest(reader io.Reader) (*Request, error) {
	// Read and validate the operation tag.
	var tag [1]byte
	if _, err := io.ReadFull(reader, tag[:]); err != nil {
		return nil, errors.Wrap(err, "unable to read operation tag")
	}
	operation := Operation(tag[0])
	if !operation.Supported() {
		return nil, errors.Wrapf(ErrUnknownOperation, "received tag 0x%02x", tag[0])
	}

	// Read the operation's paths. The path count is implied by the operation
	// and never appears on the wire.
	paths := make([]string, operation.PathCount())
	for i := range paths {
		// Read the path length.
		var lengthBytes [4]byte
		if _, err := io.ReadFull(reader, lengthBytes[:]); err != nil {
			return nil, errors.Wrap(err, "unable to read path length")
		}
		length := binary.BigEndian.Uint32(lengthBytes[:])

		// Enforce the maximum path length.
		if length > maximumPathLength {
			return nil, errors.Errorf(
				"path length (%d) exceeds maximum allowed (%d)",
				length, maximumPathLength,
			)
		}

		// Read and decode the path. Zero-length paths are legal and yield
		// empty strings.
		pathBytes := make([]byte, length)
		if _, err := io.ReadFull(reader, pathBytes); err != nil {
			return nil, errors.Wrap(err, "unable to read path")
		}
		if !utf8.Valid(pathBytes) {
			return nil, errors.Wrap(ErrInvalidPathEncoding, "unable to decode path")
		}
		paths[i] = string(pathBytes)
	}

	// Success.
	return &Request{Operation: operation, Paths: paths}, nil
}
