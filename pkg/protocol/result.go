package protocol

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// WriteResult encodes a comparison tool result code to the specified writer
// as a 32-bit big-endian signed integer.
func WriteResult(writer io.Writer, result int32) error {
	// Encode the result.
	var buffer [4]byte
	binary.BigEndian.PutUint32(buffer[:], uint32(result))

	// Transmit the buffer.
	if _, err := writer.Write(buffer[:]); err != nil {
		return errors.Wrap(err, "unable to transmit result code")
	}

	// Success.
	return nil
}

// ReadResult decodes a comparison tool result code from the specified reader.
// A truncated stream results in an error.
func ReadResult(reader io.Reader) (int32, error) {
	// Read the encoded result.
	var buffer [4]byte
	if _, err := io.ReadFull(reader, buffer[:]); err != nil {
		return 0, errors.Wrap(err, "unable to read result code")
	}

	// Success.
	return int32(binary.BigEndian.Uint32(buffer[:])), nil
}
