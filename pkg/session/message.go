package session

import (
	"strconv"
	"strings"

	"github.com/mbikovitsky/beyond-ssh/pkg/encoding"
)

const (
	// DefaultMessageFormat is the default format for the port announcement
	// message.
	DefaultMessageFormat = "Listening on port {port}"
)

// formatListenMessage renders the port announcement message for the specified
// format string. The format may contain {port} (replaced by the port in
// decimal), {port_b64} (replaced by the Base64 encoding of the decimal text),
// and {e} and {b} (replaced by the escape and bell characters, for formats
// that emit terminal control sequences). Substitution is raw: the format is
// an integration hook for automation that watches process output, so no
// escaping or sanitization is applied.
func formatListenMessage(format string, port uint16) string {
	portText := strconv.Itoa(int(port))
	return strings.NewReplacer(
		"{port_b64}", encoding.EncodeBase64([]byte(portText)),
		"{port}", portText,
		"{e}", "\x1b",
		"{b}", "\a",
	).Replace(format)
}
