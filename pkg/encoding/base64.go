package encoding

import (
	"encoding/base64"
)

// EncodeBase64 is shorthand for base64.StdEncoding.EncodeToString. The
// standard (padded) alphabet is used because encoded values are consumed by
// external automation that expects RFC 4648 standard encoding.
func EncodeBase64(value []byte) string {
	return base64.StdEncoding.EncodeToString(value)
}

// DecodeBase64 is shorthand for base64.StdEncoding.DecodeString.
func DecodeBase64(value string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(value)
}
