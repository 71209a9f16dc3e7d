package identifier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mbikovitsky/beyond-ssh/pkg/encoding"
	"github.com/mbikovitsky/beyond-ssh/pkg/random"
)

const (
	// PrefixSession is the prefix used for session identifiers.
	PrefixSession = "sess_"

	// requiredPrefixLength is the required length for identifier prefixes,
	// excluding the trailing underscore separator.
	requiredPrefixLength = 4
	// collisionResistantLength is the number of random bytes used to ensure
	// collision-resistance in identifiers.
	collisionResistantLength = random.CollisionResistantLength
	// targetBase62Length is the length to which the Base62-encoded random
	// component of an identifier is left-padded. It is the maximum encoded
	// length for a value of collisionResistantLength bytes, i.e.
	// ceil(collisionResistantLength * 8 * log(2) / log(62)).
	targetBase62Length = 43
)

// New generates a new collision-resistant identifier with the specified
// prefix. The prefix must consist of requiredPrefixLength lowercase ASCII
// letters followed by an underscore separator.
func New(prefix string) (string, error) {
	// Validate the prefix.
	if len(prefix) != requiredPrefixLength+1 {
		return "", errors.New("prefix has invalid length")
	} else if prefix[requiredPrefixLength] != '_' {
		return "", errors.New("prefix lacks underscore separator")
	}
	for _, r := range prefix[:requiredPrefixLength] {
		if r < 'a' || r > 'z' {
			return "", errors.New("prefix contains invalid characters")
		}
	}

	// Create the random value.
	value, err := random.New(collisionResistantLength)
	if err != nil {
		return "", fmt.Errorf("unable to generate random value: %w", err)
	}

	// Encode the random value. Encoded values for inputs with leading zero
	// bytes can come up short of the target length, so left-pad with the zero
	// digit of the alphabet to keep identifier lengths uniform.
	encoded := encoding.EncodeBase62(value)
	if len(encoded) < targetBase62Length {
		encoded = strings.Repeat(string(encoding.Base62Alphabet[0]), targetBase62Length-len(encoded)) + encoded
	}

	// Success.
	return prefix + encoded, nil
}

// IsValid returns whether or not a string is a valid identifier. For
// compatibility with identifiers generated by older releases, it also accepts
// UUID-based identifiers in canonical lowercase form.
func IsValid(value string) bool {
	// Check for a legacy UUID-based identifier.
	if len(value) == 36 && value == strings.ToLower(value) {
		if _, err := uuid.Parse(value); err == nil {
			return true
		}
	}

	// Check the length.
	if len(value) != requiredPrefixLength+1+targetBase62Length {
		return false
	}

	// Check the prefix.
	if value[requiredPrefixLength] != '_' {
		return false
	}
	for _, r := range value[:requiredPrefixLength] {
		if r < 'a' || r > 'z' {
			return false
		}
	}

	// Check the encoded component.
	for _, r := range value[requiredPrefixLength+1:] {
		valid := (r >= '0' && r <= '9') ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z')
		if !valid {
			return false
		}
	}

	// Success.
	return true
}
