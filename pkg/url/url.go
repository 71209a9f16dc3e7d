package url

import (
	"fmt"

	"github.com/pkg/errors"
)

// URL represents a remote file location reachable over SFTP.
type URL struct {
	// Username is the user under which files should be accessed.
	Username string
	// Hostname is the address of the host serving the files. It is used
	// verbatim, so it may be a DNS name or an IP address literal.
	Hostname string
	// Path is the path to the file on the serving host, as seen by that host.
	Path string
}

// EnsureValid ensures that URL's invariants are respected.
func (u *URL) EnsureValid() error {
	// A nil URL is not valid.
	if u == nil {
		return errors.New("nil URL")
	}

	// Ensure that the username and hostname are present. The path may be
	// empty since the underlying transfer protocol allows it.
	if u.Username == "" {
		return errors.New("empty username")
	} else if u.Hostname == "" {
		return errors.New("empty hostname")
	}

	// Success.
	return nil
}

// Format formats a URL into the sftp pseudo-URL form understood by Beyond
// Compare profiles. The path is appended verbatim after the separating slash,
// so absolute paths yield a double slash after the hostname. That shape is
// intentional and is what the consuming tool expects.
func (u *URL) Format() string {
	return fmt.Sprintf("sftp://%s@%s/%s", u.Username, u.Hostname, u.Path)
}
