package beyondssh

import (
	"os"
)

// DebugEnabled controls whether or not debugging is enabled for Beyond SSH. It
// is set automatically based on the BEYOND_SSH_DEBUG environment variable.
var DebugEnabled bool

func init() {
	// Check whether or not debugging should be enabled.
	DebugEnabled = os.Getenv("BEYOND_SSH_DEBUG") == "1"
}
