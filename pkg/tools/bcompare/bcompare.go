package bcompare

import (
	"os"
)

// CommandPath returns the path to use for invoking Beyond Compare. It will
// use the BEYOND_SSH_BCOMPARE_PATH environment variable if provided,
// otherwise falling back to a platform-specific default. It does not verify
// that the target exists, since invocation will surface that failure with a
// more useful error.
func CommandPath() string {
	// If BEYOND_SSH_BCOMPARE_PATH is specified, then use it directly.
	if path := os.Getenv("BEYOND_SSH_BCOMPARE_PATH"); path != "" {
		return path
	}

	// Otherwise fall back to the platform-specific default.
	return commandPathForPlatform()
}
