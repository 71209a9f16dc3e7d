package bcompare

// commandPathForPlatform returns the default Beyond Compare invocation path
// for macOS installs. The bcomp helper is the command line launcher that the
// macOS application bundle installs.
func commandPathForPlatform() string {
	return "/usr/local/bin/bcomp"
}
