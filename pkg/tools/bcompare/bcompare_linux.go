package bcompare

// commandPathForPlatform returns the default Beyond Compare invocation path
// for Linux installs.
func commandPathForPlatform() string {
	return "/usr/bin/bcompare"
}
