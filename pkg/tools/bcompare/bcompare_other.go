//go:build !linux && !darwin && !windows

package bcompare

// commandPathForPlatform returns the default Beyond Compare invocation path
// for platforms without a known install location, deferring to path lookup at
// invocation time.
func commandPathForPlatform() string {
	return "bcomp"
}
