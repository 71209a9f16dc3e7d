package bcompare

import (
	"github.com/mbikovitsky/beyond-ssh/pkg/process"
)

// commandSearchPaths specifies locations on Windows where we might find a
// bcomp.exe binary, in order of preference.
var commandSearchPaths = []string{
	`C:\Program Files\Beyond Compare 5`,
	`C:\Program Files\Beyond Compare 4`,
	`C:\Program Files (x86)\Beyond Compare 5`,
	`C:\Program Files (x86)\Beyond Compare 4`,
}

// commandPathForPlatform searches for a Beyond Compare install on Windows,
// falling back to the default install location if none is found.
func commandPathForPlatform() string {
	if path, err := process.FindCommand("bcomp", commandSearchPaths); err == nil {
		return path
	}
	return `C:\Program Files\Beyond Compare 5\bcomp.exe`
}
