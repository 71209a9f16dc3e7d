package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

// TestTildeNotPathSeparator ensures that ~ is not considered a path separator
// on the platform. This is essentially guaranteed, but since we rely on this
// behavior, it's best to have an explicit check of it.
func TestTildeNotPathSeparator(t *testing.T) {
	if os.IsPathSeparator('~') {
		t.Fatal("tilde considered path separator")
	}
}

func TestTildeExpandHome(t *testing.T) {
	// Compute the path to the user's home directory.
	homeDirectory, err := os.UserHomeDir()
	if err != nil {
		t.Fatal("unable to compute home directory:", err)
	}

	// Perform expansion.
	expanded, err := tildeExpand("~")
	if err != nil {
		t.Fatal("tilde expansion failed:", err)
	}

	// Ensure that the result matches the expected value.
	if expanded != homeDirectory {
		t.Error("tilde-expanded path does not match expected")
	}
}

func TestTildeExpandHomeSlash(t *testing.T) {
	// Compute the path to the user's home directory.
	homeDirectory, err := os.UserHomeDir()
	if err != nil {
		t.Fatal("unable to compute home directory:", err)
	}

	// Perform expansion.
	expanded, err := tildeExpand("~/")
	if err != nil {
		t.Fatal("tilde expansion failed:", err)
	}

	// Ensure that the result matches the expected value.
	if expanded != homeDirectory {
		t.Error("tilde-expanded path does not match expected")
	}
}

func TestNormalizeRelative(t *testing.T) {
	// Compute the current working directory.
	workingDirectory, err := os.Getwd()
	if err != nil {
		t.Fatal("unable to compute working directory:", err)
	}

	// Normalize a relative path.
	normalized, err := Normalize("relative/file.txt")
	if err != nil {
		t.Fatal("unable to normalize path:", err)
	}

	// Ensure that the result is anchored at the working directory.
	if normalized != filepath.Join(workingDirectory, "relative", "file.txt") {
		t.Error("normalized path does not match expected:", normalized)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	// Compute the current working directory.
	workingDirectory, err := os.Getwd()
	if err != nil {
		t.Fatal("unable to compute working directory:", err)
	}

	// Normalize an empty path and ensure that it resolves to the working
	// directory.
	if normalized, err := Normalize(""); err != nil {
		t.Fatal("unable to normalize empty path:", err)
	} else if normalized != workingDirectory {
		t.Error("empty path did not normalize to working directory:", normalized)
	}
}

func TestNormalizeCleans(t *testing.T) {
	// Compute the expected result.
	expected, err := filepath.Abs("/a/c/d")
	if err != nil {
		t.Fatal("unable to compute expected path:", err)
	}

	// Normalize a path containing redundant components and ensure that the
	// result is cleaned.
	if normalized, err := Normalize("/a/b/../c//d/."); err != nil {
		t.Fatal("unable to normalize path:", err)
	} else if normalized != expected {
		t.Error("normalized path does not match expected:", normalized)
	}
}
