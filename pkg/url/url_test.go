package url

import (
	"testing"
)

func TestEnsureValidNil(t *testing.T) {
	var url *URL
	if url.EnsureValid() == nil {
		t.Error("nil URL classified as valid")
	}
}

func TestEnsureValidEmptyUsername(t *testing.T) {
	url := &URL{Hostname: "example.org", Path: "/file"}
	if url.EnsureValid() == nil {
		t.Error("URL with empty username classified as valid")
	}
}

func TestEnsureValidEmptyHostname(t *testing.T) {
	url := &URL{Username: "george", Path: "/file"}
	if url.EnsureValid() == nil {
		t.Error("URL with empty hostname classified as valid")
	}
}

func TestEnsureValidEmptyPath(t *testing.T) {
	url := &URL{Username: "george", Hostname: "example.org"}
	if err := url.EnsureValid(); err != nil {
		t.Error("URL with empty path classified as invalid:", err)
	}
}

func TestFormat(t *testing.T) {
	// Set up test cases. Note the intentional double slash for absolute
	// paths.
	testCases := []struct {
		url      *URL
		expected string
	}{
		{
			&URL{Username: "bob", Hostname: "host", Path: "/tmp/a.txt"},
			"sftp://bob@host//tmp/a.txt",
		},
		{
			&URL{Username: "george", Hostname: "10.0.0.7", Path: "/home/george/file"},
			"sftp://george@10.0.0.7//home/george/file",
		},
		{
			&URL{Username: "george", Hostname: "example.org", Path: ""},
			"sftp://george@example.org/",
		},
		{
			&URL{Username: "george", Hostname: "example.org", Path: `C:\tmp\a.txt`},
			`sftp://george@example.org/C:\tmp\a.txt`,
		},
	}

	// Process test cases.
	for _, testCase := range testCases {
		if formatted := testCase.url.Format(); formatted != testCase.expected {
			t.Errorf("formatted URL (%s) does not match expected (%s)",
				formatted, testCase.expected,
			)
		}
	}
}
