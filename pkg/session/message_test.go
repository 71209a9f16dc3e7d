package session

import (
	"testing"
)

func TestFormatListenMessage(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		format   string
		port     uint16
		expected string
	}{
		{DefaultMessageFormat, 8080, "Listening on port 8080"},
		{"{port}", 1, "1"},
		{"{port}:{port}", 6600, "6600:6600"},
		{"port is {port_b64}", 8080, "port is ODA4MA=="},
		{"no placeholders here", 8080, "no placeholders here"},
		{"", 8080, ""},
		{
			"{e}]1337;SetUserVar=bc_port={port_b64}{b}",
			8080,
			"\x1b]1337;SetUserVar=bc_port=ODA4MA==\x07",
		},
	}

	// Process test cases.
	for _, testCase := range testCases {
		if message := formatListenMessage(testCase.format, testCase.port); message != testCase.expected {
			t.Errorf("message for format %q (%q) does not match expected (%q)",
				testCase.format, message, testCase.expected,
			)
		}
	}
}
