package configuration

import (
	"github.com/mbikovitsky/beyond-ssh/pkg/encoding"
)

// Configuration is the global YAML configuration object type.
type Configuration struct {
	// Serve contains defaults for the diff and merge commands.
	Serve struct {
		// MessageFormat is the default format for the port announcement
		// message.
		MessageFormat string `yaml:"messageFormat"`
	} `yaml:"serve"`
	// Connect contains defaults for the connect command.
	Connect struct {
		// User is the default username for SSH tunneling and SFTP URLs.
		User string `yaml:"user"`
		// Command is the default comparison tool invocation path.
		Command string `yaml:"command"`
		// Tunnel indicates whether or not to reach servers through an SSH
		// tunnel by default.
		Tunnel bool `yaml:"tunnel"`
	} `yaml:"connect"`
}

// LoadConfiguration attempts to load a YAML-based global configuration file
// from the specified path. Non-existence errors are passed through directly so
// that callers can treat a missing file as an empty configuration.
func LoadConfiguration(path string) (*Configuration, error) {
	// Create the target configuration object.
	result := &Configuration{}

	// Attempt to load. We pass-through os.IsNotExist errors.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		return nil, err
	}

	// Success.
	return result, nil
}
