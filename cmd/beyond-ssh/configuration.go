package main

import (
	"fmt"
	"os"

	"github.com/mbikovitsky/beyond-ssh/pkg/configuration"
)

// loadConfiguration loads the global configuration file, returning a zero
// configuration if no such file exists.
func loadConfiguration() (*configuration.Configuration, error) {
	// Compute the path to the configuration file.
	path, err := configuration.ConfigurationPath()
	if err != nil {
		return nil, fmt.Errorf("unable to compute path to configuration file: %w", err)
	}

	// Attempt to load the file. We allow it to not exist.
	result, err := configuration.LoadConfiguration(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("unable to load configuration file: %w", err)
		}
		return &configuration.Configuration{}, nil
	}

	// Success.
	return result, nil
}
