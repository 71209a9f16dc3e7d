package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// DisallowArguments is a Cobra positional argument validator that fails
// validation if any positional arguments are present.
func DisallowArguments(_ *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errors.New("this command does not accept arguments")
	}
	return nil
}
