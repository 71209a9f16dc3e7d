package main

import (
	"github.com/spf13/pflag"

	"github.com/mbikovitsky/beyond-ssh/pkg/configuration"
	"github.com/mbikovitsky/beyond-ssh/pkg/session"
)

// serveFlags stores command line flags shared by the commands that serve
// comparison sessions and provides for their registration and resolution.
type serveFlags struct {
	// messageFormat stores the value of the --message-format flag.
	messageFormat string
}

// register registers the flags into the specified flag set.
func (f *serveFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(
		&f.messageFormat,
		"message-format", "f",
		session.DefaultMessageFormat,
		"Specify the format of the port announcement message",
	)
}

// effectiveMessageFormat resolves the message format, preferring an
// explicitly set flag, then the global configuration, and finally the
// built-in default.
func (f *serveFlags) effectiveMessageFormat(flags *pflag.FlagSet, global *configuration.Configuration) string {
	if !flags.Changed("message-format") && global.Serve.MessageFormat != "" {
		return global.Serve.MessageFormat
	}
	return f.messageFormat
}
