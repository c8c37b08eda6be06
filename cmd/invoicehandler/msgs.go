package invoicehandler

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Rename files in a watched directory by ordered regex rules"
	MsgWatchShort      = "Watch the directory and rename files as they appear"
	MsgCheckShort      = "Show the translations and what they would do to file names"
	MsgGenConfigShort  = "Print or write a sample configuration"
	MsgCompletionShort = "Generate shell completion script"

	// Examples
	MsgCheckExample = `  invoicehandler check                           # List translations
  invoicehandler check invoice_42.pdf readme.txt # Dry run for two names
  invoicehandler check ~/Inbox/*                 # Dry run for existing files`
	MsgGenConfigExample = `  invoicehandler genconfig                 # Print TOML sample
  invoicehandler genconfig --format yaml   # Print YAML sample
  invoicehandler genconfig -w              # Write to the configuration path`

	// Status messages
	MsgConfigWritten = "Wrote sample configuration to %s\n"

	// Error messages
	MsgErrConfigExists  = "configuration already exists at %s (use --force to overwrite)"
	MsgErrWriteConfig   = "failed to write configuration to %s"
	MsgErrUnknownFormat = "unknown format '%s' (expected 'toml' or 'yaml')"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Configuration file (default $INVOICEHANDLER_CONFIG or the platform default)"
	MsgFlagWrite   = "Write the sample to the configuration path instead of stdout"
	MsgFlagForce   = "Overwrite an existing configuration file"
	MsgFlagFormat  = "Sample format: toml or yaml (default from the configuration path)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
