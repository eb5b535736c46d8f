package carp

import (
	_ "embed"
	"strings"
)

const (
	MsgRootShort = "Compare paths with their .new candidates and replace them"
	MsgRootUse   = "carp [flags] PATH..."

	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun        = "Report and prompt as usual but do not change any file"
	MsgFlagDirPrefix     = "Directory prepended to every PATH"
	MsgFlagFormat        = "Report format: auto, term, text or json"
	MsgFlagNoColor       = "Disable styled output"
	MsgFlagConfig        = "Configuration file (default $XDG_CONFIG_HOME/carp/config.toml)"
	MsgFlagPrintConfig   = "Print the effective configuration and exit"
	MsgFlagLeaveLimit    = "Show leave groups larger than this as a count"
	MsgFlagPrintDefaults = "Print the commented default configuration file and exit"

	MsgVersionTemplate = "carp version {{.Version}}\n"

	MsgErrNoPaths = "at least one PATH is required"
)

var (
	//go:embed msgs/root-long.md
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
