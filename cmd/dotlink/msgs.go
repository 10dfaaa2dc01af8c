package dotlink

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Link and generate dotfiles from a configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgGenConfigShort  = "Print a starter configuration file"
	MsgGenConfigLong   = "Print a sample TOML configuration to stdout. Edit it and pass it to --config."

	// Flag descriptions
	MsgFlagConfig         = "Path to the configuration file (.toml, .yaml, .yml or .json)"
	MsgFlagDryRun         = "Preview changes without executing them"
	MsgFlagCheckTemplates = "Check if generated templates differ from what would be generated now"
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat         = "Output format: auto, term, text, json or yaml"

	// Status messages
	MsgDryRunNotice = "\nDRY RUN MODE - No changes were made"
	MsgVersionLine  = "dotlink version %s\n"
	MsgCommitLine   = "  commit: %s\n"
	MsgBuiltLine    = "  built:  %s\n"

	// Error messages
	MsgErrFormat = "invalid --format: %w"
	MsgErrArgs   = "unexpected arguments: %v"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")
)
