package textminator

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Replaces sensitive data in files or stdin"
	MsgRulesShort      = "Print the effective rules"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Warnings
	MsgWarnForceWithoutOutput = "--force is taken into account only with --output"

	// Labels
	MsgBuiltinSource = "default (built-in)"
	MsgVersionFormat = "textminator %s\n"

	// Error messages
	MsgErrStatsFormat = "invalid --stats-format: %w"
	MsgErrRulesFormat = "unknown rules format %q (use text, json, yaml, toml or properties)"
	MsgErrSettings    = "failed to read TEXTMINATOR_* settings: %w"

	// Flag descriptions
	MsgFlagConfig        = "rule file (.properties, .toml, .yaml); overrides the adjacent and built-in files"
	MsgFlagConfigExample = "print the built-in configuration file and exit"
	MsgFlagConfigInfo    = "print the loaded rules in execution order and exit"
	MsgFlagInput         = "input file (default stdin)"
	MsgFlagOutput        = "output file (default stdout), written only when the run succeeds"
	MsgFlagForce         = "overwrite --output if it already exists"
	MsgFlagStats         = "print per-rule replacement statistics to stderr"
	MsgFlagDryRun        = "process input and print statistics without writing output"
	MsgFlagQuiet         = "suppress all diagnostics (including --stats and --config-info) except errors; overrides -v"
	MsgFlagVerbose       = "increase verbosity (-v warnings, -vv info, -vvv debug)"
	MsgFlagTrace         = "trace every rule match, independently of -v"
	MsgFlagLogFile       = "also write JSON logs to a file (default $XDG_STATE_HOME/textminator/textminator.log)"
	MsgFlagStatsFormat   = "statistics format: auto, term, text or json"
	MsgFlagRulesFormat   = "output format: text, json, yaml, toml or properties"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/rules-example.txt
	msgRulesExampleRaw string
	MsgRulesExample    = strings.TrimRight(msgRulesExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
