package appcenterdevices

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Build Apple provisioning device lists from App Center"
	MsgFetchShort      = "Fetch devices of distribution groups into a devices file"
	MsgGenConfigShort  = "Generate the default configuration file"
	MsgGenConfigLong   = "Output the default configuration to stdout, or write it to the user config directory with --write."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten = "Wrote configuration to %s"
	MsgConfigExists  = "Configuration file already exists, left untouched"
	MsgVersionFormat = "appcenter-devices version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrNewClient  = "failed to create App Center client: %w"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor      = "Disable colored output"
	MsgFlagConfig       = "Config file (default: $XDG_CONFIG_HOME/appcenter-devices/config.toml)"
	MsgFlagAPIToken     = "App Center API token (APPCENTER_API_TOKEN)"
	MsgFlagOwnerName    = "Owner of the App Center app (APPCENTER_OWNER_NAME)"
	MsgFlagAppName      = "App Center app name (APPCENTER_APP_NAME)"
	MsgFlagDestinations = "Distribution group to fetch, \"*\" for all groups (APPCENTER_DISTRIBUTE_DESTINATIONS)"
	MsgFlagDevicesFile  = "Devices file to write (APPCENTER_DEVICES_FILE)"
	MsgFlagOutputDir    = "Directory relative devices files are written to (APPCENTER_OUTPUT_DIR)"
	MsgFlagPlatform     = "Platform of the app, only ios is supported (APPCENTER_PLATFORM)"
	MsgFlagAPIURL       = "App Center API base URL (APPCENTER_API_URL)"
	MsgFlagTimeout      = "Timeout of each App Center request (APPCENTER_TIMEOUT)"
	MsgFlagWrite        = "Write config to the user config directory instead of stdout"
	MsgFlagPath         = "Write config to this path instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/fetch-long.txt
	msgFetchLongRaw string
	MsgFetchLong    = strings.TrimSpace(msgFetchLongRaw)

	//go:embed msgs/fetch-example.txt
	msgFetchExampleRaw string
	MsgFetchExample    = strings.TrimRight(msgFetchExampleRaw, "\n")
)
