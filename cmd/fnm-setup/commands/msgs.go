package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Configure PowerShell and cmd.exe to auto-initialize fnm"
	MsgSetupShort     = "Run the full shell configuration"
	MsgStatusShort    = "Show which shells are already configured"
	MsgSnippetShort   = "Output the init block for manual installation"
	MsgGenConfigShort = "Print the default configuration as TOML"
	MsgVersionShort   = "Print version information"

	MsgRootLong = `fnm-setup configures your Windows shells to auto-initialize the fnm
Node.js version manager: it appends an init line to your PowerShell
profile and registers a guard script in the cmd.exe AutoRun value.

Running fnm-setup with no arguments performs the full setup.`

	// Status messages
	MsgProfileConfigured   = "PowerShell profile configured: %s\n"
	MsgProfileCreated      = "PowerShell profile created: %s\n"
	MsgProfileAlready      = "PowerShell profile already configured: %s\n"
	MsgAutoRunConfigured   = "cmd.exe AutoRun registered: %s\n"
	MsgAutoRunAlready      = "cmd.exe AutoRun already registered: %s\n"
	MsgAutoRunWarning      = "could not update the AutoRun registry value\n"
	MsgAutoRunManualPrefix = "To finish cmd.exe setup manually, "
	MsgSetupDone           = "\nDone. Open a new terminal for the changes to take effect.\n"
	MsgSetupNextSteps      = "Node versions now switch automatically in directories with a .nvmrc or .node-version file.\n"

	// Error messages
	MsgErrInitPaths    = "failed to resolve paths: %w"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrSetup        = "setup failed: %w"
	MsgErrStatus       = "failed to read configuration state: %w"
	MsgToolMissingHint = "Install %s first (https://github.com/Schniz/fnm) and make sure it is on your PATH.\n"
	MsgWindowsOnly     = "fnm-setup configures PowerShell and cmd.exe and only runs on Windows"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagShell   = "Shell to print the init block for (powershell, cmd)"
)

// Embedded message files
var (
	//go:embed setup-long.txt
	msgSetupLongRaw string
	MsgSetupLong    = strings.TrimSpace(msgSetupLongRaw)

	//go:embed setup-example.txt
	msgSetupExampleRaw string
	MsgSetupExample    = strings.TrimSpace(msgSetupExampleRaw)
)
