package types

// StepStatus describes the outcome of one configuration step
type StepStatus string

const (
	// StatusConfigured means the step made a change
	StatusConfigured StepStatus = "configured"

	// StatusAlreadyConfigured means the step found prior configuration
	// and left it untouched
	StatusAlreadyConfigured StepStatus = "already-configured"

	// StatusWarning means the step could not complete but the failure
	// is recoverable by manual action
	StatusWarning StepStatus = "warning"
)

// ProfileResult reports what the PowerShell profile step did
type ProfileResult struct {
	// Path is the resolved profile location
	Path string

	// Status is the step outcome
	Status StepStatus

	// Created is true when the profile file did not exist before
	Created bool
}

// AutoRunResult reports what the cmd.exe AutoRun step did
type AutoRunResult struct {
	// ScriptPath is where the init script was written
	ScriptPath string

	// Status is the step outcome
	Status StepStatus

	// Value is the AutoRun value after the step (empty on warning)
	Value string

	// Warning holds manual-configuration instructions when the
	// registry write failed
	Warning string
}

// SetupResult aggregates the outcome of a full setup run
type SetupResult struct {
	// ToolVersion is the version string reported by the preflight check
	ToolVersion string

	Profile ProfileResult
	AutoRun AutoRunResult
}

// StatusReport describes the current configuration state without
// mutating anything
type StatusReport struct {
	ProfilePath       string
	ProfileConfigured bool

	InitScriptPath    string
	InitScriptPresent bool

	// AutoRunKnown is false when the store could not be queried
	// (for example on a non-Windows platform)
	AutoRunKnown      bool
	AutoRunRegistered bool
	AutoRunValue      string
}
