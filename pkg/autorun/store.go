// Package autorun manages the persistent cmd.exe AutoRun value.
//
// The AutoRun value lives under HKCU and holds one or more commands,
// joined with " & ", that cmd.exe executes at the start of every
// interactive session. The registry-backed store only exists on
// Windows; tests and other platforms use the in-memory store.
package autorun

import (
	"strings"
)

// Registry location of the cmd.exe AutoRun value
const (
	// KeyPath is the user-scoped registry key holding the AutoRun value
	KeyPath = `Software\Microsoft\Command Processor`

	// ValueName is the name of the AutoRun value under KeyPath
	ValueName = "AutoRun"

	// Separator joins multiple AutoRun commands
	Separator = " & "
)

// Merge composes the new AutoRun value from the current one.
//
// When the current value already references scriptPath, already is true
// and value echoes the current value unchanged. Otherwise value is the
// current value with scriptPath appended (separator-joined), or just
// scriptPath when no value was set.
func Merge(current string, ok bool, scriptPath string) (value string, already bool) {
	if ok && strings.Contains(current, scriptPath) {
		return current, true
	}
	if !ok || current == "" {
		return scriptPath, false
	}
	return current + Separator + scriptPath, false
}
