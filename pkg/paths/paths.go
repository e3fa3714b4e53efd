// Package paths provides centralized path handling for fnm-setup.
// All filesystem locations the tool reads or writes are resolved here
// so that commands and tests agree on where things live.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/fnm-setup/pkg/errors"
)

// Environment variable names
const (
	// EnvHomeOverride overrides the resolved home directory
	EnvHomeOverride = "FNM_SETUP_HOME"

	// EnvUserProfile is the standard Windows home directory variable
	EnvUserProfile = "USERPROFILE"
)

// Default directories and files
const (
	// ConfigDirName is the directory name for fnm-setup configuration
	ConfigDirName = "fnm-setup"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "fnm-setup.toml"

	// DocumentsDir is the Windows documents folder name
	DocumentsDir = "Documents"

	// PowerShellDir is the profile directory for PowerShell 7+
	PowerShellDir = "PowerShell"

	// WindowsPowerShellDir is the profile directory for Windows PowerShell 5.x
	WindowsPowerShellDir = "WindowsPowerShell"

	// ProfileFileName is the per-user PowerShell profile file name
	ProfileFileName = "Microsoft.PowerShell_profile.ps1"
)

// Paths provides centralized path management for fnm-setup
type Paths struct {
	home string
}

// New creates a Paths instance rooted at the user's home directory.
// FNM_SETUP_HOME takes precedence, then USERPROFILE, then the OS
// notion of the home directory.
func New() (*Paths, error) {
	if override := os.Getenv(EnvHomeOverride); override != "" {
		return &Paths{home: override}, nil
	}
	if profile := os.Getenv(EnvUserProfile); profile != "" {
		return &Paths{home: profile}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrHomeNotFound, "cannot determine home directory")
	}
	return &Paths{home: home}, nil
}

// Home returns the resolved home directory
func (p *Paths) Home() string {
	return p.home
}

// ProfileCandidates returns the PowerShell profile locations in
// precedence order: the PowerShell 7+ profile first, then the
// Windows PowerShell 5.x profile.
func (p *Paths) ProfileCandidates() []string {
	return []string{
		filepath.Join(p.home, DocumentsDir, PowerShellDir, ProfileFileName),
		filepath.Join(p.home, DocumentsDir, WindowsPowerShellDir, ProfileFileName),
	}
}

// InitScriptPath returns the location of the cmd.exe init script
func (p *Paths) InitScriptPath(scriptName string) string {
	return filepath.Join(p.home, scriptName)
}

// ConfigFile returns the location of the optional user configuration file
func (p *Paths) ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, ConfigDirName, ConfigFileName)
}
