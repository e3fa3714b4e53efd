// Package status inspects the current shell configuration state
// without mutating anything.
package status

import (
	"strings"

	"github.com/arthur-debert/fnm-setup/pkg/config"
	"github.com/arthur-debert/fnm-setup/pkg/paths"
	"github.com/arthur-debert/fnm-setup/pkg/shellcfg"
	"github.com/arthur-debert/fnm-setup/pkg/types"
)

// Report describes whether each shell is configured. It never writes:
// the profile is only read, and an unreadable AutoRun value is
// reported as unknown rather than an error.
func Report(fsys types.FS, store types.AutoRunStore, p *paths.Paths, cfg *config.Config) (*types.StatusReport, error) {
	report := &types.StatusReport{}

	profilePath, exists := shellcfg.ResolveProfile(fsys, p)
	report.ProfilePath = profilePath
	if exists {
		data, err := fsys.ReadFile(profilePath)
		if err != nil {
			return nil, err
		}
		report.ProfileConfigured = strings.Contains(string(data), shellcfg.MarkerToken(cfg))
	}

	report.InitScriptPath = p.InitScriptPath(cfg.AutoRun.ScriptName)
	if _, err := fsys.Stat(report.InitScriptPath); err == nil {
		report.InitScriptPresent = true
	}

	value, ok, err := store.Get()
	if err == nil {
		report.AutoRunKnown = true
		report.AutoRunValue = value
		report.AutoRunRegistered = ok && strings.Contains(value, report.InitScriptPath)
	}

	return report, nil
}
