// Package setup runs the full shell configuration sequence.
package setup

import (
	"github.com/arthur-debert/fnm-setup/pkg/config"
	"github.com/arthur-debert/fnm-setup/pkg/logging"
	"github.com/arthur-debert/fnm-setup/pkg/paths"
	"github.com/arthur-debert/fnm-setup/pkg/preflight"
	"github.com/arthur-debert/fnm-setup/pkg/shellcfg"
	"github.com/arthur-debert/fnm-setup/pkg/types"
)

// Options carries the collaborators for a setup run. All fields are
// required; tests substitute in-memory implementations.
type Options struct {
	FS     types.FS
	Store  types.AutoRunStore
	Runner types.Runner
	Paths  *paths.Paths
	Config *config.Config
}

// Run executes the three configuration steps in strict sequence:
// preflight, PowerShell profile, cmd.exe AutoRun. The first error
// aborts the run; the AutoRun registry write is the one failure
// ConfigureCmd downgrades to a warning instead.
func Run(opts Options) (*types.SetupResult, error) {
	logger := logging.GetLogger("setup")
	result := &types.SetupResult{}

	version, err := preflight.Check(opts.Runner, opts.Config.Tool.Name)
	if err != nil {
		return nil, err
	}
	result.ToolVersion = version
	logger.Info().Str("tool", opts.Config.Tool.Name).Str("version", version).Msg("preflight passed")

	profile, err := shellcfg.ConfigurePowerShell(opts.FS, opts.Paths, opts.Config)
	if err != nil {
		return nil, err
	}
	result.Profile = profile

	autoRun, err := shellcfg.ConfigureCmd(opts.FS, opts.Store, opts.Paths, opts.Config)
	if err != nil {
		return nil, err
	}
	result.AutoRun = autoRun

	return result, nil
}
