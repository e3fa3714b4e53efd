package shellcfg

import (
	"fmt"

	"github.com/arthur-debert/fnm-setup/pkg/autorun"
	"github.com/arthur-debert/fnm-setup/pkg/config"
	"github.com/arthur-debert/fnm-setup/pkg/errors"
	"github.com/arthur-debert/fnm-setup/pkg/logging"
	"github.com/arthur-debert/fnm-setup/pkg/paths"
	"github.com/arthur-debert/fnm-setup/pkg/types"
)

// ConfigureCmd writes the init script and registers it in the AutoRun
// value.
//
// The script is rewritten on every run so its content always matches
// the current template; only the registration is idempotency-guarded.
// A failed registry write degrades to a warning with manual
// instructions rather than failing the run.
func ConfigureCmd(fsys types.FS, store types.AutoRunStore, p *paths.Paths, cfg *config.Config) (types.AutoRunResult, error) {
	logger := logging.GetLogger("cmdshell")

	scriptPath := p.InitScriptPath(cfg.AutoRun.ScriptName)
	result := types.AutoRunResult{ScriptPath: scriptPath}

	if err := fsys.WriteFile(scriptPath, []byte(BatchScript(cfg)), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "cannot write init script %s", scriptPath)
	}
	logger.Debug().Str("script", scriptPath).Msg("init script written")

	current, ok, err := store.Get()
	if err != nil {
		// An unreadable value is treated the same as an unset one; if
		// the store is truly unusable the write below surfaces it.
		logger.Warn().Err(err).Msg("cannot read AutoRun value, assuming unset")
		current, ok = "", false
	}

	value, already := autorun.Merge(current, ok, scriptPath)
	if already {
		logger.Info().Str("value", value).Msg("AutoRun already configured")
		result.Status = types.StatusAlreadyConfigured
		result.Value = value
		return result, nil
	}

	if err := store.Set(value); err != nil {
		logger.Warn().Err(err).Msg("AutoRun registry write failed")
		result.Status = types.StatusWarning
		result.Warning = ManualInstructions(value)
		return result, nil
	}

	logger.Info().Str("value", value).Msg("AutoRun configured")
	result.Status = types.StatusConfigured
	result.Value = value
	return result, nil
}

// ManualInstructions describes the registry edit a user must perform
// by hand when the automatic write fails.
func ManualInstructions(value string) string {
	return fmt.Sprintf("set the %s string value under HKCU\\%s to:\n  %s",
		autorun.ValueName, autorun.KeyPath, value)
}
