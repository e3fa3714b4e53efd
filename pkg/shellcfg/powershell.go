package shellcfg

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fnm-setup/pkg/config"
	"github.com/arthur-debert/fnm-setup/pkg/errors"
	"github.com/arthur-debert/fnm-setup/pkg/logging"
	"github.com/arthur-debert/fnm-setup/pkg/paths"
	"github.com/arthur-debert/fnm-setup/pkg/types"
)

// ResolveProfile picks the PowerShell profile path by existence
// precedence: the first candidate when it exists, the second only when
// the first is absent and the second exists, otherwise the first as
// the default location for a fresh profile.
func ResolveProfile(fsys types.FS, p *paths.Paths) (path string, exists bool) {
	candidates := p.ProfileCandidates()
	for _, candidate := range candidates {
		if _, err := fsys.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return candidates[0], false
}

// ConfigurePowerShell appends the init block to the resolved profile
// unless the marker token is already present.
func ConfigurePowerShell(fsys types.FS, p *paths.Paths, cfg *config.Config) (types.ProfileResult, error) {
	logger := logging.GetLogger("powershell")

	path, exists := ResolveProfile(fsys, p)
	result := types.ProfileResult{Path: path}

	var content string
	if exists {
		data, err := fsys.ReadFile(path)
		if err != nil {
			return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot read profile %s", path)
		}
		content = string(data)

		if strings.Contains(content, MarkerToken(cfg)) {
			logger.Info().Str("profile", path).Msg("profile already configured")
			result.Status = types.StatusAlreadyConfigured
			return result, nil
		}
	} else {
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return result, errors.Wrapf(err, errors.ErrDirCreate, "cannot create profile directory for %s", path)
		}
	}

	block := PowerShellSnippet(cfg)
	if exists {
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += "\n" + block
	} else {
		content = block
	}

	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "cannot write profile %s", path)
	}

	logger.Info().Str("profile", path).Bool("created", !exists).Msg("profile configured")
	result.Status = types.StatusConfigured
	result.Created = !exists
	return result, nil
}
