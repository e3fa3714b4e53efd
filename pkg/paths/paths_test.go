package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fnm-setup/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsesHomeOverride(t *testing.T) {
	t.Setenv(paths.EnvHomeOverride, "/fake/home")

	p, err := paths.New()
	require.NoError(t, err)
	assert.Equal(t, "/fake/home", p.Home())
}

func TestNewPrefersUserProfile(t *testing.T) {
	t.Setenv(paths.EnvHomeOverride, "")
	t.Setenv(paths.EnvUserProfile, "/profile/home")

	p, err := paths.New()
	require.NoError(t, err)
	assert.Equal(t, "/profile/home", p.Home())
}

func TestProfileCandidates(t *testing.T) {
	t.Setenv(paths.EnvHomeOverride, "/fake/home")

	p, err := paths.New()
	require.NoError(t, err)

	candidates := p.ProfileCandidates()
	require.Len(t, candidates, 2)

	// PowerShell 7+ profile is preferred over Windows PowerShell 5.x
	assert.Equal(t, filepath.Join("/fake/home", "Documents", "PowerShell", "Microsoft.PowerShell_profile.ps1"), candidates[0])
	assert.Equal(t, filepath.Join("/fake/home", "Documents", "WindowsPowerShell", "Microsoft.PowerShell_profile.ps1"), candidates[1])
}

func TestInitScriptPath(t *testing.T) {
	t.Setenv(paths.EnvHomeOverride, "/fake/home")

	p, err := paths.New()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/fake/home", "fnm_autorun.cmd"), p.InitScriptPath("fnm_autorun.cmd"))
}
