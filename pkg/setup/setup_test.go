package setup_test

import (
	"errors"
	"testing"

	"github.com/arthur-debert/fnm-setup/pkg/autorun"
	"github.com/arthur-debert/fnm-setup/pkg/config"
	setuperrors "github.com/arthur-debert/fnm-setup/pkg/errors"
	"github.com/arthur-debert/fnm-setup/pkg/filesystem"
	"github.com/arthur-debert/fnm-setup/pkg/paths"
	"github.com/arthur-debert/fnm-setup/pkg/setup"
	"github.com/arthur-debert/fnm-setup/pkg/testutil"
	"github.com/arthur-debert/fnm-setup/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(t *testing.T) setup.Options {
	t.Helper()
	t.Setenv(paths.EnvHomeOverride, "/home/dev")

	p, err := paths.New()
	require.NoError(t, err)

	return setup.Options{
		FS:     filesystem.NewMemory(),
		Store:  autorun.NewMemory(),
		Runner: &testutil.FakeRunner{Output: "1.38.1\n"},
		Paths:  p,
		Config: config.Default(),
	}
}

func TestRunConfiguresBothShells(t *testing.T) {
	opts := testOptions(t)

	result, err := setup.Run(opts)
	require.NoError(t, err)

	assert.Equal(t, "1.38.1", result.ToolVersion)
	assert.Equal(t, types.StatusConfigured, result.Profile.Status)
	assert.Equal(t, types.StatusConfigured, result.AutoRun.Status)

	_, err = opts.FS.ReadFile(result.Profile.Path)
	assert.NoError(t, err)
	_, err = opts.FS.ReadFile(result.AutoRun.ScriptPath)
	assert.NoError(t, err)
}

func TestRunIsIdempotent(t *testing.T) {
	opts := testOptions(t)

	first, err := setup.Run(opts)
	require.NoError(t, err)
	profileAfterFirst, err := opts.FS.ReadFile(first.Profile.Path)
	require.NoError(t, err)

	second, err := setup.Run(opts)
	require.NoError(t, err)

	assert.Equal(t, types.StatusAlreadyConfigured, second.Profile.Status)
	assert.Equal(t, types.StatusAlreadyConfigured, second.AutoRun.Status)

	profileAfterSecond, err := opts.FS.ReadFile(second.Profile.Path)
	require.NoError(t, err)
	assert.Equal(t, profileAfterFirst, profileAfterSecond)
}

func TestRunAbortsWhenToolMissing(t *testing.T) {
	opts := testOptions(t)
	opts.Runner = &testutil.FakeRunner{Err: errors.New("executable file not found")}

	_, err := setup.Run(opts)
	require.Error(t, err)
	assert.True(t, setuperrors.IsErrorCode(err, setuperrors.ErrToolNotFound))

	// Nothing was written
	_, statErr := opts.FS.Stat(opts.Paths.InitScriptPath(opts.Config.AutoRun.ScriptName))
	assert.Error(t, statErr)
}

func TestRunSucceedsDespiteRegistryWriteFailure(t *testing.T) {
	opts := testOptions(t)
	store := autorun.NewMemory()
	store.SetErr = errors.New("access denied")
	opts.Store = store

	result, err := setup.Run(opts)
	require.NoError(t, err)

	assert.Equal(t, types.StatusConfigured, result.Profile.Status)
	assert.Equal(t, types.StatusWarning, result.AutoRun.Status)
	assert.NotEmpty(t, result.AutoRun.Warning)
}
