package status_test

import (
	"errors"
	"testing"

	"github.com/arthur-debert/fnm-setup/pkg/autorun"
	"github.com/arthur-debert/fnm-setup/pkg/config"
	"github.com/arthur-debert/fnm-setup/pkg/filesystem"
	"github.com/arthur-debert/fnm-setup/pkg/paths"
	"github.com/arthur-debert/fnm-setup/pkg/setup"
	"github.com/arthur-debert/fnm-setup/pkg/status"
	"github.com/arthur-debert/fnm-setup/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportUnconfigured(t *testing.T) {
	t.Setenv(paths.EnvHomeOverride, "/home/dev")
	p, err := paths.New()
	require.NoError(t, err)

	report, err := status.Report(filesystem.NewMemory(), autorun.NewMemory(), p, config.Default())
	require.NoError(t, err)

	assert.False(t, report.ProfileConfigured)
	assert.False(t, report.InitScriptPresent)
	assert.True(t, report.AutoRunKnown)
	assert.False(t, report.AutoRunRegistered)
}

func TestReportAfterSetup(t *testing.T) {
	t.Setenv(paths.EnvHomeOverride, "/home/dev")
	p, err := paths.New()
	require.NoError(t, err)

	fsys := filesystem.NewMemory()
	store := autorun.NewMemory()
	cfg := config.Default()

	_, err = setup.Run(setup.Options{
		FS:     fsys,
		Store:  store,
		Runner: &testutil.FakeRunner{Output: "1.38.1"},
		Paths:  p,
		Config: cfg,
	})
	require.NoError(t, err)

	report, err := status.Report(fsys, store, p, cfg)
	require.NoError(t, err)

	assert.True(t, report.ProfileConfigured)
	assert.True(t, report.InitScriptPresent)
	assert.True(t, report.AutoRunKnown)
	assert.True(t, report.AutoRunRegistered)
	assert.Equal(t, report.InitScriptPath, report.AutoRunValue)
}

func TestReportUnreadableStore(t *testing.T) {
	t.Setenv(paths.EnvHomeOverride, "/home/dev")
	p, err := paths.New()
	require.NoError(t, err)

	store := autorun.NewMemory()
	store.GetErr = errors.New("unsupported")

	report, err := status.Report(filesystem.NewMemory(), store, p, config.Default())
	require.NoError(t, err)

	assert.False(t, report.AutoRunKnown)
	assert.False(t, report.AutoRunRegistered)
}

func TestReportDoesNotMutate(t *testing.T) {
	t.Setenv(paths.EnvHomeOverride, "/home/dev")
	p, err := paths.New()
	require.NoError(t, err)

	fsys := filesystem.NewMemory()
	cfg := config.Default()

	_, err = status.Report(fsys, autorun.NewMemory(), p, cfg)
	require.NoError(t, err)

	_, statErr := fsys.Stat(p.ProfileCandidates()[0])
	assert.Error(t, statErr)
	_, statErr = fsys.Stat(p.InitScriptPath(cfg.AutoRun.ScriptName))
	assert.Error(t, statErr)
}
