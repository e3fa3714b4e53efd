package preflight_test

import (
	"errors"
	"testing"

	setuperrors "github.com/arthur-debert/fnm-setup/pkg/errors"
	"github.com/arthur-debert/fnm-setup/pkg/preflight"
	"github.com/arthur-debert/fnm-setup/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSuccess(t *testing.T) {
	runner := &testutil.FakeRunner{Output: "1.38.1\n"}

	version, err := preflight.Check(runner, "fnm")
	require.NoError(t, err)

	assert.Equal(t, "1.38.1", version)
	require.Len(t, runner.Calls, 1)
	assert.Equal(t, "fnm --version", runner.Calls[0])
}

func TestCheckToolMissing(t *testing.T) {
	runner := &testutil.FakeRunner{Err: errors.New(`exec: "fnm": executable file not found in %PATH%`)}

	_, err := preflight.Check(runner, "fnm")
	require.Error(t, err)

	assert.True(t, setuperrors.IsErrorCode(err, setuperrors.ErrToolNotFound))
	assert.Contains(t, err.Error(), "fnm was not found on your PATH")
}
