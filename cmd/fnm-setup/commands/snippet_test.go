package commands_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/fnm-setup/cmd/fnm-setup/commands"
	"github.com/arthur-debert/fnm-setup/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(paths.EnvHomeOverride, "/home/dev")

	rootCmd := commands.NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSnippetPowerShell(t *testing.T) {
	out, err := runCommand(t, "snippet", "--shell", "powershell")
	require.NoError(t, err)

	assert.Contains(t, out, "fnm env --use-on-cd --corepack-enabled --shell powershell")
	assert.Contains(t, out, "Invoke-Expression")
}

func TestSnippetCmd(t *testing.T) {
	out, err := runCommand(t, "snippet", "--shell", "cmd")
	require.NoError(t, err)

	assert.Contains(t, out, "@echo off")
	assert.Contains(t, out, "IF NOT DEFINED FNM_AUTORUN_GUARD")
	assert.Contains(t, out, "fnm env --use-on-cd --corepack-enabled --shell cmd")
}

func TestSnippetUnknownShell(t *testing.T) {
	_, err := runCommand(t, "snippet", "--shell", "fish")
	assert.Error(t, err)
}

func TestGenConfig(t *testing.T) {
	out, err := runCommand(t, "genconfig")
	require.NoError(t, err)

	assert.Contains(t, out, "name = 'fnm'")
	assert.Contains(t, out, "script_name = 'fnm_autorun.cmd'")
}
