package shellcfg_test

import (
	"testing"

	"github.com/arthur-debert/fnm-setup/pkg/config"
	"github.com/arthur-debert/fnm-setup/pkg/shellcfg"
	"github.com/stretchr/testify/assert"
)

func TestMarkerToken(t *testing.T) {
	assert.Equal(t, "fnm env", shellcfg.MarkerToken(config.Default()))

	cfg := config.Default()
	cfg.Tool.Name = "nvm"
	assert.Equal(t, "nvm env", shellcfg.MarkerToken(cfg))
}

func TestPowerShellSnippet(t *testing.T) {
	snippet := shellcfg.PowerShellSnippet(config.Default())

	expected := "# fnm (added by fnm-setup)\n" +
		"fnm env --use-on-cd --corepack-enabled --shell powershell | Out-String | Invoke-Expression\n"
	assert.Equal(t, expected, snippet)
}

func TestPowerShellSnippetHonorsFlagToggles(t *testing.T) {
	cfg := config.Default()
	cfg.Tool.Flags.Corepack = false

	snippet := shellcfg.PowerShellSnippet(cfg)
	assert.Contains(t, snippet, "fnm env --use-on-cd --shell powershell")
	assert.NotContains(t, snippet, "--corepack-enabled")
}

func TestBatchScript(t *testing.T) {
	script := shellcfg.BatchScript(config.Default())

	expected := "@echo off\r\n" +
		"IF NOT DEFINED FNM_AUTORUN_GUARD (\r\n" +
		"    SET \"FNM_AUTORUN_GUARD=1\"\r\n" +
		"    FOR /f \"tokens=*\" %%z IN ('fnm env --use-on-cd --corepack-enabled --shell cmd') DO CALL %%z\r\n" +
		")\r\n"
	assert.Equal(t, expected, script)
}

func TestBatchScriptIsStable(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, shellcfg.BatchScript(cfg), shellcfg.BatchScript(cfg))
}
