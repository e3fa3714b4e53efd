// Package shellcfg configures interactive shells to initialize the
// managed version manager: an init block appended to the PowerShell
// profile, and a guard script registered in the cmd.exe AutoRun value.
package shellcfg

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/fnm-setup/pkg/config"
)

// Shell names understood by the tool's env command
const (
	ShellPowerShell = "powershell"
	ShellCmd        = "cmd"
)

// MarkerToken returns the substring whose presence in a profile means
// the shell is already configured. Using the bare invocation rather
// than our own comment means hand-configured profiles are detected too.
func MarkerToken(cfg *config.Config) string {
	return cfg.Tool.Name + " env"
}

// envInvocation renders the tool's env command line for a shell
func envInvocation(cfg *config.Config, shell string) string {
	return cfg.Tool.Name + " " + strings.Join(cfg.EnvArgs(shell), " ")
}

// PowerShellSnippet returns the block appended to the PowerShell
// profile: a marker comment plus one initialization line.
func PowerShellSnippet(cfg *config.Config) string {
	return fmt.Sprintf("# %s (added by %s-setup)\n%s | Out-String | Invoke-Expression\n",
		cfg.Tool.Name, cfg.Tool.Name, envInvocation(cfg, ShellPowerShell))
}

// BatchScript returns the full content of the cmd.exe init script.
// The guard variable keeps nested cmd instances (and the AutoRun of
// the FOR /f subshell itself) from re-running the env command.
func BatchScript(cfg *config.Config) string {
	lines := []string{
		"@echo off",
		fmt.Sprintf("IF NOT DEFINED %s (", cfg.AutoRun.GuardVar),
		fmt.Sprintf("    SET \"%s=1\"", cfg.AutoRun.GuardVar),
		fmt.Sprintf("    FOR /f \"tokens=*\" %%%%z IN ('%s') DO CALL %%%%z", envInvocation(cfg, ShellCmd)),
		")",
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}
