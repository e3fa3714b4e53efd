package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/fnm-setup/pkg/autorun"
	"github.com/arthur-debert/fnm-setup/pkg/errors"
	"github.com/arthur-debert/fnm-setup/pkg/filesystem"
	"github.com/arthur-debert/fnm-setup/pkg/preflight"
	"github.com/arthur-debert/fnm-setup/pkg/setup"
	"github.com/arthur-debert/fnm-setup/pkg/style"
	"github.com/arthur-debert/fnm-setup/pkg/types"
)

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "setup",
		Short:   MsgSetupShort,
		Long:    MsgSetupLong,
		Example: MsgSetupExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd)
		},
	}
}

func runSetup(cmd *cobra.Command) error {
	if runtime.GOOS != "windows" {
		return errors.New(errors.ErrUnsupported, MsgWindowsOnly)
	}

	p, cfg, err := initCollaborators()
	if err != nil {
		return err
	}

	result, err := setup.Run(setup.Options{
		FS:     filesystem.NewOS(),
		Store:  autorun.NewRegistry(),
		Runner: preflight.NewExecRunner(),
		Paths:  p,
		Config: cfg,
	})
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrToolNotFound) {
			fmt.Fprintf(cmd.ErrOrStderr(), MsgToolMissingHint, cfg.Tool.Name)
		}
		return fmt.Errorf(MsgErrSetup, err)
	}

	printSetupResult(cmd.OutOrStdout(), result)
	return nil
}

func printSetupResult(out io.Writer, result *types.SetupResult) {
	styled := style.IsTerminal()

	switch result.Profile.Status {
	case types.StatusAlreadyConfigured:
		printStatusLine(out, styled, style.InfoIndicator, MsgProfileAlready, result.Profile.Path)
	default:
		if result.Profile.Created {
			printStatusLine(out, styled, style.SuccessIndicator, MsgProfileCreated, result.Profile.Path)
		} else {
			printStatusLine(out, styled, style.SuccessIndicator, MsgProfileConfigured, result.Profile.Path)
		}
	}

	switch result.AutoRun.Status {
	case types.StatusAlreadyConfigured:
		printStatusLine(out, styled, style.InfoIndicator, MsgAutoRunAlready, result.AutoRun.ScriptPath)
	case types.StatusWarning:
		printStatusLine(out, styled, style.WarningIndicator, MsgAutoRunWarning)
		fmt.Fprintf(out, "%s%s\n", MsgAutoRunManualPrefix, result.AutoRun.Warning)
	default:
		printStatusLine(out, styled, style.SuccessIndicator, MsgAutoRunConfigured, result.AutoRun.ScriptPath)
	}

	fmt.Fprint(out, MsgSetupDone)
	fmt.Fprint(out, MsgSetupNextSteps)
}

func printStatusLine(out io.Writer, styled bool, indicator string, format string, args ...interface{}) {
	if styled {
		fmt.Fprintf(out, "%s ", indicator)
	}
	fmt.Fprintf(out, format, args...)
}
