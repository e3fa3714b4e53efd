package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/fnm-setup/pkg/autorun"
	"github.com/arthur-debert/fnm-setup/pkg/filesystem"
	"github.com/arthur-debert/fnm-setup/pkg/status"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := initCollaborators()
			if err != nil {
				return err
			}

			report, err := status.Report(filesystem.NewOS(), autorun.NewRegistry(), p, cfg)
			if err != nil {
				return fmt.Errorf(MsgErrStatus, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "PowerShell profile: %s (%s)\n", report.ProfilePath, yesNo(report.ProfileConfigured, "configured", "not configured"))
			fmt.Fprintf(out, "Init script:        %s (%s)\n", report.InitScriptPath, yesNo(report.InitScriptPresent, "present", "missing"))
			if report.AutoRunKnown {
				fmt.Fprintf(out, "cmd.exe AutoRun:    %s\n", yesNo(report.AutoRunRegistered, "registered", "not registered"))
				if report.AutoRunValue != "" {
					fmt.Fprintf(out, "  current value:    %s\n", report.AutoRunValue)
				}
			} else {
				fmt.Fprintf(out, "cmd.exe AutoRun:    unknown (registry not available on this platform)\n")
			}
			return nil
		},
	}
}

func yesNo(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}
