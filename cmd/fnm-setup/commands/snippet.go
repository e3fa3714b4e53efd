package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/fnm-setup/pkg/shellcfg"
)

func newSnippetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snippet",
		Short: MsgSnippetShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, _ := cmd.Flags().GetString("shell")

			_, cfg, err := initCollaborators()
			if err != nil {
				return err
			}

			switch shell {
			case shellcfg.ShellPowerShell:
				fmt.Fprint(cmd.OutOrStdout(), shellcfg.PowerShellSnippet(cfg))
			case shellcfg.ShellCmd:
				fmt.Fprint(cmd.OutOrStdout(), shellcfg.BatchScript(cfg))
			default:
				return fmt.Errorf("unknown shell %q (expected %s or %s)", shell, shellcfg.ShellPowerShell, shellcfg.ShellCmd)
			}
			return nil
		},
	}

	cmd.Flags().StringP("shell", "s", shellcfg.ShellPowerShell, MsgFlagShell)

	return cmd
}
