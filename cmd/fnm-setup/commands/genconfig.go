package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/fnm-setup/pkg/config"
)

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := initCollaborators()
			if err != nil {
				return err
			}

			out, err := config.GenerateDefault()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), out)
			fmt.Fprintf(cmd.ErrOrStderr(), "\n# Save as %s to customize.\n", p.ConfigFile())
			return nil
		},
	}
}
