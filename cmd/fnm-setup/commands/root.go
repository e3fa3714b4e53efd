package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/fnm-setup/internal/version"
	"github.com/arthur-debert/fnm-setup/pkg/config"
	"github.com/arthur-debert/fnm-setup/pkg/logging"
	"github.com/arthur-debert/fnm-setup/pkg/paths"
	"github.com/arthur-debert/fnm-setup/pkg/style"
)

// Execute runs the root command and returns the process exit code.
// Commands keep SilenceErrors on, so a fatal error is reported exactly
// once here, with the underlying failure text.
func Execute(rootCmd *cobra.Command) int {
	if err := rootCmd.Execute(); err != nil {
		if style.IsTerminal() {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "%s Error: %v\n", style.ErrorIndicator, err)
		} else {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "fnm-setup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		// Bare invocation performs the full setup
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newSnippetCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fnm-setup version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

// initCollaborators resolves paths and loads configuration, the two
// inputs every command needs.
func initCollaborators() (*paths.Paths, *config.Config, error) {
	p, err := paths.New()
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrInitPaths, err)
	}
	cfg, err := config.Load(p.ConfigFile())
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return p, cfg, nil
}
