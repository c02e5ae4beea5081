package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arkadas/deskgrid/internal/cleanup"
	"github.com/arkadas/deskgrid/internal/version"
)

func execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if cleanupErr := cleanup.RunAll(); cleanupErr != nil {
		fmt.Fprintln(os.Stderr, cleanupErr)
		if err == nil {
			err = cleanupErr
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "deskgrid",
		Short: "Desktop icon profiles and reconciliation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if hasAnyFlagSet(cmd) {
					_ = cmd.Usage()
					return fmt.Errorf("a command is required")
				}
				return cmd.Help()
			}
			_ = cmd.Usage()
			return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
		},
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
	}

	cmd.Version = version.Info()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetUsageTemplate(rootUsageTemplate)

	addGlobalFlags(cmd, opts)

	cmd.AddCommand(
		newAboutCmd(),
		newProfilesCmd(opts),
		newShowCmd(opts),
		newCompareCmd(opts),
		newScanCmd(opts),
		newImportCmd(opts),
		newLaunchCmd(opts),
		newEnvCmd(opts),
	)

	cmd.InitDefaultCompletionCmd()
	for _, sub := range cmd.Commands() {
		if sub.Name() == "completion" {
			sub.Short = "deskgrid — desktop icon profiles"
			sub.SetUsageTemplate(subcommandUsageTemplate)
			break
		}
	}

	return cmd
}

func hasAnyFlagSet(cmd *cobra.Command) bool {
	changed := false
	cmd.Flags().Visit(func(_ *pflag.Flag) {
		changed = true
	})
	return changed
}
