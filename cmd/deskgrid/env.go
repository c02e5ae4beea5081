package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newEnvCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show the effective directories and settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnv(cmd, opts)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runEnv(cmd *cobra.Command, opts *globalOptions) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	configState := "missing (defaults in effect)"
	if ok, err := afero.Exists(osFs, env.configPath); err == nil && ok {
		configState = "found"
	}
	fmt.Fprintf(out, "Settings file: %s (%s)\n", env.configPath, configState)
	fmt.Fprintf(out, "Profiles dir:  %s\n", env.store.Dir())
	fmt.Fprintf(out, "Desktop dir:   %s\n", env.scanner.Dir())
	fmt.Fprintf(out, "Grid:          %d x %d\n", env.cfg.Grid.Rows, env.cfg.Grid.Cols)
	if env.cfg.DefaultProfile != "" {
		fmt.Fprintf(out, "Default profile: %s\n", env.cfg.DefaultProfile)
	} else {
		fmt.Fprintln(out, "Default profile: (none)")
	}

	names, err := env.store.List()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Profiles:      %d\n", len(names))
	return nil
}
