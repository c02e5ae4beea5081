package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arkadas/deskgrid/internal/icons"
)

func newShowCmd(opts *globalOptions) *cobra.Command {
	var profileFlag string
	cmd := &cobra.Command{
		Use:   "show [profile]",
		Short: "Show the icons of a profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				profileFlag = args[0]
			}
			return runShow(cmd, opts, profileFlag)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runShow(cmd *cobra.Command, opts *globalOptions, profileFlag string) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	name, err := resolveProfile(env, profileFlag)
	if err != nil {
		return err
	}
	records, err := env.store.Load(name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Profile %q: %d icon(s)\n", name, len(records))
	for _, rec := range records {
		target := rec.ProgramLink
		if target == "" {
			target = rec.WebsiteLink
		}
		fmt.Fprintf(out, "  [%d,%d] %-28s %s\n", rec.Row, rec.Col, icons.DisplayName(rec.Name, 28), target)
	}
	return nil
}
