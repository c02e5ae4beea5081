package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arkadas/deskgrid/internal/desktop"
	"github.com/arkadas/deskgrid/internal/icons"
)

type launchOptions struct {
	profileName string
	reveal      bool
}

func newLaunchCmd(opts *globalOptions) *cobra.Command {
	launchOpts := launchOptions{}
	cmd := &cobra.Command{
		Use:   "launch <icon name>",
		Short: "Launch the program or link behind an icon",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd, opts, &launchOpts, strings.Join(args, " "))
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().StringVarP(&launchOpts.profileName, "profile", "p", "", "Profile holding the icon")
	cmd.Flags().BoolVar(&launchOpts.reveal, "reveal", false, "Reveal the target in the file manager instead of launching")
	return cmd
}

func runLaunch(cmd *cobra.Command, opts *globalOptions, launchOpts *launchOptions, iconName string) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	profileName, err := resolveProfile(env, launchOpts.profileName)
	if err != nil {
		return err
	}
	records, err := env.store.Load(profileName)
	if err != nil {
		return err
	}

	rec, ok := findIcon(records, iconName)
	if !ok {
		return fmt.Errorf("no icon named %q in profile %q", iconName, profileName)
	}

	switch {
	case launchOpts.reveal && rec.ProgramLink != "":
		return desktop.RevealInFileManager(rec.ProgramLink)
	case rec.ProgramLink != "":
		return desktop.LaunchProgram(rec.ProgramLink, rec.Args)
	case rec.WebsiteLink != "":
		return desktop.OpenURL(rec.WebsiteLink)
	default:
		return fmt.Errorf("icon %q has no program or website link", iconName)
	}
}

func findIcon(records []icons.Record, name string) (icons.Record, bool) {
	for _, rec := range records {
		if strings.EqualFold(rec.Name, name) {
			return rec, true
		}
	}
	return icons.Record{}, false
}
