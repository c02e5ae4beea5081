package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arkadas/deskgrid/internal/icons"
	"github.com/arkadas/deskgrid/internal/reconcile"
)

type scanOptions struct {
	profileName string
	filesOnly   bool
}

func newScanCmd(opts *globalOptions) *cobra.Command {
	scanOpts := scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the desktop and classify its files against a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, &scanOpts)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().StringVarP(&scanOpts.profileName, "profile", "p", "", "Profile to classify against")
	cmd.Flags().BoolVar(&scanOpts.filesOnly, "files-only", false, "Only list desktop files, skip classification")
	return cmd
}

func runScan(cmd *cobra.Command, opts *globalOptions, scanOpts *scanOptions) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	files, err := env.scanner.List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if scanOpts.filesOnly {
		fmt.Fprintf(out, "Desktop %s: %d file(s)\n", env.scanner.Dir(), len(files))
		for _, f := range files {
			fmt.Fprintf(out, "  %-28s %s\n", icons.DisplayName(f.Name, 28), f.Path)
		}
		return nil
	}

	name, err := resolveProfile(env, scanOpts.profileName)
	if err != nil {
		return err
	}
	target, err := env.store.Load(name)
	if err != nil {
		return err
	}

	result := reconcile.DesktopFiles(target, files)
	printScanResult(out, env.scanner.Dir(), name, result)
	return nil
}

func printScanResult(out io.Writer, dir, profileName string, result reconcile.FileResult) {
	fmt.Fprintf(out, "Desktop %s against profile %q: %d file(s)\n\n", dir, profileName, result.Total())

	fmt.Fprintf(out, "To import (%d):\n", len(result.FilesToImport))
	for _, f := range result.FilesToImport {
		fmt.Fprintf(out, "  + %-28s %s\n", icons.DisplayName(f.Name, 28), f.Path)
	}

	fmt.Fprintf(out, "\nAlready imported (%d):\n", len(result.AlreadyImported))
	for _, p := range result.AlreadyImported {
		fmt.Fprintf(out, "  = %-28s -> %s\n", icons.DisplayName(p.File.Name, 28), p.Icon.Name)
	}

	fmt.Fprintf(out, "\nSame name, different path (%d):\n", len(result.NameOnlyMatches))
	for _, m := range result.NameOnlyMatches {
		// Show only the part of the icon's link that diverges from the file.
		matched, rest := reconcile.SplitAtCommonPrefix(m.Icon.ProgramLink, m.Path)
		link := m.Icon.ProgramLink
		if matched != "" && rest != "" {
			link = "..." + rest
		}
		fmt.Fprintf(out, "  ~ %-28s icon points at %s\n", icons.DisplayName(m.Name, 28), link)
	}

	fmt.Fprintf(out, "\nSame folder, different name (%d):\n", len(result.PathOnlyMatches))
	for _, m := range result.PathOnlyMatches {
		fmt.Fprintf(out, "  ? %-28s near icon %q\n", icons.DisplayName(m.Name, 28), m.Icon.Name)
	}
}
