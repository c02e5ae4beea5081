package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arkadas/deskgrid/internal/icons"
	"github.com/arkadas/deskgrid/internal/importer"
	"github.com/arkadas/deskgrid/internal/prompt"
	"github.com/arkadas/deskgrid/internal/reconcile"
)

type importOptions struct {
	profileName string
	fromProfile string
	fromDesktop bool
	yes         bool
}

func newImportCmd(opts *globalOptions) *cobra.Command {
	importOpts := importOptions{}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import missing icons into a profile",
		Long: `Import copies icons into the target profile. With --from, every icon of
the source profile that the target does not already have is imported.
With --desktop, every unclassified file on the desktop becomes a new icon.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, opts, &importOpts)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().StringVarP(&importOpts.profileName, "profile", "p", "", "Target profile")
	cmd.Flags().StringVar(&importOpts.fromProfile, "from", "", "Source profile to import missing icons from")
	cmd.Flags().BoolVar(&importOpts.fromDesktop, "desktop", false, "Import unmatched desktop files as new icons")
	cmd.Flags().BoolVarP(&importOpts.yes, "yes", "y", false, "Import without asking")
	return cmd
}

func runImport(cmd *cobra.Command, opts *globalOptions, importOpts *importOptions) error {
	if importOpts.fromProfile == "" && !importOpts.fromDesktop {
		_ = cmd.Usage()
		return fmt.Errorf("nothing to import: pass --from <profile> or --desktop")
	}

	env, err := setup(opts)
	if err != nil {
		return err
	}
	targetName, err := resolveProfile(env, importOpts.profileName)
	if err != nil {
		return err
	}
	target, err := env.store.Load(targetName)
	if err != nil {
		return err
	}

	batch := importer.Batch{Profile: targetName}

	if importOpts.fromProfile == targetName && importOpts.fromProfile != "" {
		return fmt.Errorf("source and target profile are both %q", targetName)
	}
	if importOpts.fromProfile != "" {
		source, err := env.store.Load(importOpts.fromProfile)
		if err != nil {
			return err
		}
		batch.Records = reconcile.Profiles(target, source).FilesToImport
	}
	if importOpts.fromDesktop {
		files, err := env.scanner.List()
		if err != nil {
			return err
		}
		batch.Files = reconcile.DesktopFiles(target, files).FilesToImport
	}

	out := cmd.OutOrStdout()
	count := len(batch.Records) + len(batch.Files)
	if count == 0 {
		fmt.Fprintln(out, "Nothing to import: the profile is already up to date.")
		return nil
	}

	confirmer := prompt.DefaultConfirmer()
	confirmer.Out = out
	ok, err := confirmer.ConfirmImport(targetName, count, importOpts.yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	ctx, stop := signalContext()
	defer stop()

	svc := importer.NewService(env.store, env.cfg.Grid.Cols)
	svc.OnProgress = func(done, total int) {
		fmt.Fprintf(out, "\rImporting %d/%d...", done, total)
	}

	report, err := svc.ImportAll(ctx, batch)
	fmt.Fprintln(out)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Imported %d icon(s) into %q.\n", len(report.Imported), targetName)
	for _, rec := range report.Imported {
		fmt.Fprintf(out, "  + %s\n", icons.DisplayName(rec.Name, 40))
	}
	if len(report.Failures) > 0 {
		fmt.Fprintf(out, "%d item(s) failed:\n", len(report.Failures))
		for _, f := range report.Failures {
			fmt.Fprintf(out, "  ! %s: %v\n", f.Name, f.Err)
		}
	}
	return nil
}
