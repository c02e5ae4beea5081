package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arkadas/deskgrid/internal/icons"
	"github.com/arkadas/deskgrid/internal/reconcile"
)

func newCompareCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <target> <source>",
		Short: "Compare two profiles and show what would import",
		Long: `Compare classifies every icon of the source profile against the target:
icons missing from the target, icons already present with equal content,
and icons present with the same id but diverged content.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, opts, args[0], args[1])
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runCompare(cmd *cobra.Command, opts *globalOptions, targetName, sourceName string) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	target, err := env.store.Load(targetName)
	if err != nil {
		return err
	}
	source, err := env.store.Load(sourceName)
	if err != nil {
		return err
	}

	result := reconcile.Profiles(target, source)
	printCompareResult(cmd.OutOrStdout(), targetName, sourceName, result)
	return nil
}

func printCompareResult(out io.Writer, targetName, sourceName string, result reconcile.Result) {
	fmt.Fprintf(out, "Comparing %q against %q: %d icon(s) in source\n\n",
		sourceName, targetName, result.Total())

	fmt.Fprintf(out, "To import (%d):\n", len(result.FilesToImport))
	for _, rec := range result.FilesToImport {
		fmt.Fprintf(out, "  + %s\n", icons.DisplayName(rec.Name, 40))
	}

	fmt.Fprintf(out, "\nAlready imported (%d):\n", len(result.AlreadyImported))
	for _, pair := range result.AlreadyImported {
		fmt.Fprintf(out, "  = %s\n", icons.DisplayName(pair.Other.Name, 40))
	}

	fmt.Fprintf(out, "\nModified (%d):\n", len(result.Modified))
	for _, mod := range result.Modified {
		fmt.Fprintf(out, "  ~ %s (differs in:", icons.DisplayName(mod.Other.Name, 40))
		for i, field := range mod.Differences {
			if i > 0 {
				fmt.Fprint(out, ",")
			}
			fmt.Fprintf(out, " %s", field)
		}
		fmt.Fprintln(out, ")")
	}
}
