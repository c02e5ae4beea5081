package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arkadas/deskgrid/internal/icons"
	"github.com/arkadas/deskgrid/internal/profile"
	"github.com/arkadas/deskgrid/internal/prompt"
)

func newProfilesCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage icon profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfilesList(cmd, opts)
		},
	}
	cmd.SetUsageTemplate(groupUsageTemplate)

	cmd.AddCommand(
		newProfilesListCmd(opts),
		newProfilesCreateCmd(opts),
		newProfilesDeleteCmd(opts),
		newProfilesRenameCmd(opts),
	)
	return cmd
}

func newProfilesListCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List profiles (default if no action given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfilesList(cmd, opts)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newProfilesCreateCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfilesCreate(cmd, opts, args[0])
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newProfilesDeleteCmd(opts *globalOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfilesDelete(cmd, opts, args[0], yes)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}

func newProfilesRenameCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfilesRename(cmd, opts, args[0], args[1])
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runProfilesList(cmd *cobra.Command, opts *globalOptions) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	names, err := env.store.List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No profiles yet. Create one with \"deskgrid profiles create <name>\".")
		return nil
	}
	fmt.Fprintln(out, "Profiles:")
	for _, name := range names {
		records, err := env.store.Load(name)
		if err != nil {
			return err
		}
		marker := " "
		if name == env.cfg.DefaultProfile {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-24s %d icon(s)\n", marker, name, len(records))
	}
	return nil
}

func runProfilesCreate(cmd *cobra.Command, opts *globalOptions, name string) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	if err := profile.ValidateName(name); err != nil {
		return err
	}
	exists, err := env.store.Exists(name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("profile %q already exists", name)
	}
	if err := env.store.Save(name, []icons.Record{}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created profile %q.\n", name)
	return nil
}

func runProfilesDelete(cmd *cobra.Command, opts *globalOptions, name string, yes bool) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	confirmer := prompt.DefaultConfirmer()
	confirmer.Out = cmd.OutOrStdout()
	ok, err := confirmer.ConfirmDelete(name, yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}
	if err := env.store.Delete(name); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %q.\n", name)
	return nil
}

func runProfilesRename(cmd *cobra.Command, opts *globalOptions, oldName, newName string) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	if err := env.store.Rename(oldName, newName); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Renamed profile %q to %q.\n", oldName, newName)
	return nil
}
