package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quicknotes/pkg/adapters/lifecycle"
	"github.com/aretw0/quicknotes/pkg/core"
)

func newPrefsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change user preferences",
	}
	cmd.AddCommand(newPrefsShowCmd(a), newPrefsSetCmd(a), newPrefsWatchCmd(a))
	return cmd
}

func printPrefs(cmd *cobra.Command, p core.Preferences) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sort_order: %s\n", p.SortOrder)
	fmt.Fprintf(out, "dark_mode: %t\n", p.DarkMode)
	fmt.Fprintf(out, "notifications_enabled: %t\n", p.NotificationsEnabled)
	fmt.Fprintf(out, "onboarding_completed: %t\n", p.OnboardingCompleted)
}

func newPrefsShowCmd(a *app) *cobra.Command {
	var showJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.preferences()
			if err != nil {
				return err
			}
			p, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			if showJSON {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			printPrefs(cmd, p)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	return cmd
}

func newPrefsSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one preference",
		Long: `Keys: sort_order (newest-first, oldest-first, title-ascending,
title-descending), dark_mode, notifications_enabled, onboarding_completed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := a.preferences()
			if err != nil {
				return err
			}
			p, err := store.Load(ctx)
			if err != nil {
				return err
			}
			p, err = p.Set(args[0], args[1])
			if err != nil {
				return err
			}
			if err := store.Save(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
			return nil
		},
	}
}

func newPrefsWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the preferences every time the file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.preferences()
			if err != nil {
				return err
			}
			changes, err := store.Watch(cmd.Context())
			if err != nil {
				return err
			}
			source := lifecycle.NewPreferencesSource(changes)
			if err := source.Start(cmd.Context()); err != nil {
				return err
			}
			a.log().Info("watching preferences", "path", store.Path())
			for e := range source.Events() {
				if changed, ok := e.(lifecycle.PreferencesChanged); ok {
					printPrefs(cmd, changed.Preferences)
					fmt.Fprintln(cmd.OutOrStdout(), "---")
				}
			}
			return nil
		},
	}
}

func init() {
	commands = append(commands, newPrefsCmd)
}
