package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/quicknotes/pkg/core"
)

func newSearchCmd(a *app) *cobra.Command {
	var searchJSON bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search every note, archived and completed included",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			notes, err := svc.ListNotes(cmd.Context())
			if err != nil {
				return err
			}
			return writeNotes(cmd.OutOrStdout(), core.SearchNotes(notes, strings.Join(args, " ")), searchJSON)
		},
	}
	cmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	return cmd
}

func init() {
	commands = append(commands, newSearchCmd)
}
