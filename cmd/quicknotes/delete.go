package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := a.service(ctx)
			if err != nil {
				return err
			}
			n, err := resolveNote(ctx, svc, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteNote(ctx, n.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %s\n", n.ID)
			return nil
		},
	}
}

func init() {
	commands = append(commands, newDeleteCmd)
}
