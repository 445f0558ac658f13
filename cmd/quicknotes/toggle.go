package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aretw0/quicknotes/pkg/core"
)

type toggleFunc func(svc *core.Service, ctx context.Context, id uuid.UUID) (core.Note, error)

func newToggleCmd(a *app, use, short, state string, toggle toggleFunc, get func(core.Note) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
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
			updated, err := toggle(svc, ctx, n.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %t\n", shortID(updated.ID.String()), state, get(updated))
			return nil
		},
	}
}

func init() {
	commands = append(commands,
		func(a *app) *cobra.Command {
			return newToggleCmd(a, "pin", "Pin or unpin a note", "pinned",
				(*core.Service).TogglePinned, func(n core.Note) bool { return n.Pinned })
		},
		func(a *app) *cobra.Command {
			return newToggleCmd(a, "archive", "Archive or restore a note", "archived",
				(*core.Service).ToggleArchived, func(n core.Note) bool { return n.Archived })
		},
		func(a *app) *cobra.Command {
			return newToggleCmd(a, "complete", "Mark a note as done or not done", "completed",
				(*core.Service).ToggleCompleted, func(n core.Note) bool { return n.Completed })
		},
	)
}
