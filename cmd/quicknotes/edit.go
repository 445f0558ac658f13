package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aretw0/quicknotes/pkg/core"
)

func newEditCmd(a *app) *cobra.Command {
	var (
		title    string
		content  string
		category string
		pinned   bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title, content, category or pin of a note",
		Long:  `Only the flags given are changed. --category "" removes the category.`,
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

			var edit core.NoteEdit
			flags := cmd.Flags()
			if flags.Changed("title") {
				edit.Title = &title
			}
			if flags.Changed("content") {
				edit.Content = &content
			}
			if flags.Changed("pinned") {
				edit.Pinned = &pinned
			}
			if flags.Changed("category") {
				id := uuid.Nil
				if category != "" {
					c, err := resolveCategory(ctx, svc, category)
					if err != nil {
						return err
					}
					id = c.ID
				}
				edit.CategoryID = &id
			}

			updated, err := svc.EditNote(ctx, n.ID, edit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note updated: %s\n", updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "New body")
	cmd.Flags().StringVar(&category, "category", "", "Category name or ID, empty to clear")
	cmd.Flags().BoolVar(&pinned, "pinned", false, "Pin or unpin the note")
	return cmd
}

func init() {
	commands = append(commands, newEditCmd)
}
