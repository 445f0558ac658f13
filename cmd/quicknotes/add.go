package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quicknotes/pkg/core"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		title    string
		content  string
		category string
		pinned   bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := a.service(ctx)
			if err != nil {
				return err
			}

			draft := core.NoteDraft{Title: title, Content: content, Pinned: pinned}
			if category != "" {
				c, err := resolveCategory(ctx, svc, category)
				if err != nil {
					return err
				}
				draft.CategoryID = c.ID
			}

			n, err := svc.CreateNote(ctx, draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note created: %s\n", n.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Note title (required)")
	cmd.Flags().StringVarP(&content, "content", "c", "", "Note body")
	cmd.Flags().StringVar(&category, "category", "", "Category name or ID")
	cmd.Flags().BoolVar(&pinned, "pinned", false, "Pin the note")
	return cmd
}

func init() {
	commands = append(commands, newAddCmd)
}
