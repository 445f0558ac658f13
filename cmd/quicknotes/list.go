package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/quicknotes/pkg/core"
)

func newListCmd(a *app) *cobra.Command {
	var (
		listJSON bool
		category string
		showAll  bool
		query    string
		sort     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, pinned first",
		Long: `List notes the way the main screen shows them: archived and completed
notes are hidden unless --all is given. The sort order defaults to the
sort_order preference.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := a.service(ctx)
			if err != nil {
				return err
			}

			filter := core.ListFilter{ShowArchivedAndCompleted: showAll, Query: query}
			if category != "" {
				c, err := resolveCategory(ctx, svc, category)
				if err != nil {
					return err
				}
				filter.CategoryID = c.ID
			}

			if sort == "" {
				store, err := a.preferences()
				if err != nil {
					return err
				}
				prefs, err := store.Load(ctx)
				if err != nil {
					a.log().Warn("using default sort order", "error", err)
				}
				filter.Sort = prefs.SortOrder
			} else {
				order, err := core.ParseSortOrder(sort)
				if err != nil {
					return err
				}
				filter.Sort = order
			}

			notes, err := svc.ListNotes(ctx)
			if err != nil {
				return err
			}
			return writeNotes(cmd.OutOrStdout(), core.FilterNotes(notes, filter), listJSON)
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&category, "category", "", "Only notes in this category (name or ID)")
	cmd.Flags().BoolVar(&showAll, "all", false, "Include archived and completed notes")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive text filter on title and content")
	cmd.Flags().StringVar(&sort, "sort", "", "newest-first, oldest-first, title-ascending or title-descending")
	return cmd
}

func init() {
	commands = append(commands, newListCmd)
}
