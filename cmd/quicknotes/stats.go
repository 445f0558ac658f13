package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	var statsJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count notes by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			st, err := svc.Stats(cmd.Context())
			if err != nil {
				return err
			}

			if statsJSON {
				return writeJSON(cmd.OutOrStdout(), st)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Notes\t%d\n", st.Notes)
			fmt.Fprintf(tw, "Pinned\t%d\n", st.Pinned)
			fmt.Fprintf(tw, "Archived\t%d\n", st.Archived)
			fmt.Fprintf(tw, "Completed\t%d\n", st.Completed)
			fmt.Fprintf(tw, "Uncategorized\t%d\n", st.Uncategorized)
			fmt.Fprintf(tw, "Categories\t%d\n", st.Categories)
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&statsJSON, "json", false, "Output in JSON format")
	return cmd
}

func init() {
	commands = append(commands, newStatsCmd)
}
