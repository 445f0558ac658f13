package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var showJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			n, err := resolveNote(cmd.Context(), svc, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showJSON {
				return writeJSON(out, toNoteJSON(n))
			}
			fmt.Fprintf(out, "# %s\n", n.Title)
			fmt.Fprintf(out, "id: %s  flags: %s", n.ID, flags(n))
			if n.Category != nil {
				fmt.Fprintf(out, "  category: %s", n.Category.Name)
			}
			fmt.Fprintf(out, "\nmodified: %s\n\n%s\n", n.ModifiedAt.Local().Format("2006-01-02 15:04"), n.Content)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	return cmd
}

func init() {
	commands = append(commands, newShowCmd)
}
