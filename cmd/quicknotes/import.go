package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quicknotes/pkg/archive"
)

func newImportCmd(a *app) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "import [pattern]",
		Short: "Read notes back from Markdown files",
		Long: `Import reads the Markdown files matching pattern, relative to --root.
The pattern supports ** (default "**/*.md"). Files with frontmatter keep
their IDs, so importing an export twice updates instead of duplicating.
Categories are matched by name and created when missing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pattern := "**/*" + archive.Extension
			if len(args) == 1 {
				pattern = args[0]
			}

			items, err := archive.Import(ctx, os.DirFS(root), pattern)
			if err != nil {
				return usageErrorf("archive", "%w", err)
			}

			svc, err := a.service(ctx)
			if err != nil {
				return err
			}
			count, err := svc.ImportNotes(ctx, items)
			if err != nil {
				return fmt.Errorf("imported %d of %d notes: %w", count, len(items), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d notes\n", count)
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", ".", "Directory the pattern is relative to")
	return cmd
}

func init() {
	commands = append(commands, newImportCmd)
}
