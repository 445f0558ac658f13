package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/quicknotes/pkg/core"
)

func newCategoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage categories",
	}
	cmd.AddCommand(
		newCategoryListCmd(a),
		newCategoryAddCmd(a),
		newCategoryUpdateCmd(a),
		newCategoryDeleteCmd(a),
		newCategoryOptionsCmd(),
	)
	return cmd
}

func newCategoryListCmd(a *app) *cobra.Command {
	var listJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			categories, err := svc.ListCategories(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if listJSON {
				items := make([]categoryJSON, len(categories))
				for i, c := range categories {
					items[i] = toCategoryJSON(c)
				}
				return writeJSON(out, items)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, c := range categories {
				fmt.Fprintf(tw, "%s\t%s\t#%s\t%s\n", shortID(c.ID.String()), c.Name, c.ColorHex, c.Icon)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	return cmd
}

func newCategoryAddCmd(a *app) *cobra.Command {
	var icon, color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			c := core.NewCategory(args[0], icon, core.NormalizeColorHex(color))
			if err := svc.AddCategory(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Category created: %s\n", c.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&icon, "icon", core.DefaultIcon, "Icon key, see 'category options'")
	cmd.Flags().StringVar(&color, "color", core.DefaultColorHex, "Colour as RRGGBB or RRGGBBAA")
	return cmd
}

func newCategoryUpdateCmd(a *app) *cobra.Command {
	var name, icon, color string

	cmd := &cobra.Command{
		Use:   "update <category>",
		Short: "Rename or restyle a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := a.service(ctx)
			if err != nil {
				return err
			}
			c, err := resolveCategory(ctx, svc, args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				c = c.WithName(name)
			}
			if flags.Changed("icon") {
				c = c.WithIcon(icon)
			}
			if flags.Changed("color") {
				c = c.WithColorHex(core.NormalizeColorHex(color))
			}
			if err := svc.UpdateCategory(ctx, c.Touch(core.Now())); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Category updated: %s\n", c.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&icon, "icon", "", "New icon key")
	cmd.Flags().StringVar(&color, "color", "", "New colour")
	return cmd
}

func newCategoryDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category>",
		Short: "Delete a category, keeping its notes uncategorized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := a.service(ctx)
			if err != nil {
				return err
			}
			c, err := resolveCategory(ctx, svc, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteCategory(ctx, c.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Category deleted: %s\n", c.Name)
			return nil
		},
	}
}

func newCategoryOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Show the available icons and suggested colours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ICONS")
			for _, o := range core.Icons {
				fmt.Fprintf(tw, "%s\t%s\n", o.Key, o.Label)
			}
			fmt.Fprintln(tw, "\nCOLOURS")
			for _, o := range core.Palette {
				fmt.Fprintf(tw, "%s\t%s\n", o.Key, o.Label)
			}
			return tw.Flush()
		},
	}
}

func init() {
	commands = append(commands, newCategoryCmd)
}
