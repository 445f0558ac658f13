package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty store with the sample categories and notes",
		Long: `Sample data is written only when the store holds no notes. Stores are
seeded automatically when opened unless --no-seed is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			if svc.SeedIfNeeded(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), "Store seeded with sample notes")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Store already has notes, nothing seeded")
			return nil
		},
	}
}

func init() {
	commands = append(commands, newSeedCmd)
}
