package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <collection> <id>",
	Short: "Change fields of one entry",
	Long: "Updates the fields given as flags on one entry and leaves the rest unchanged. " +
		"Form problems are printed as warnings, or reject the change with --strict.",
}

func init() {
	for _, name := range collectionNames() {
		updateCmd.AddCommand(newUpdateCommand(collections[name]))
	}
	rootCmd.AddCommand(updateCmd)
}

func newUpdateCommand(c collection) *cobra.Command {
	cmd := &cobra.Command{
		Use:   c.name + " <id>",
		Short: fmt.Sprintf("Change fields of one %s entry", c.name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, err := cmd.Flags().GetBool("strict")
			if err != nil {
				return err
			}
			v := changedValues(cmd, c.fields)

			return withSession(cmd, func(st *store.Store) error {
				result, err := c.update(st, args[0], v, strict)
				if err != nil {
					return fmt.Errorf("failed to update %s entry: %w", c.name, err)
				}
				title := fmt.Sprintf("%s %s", c.name, args[0])
				if err := reportForm(cmd, title, result.form, strict); err != nil {
					return err
				}
				if result.applied {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", title)
				}
				return nil
			})
		},
	}
	registerFields(cmd, c.fields)
	cmd.Flags().Bool("strict", false, "Reject the change if the entry has form problems")
	return cmd
}
