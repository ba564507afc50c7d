package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <collection>",
	Short: "Append an empty entry and print its id",
	Long: "Appends an entry with default values to a collection (" +
		strings.Join(collectionNames(), ", ") + ") and prints its id. Fill it in with update.",
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	c, err := lookupCollection(args[0])
	if err != nil {
		return err
	}
	return withSession(cmd, func(st *store.Store) error {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.add(st))
		return nil
	})
}
