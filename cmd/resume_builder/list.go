package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <collection>",
	Short: "List the entries of a collection with their ids",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lookupCollection(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(st *store.Store) error {
			printCollection(cmd, c, st.Snapshot())
			return nil
		})
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <collection> <id>",
	Short: "Delete one entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lookupCollection(args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(st *store.Store) error {
			if err := requireEntry(c, st.Snapshot(), args[1]); err != nil {
				return err
			}
			c.remove(st, args[1])
			printCollection(cmd, c, st.Snapshot())
			return nil
		})
	},
}

var moveCmd = &cobra.Command{
	Use:   "move <collection> <id> <up|down|offset>",
	Short: "Reorder one entry",
	Long: "Moves an entry up or down by one place, or by an offset. Negative offsets must " +
		"follow --, e.g. move skills skill-1 -- -2. Moves past either end stop there.",
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lookupCollection(args[0])
		if err != nil {
			return err
		}
		delta, err := parseDelta(args[2])
		if err != nil {
			return err
		}
		return withSession(cmd, func(st *store.Store) error {
			if err := requireEntry(c, st.Snapshot(), args[1]); err != nil {
				return err
			}
			c.move(st, args[1], delta)
			printCollection(cmd, c, st.Snapshot())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd, removeCmd, moveCmd)
}

func parseDelta(s string) (int, error) {
	switch strings.ToLower(s) {
	case "up":
		return -1, nil
	case "down":
		return 1, nil
	}
	delta, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid move %q: want up, down or an integer offset", s)
	}
	return delta, nil
}

func requireEntry(c collection, doc types.Resume, id string) error {
	ids, _ := c.list(doc)
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return fmt.Errorf("no %s entry with id %q", c.name, id)
}

func printCollection(cmd *cobra.Command, c collection, doc types.Resume) {
	ids, labels := c.list(doc)
	observability.NewPrinter(cmd.OutOrStdout()).PrintRecords(strings.ToUpper(c.name), ids, labels)
}
