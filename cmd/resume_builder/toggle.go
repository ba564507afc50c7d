package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <section>",
	Short: "Show or hide a section",
	Long:  "Flips the visibility of one section: photo, summary, experience, education, skills, certifications, projects, languages or awards.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		section := types.Section(args[0])
		return withSession(cmd, func(st *store.Store) error {
			if err := st.ToggleSection(section); err != nil {
				return err
			}
			state := "hidden"
			if st.Snapshot().ShowSections.Shows(section) {
				state = "shown"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", section, state)
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the resume and start from an empty one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withSession(cmd, func(st *store.Store) error {
			if err := st.ResetResume(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Resume reset")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd, resetCmd)
}
