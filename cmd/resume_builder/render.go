package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the resume as a standalone HTML page",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

var renderOutputFile string

func init() {
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output HTML file (default stdout)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(st *store.Store) error {
		page, err := rendering.RenderHTML(st.Snapshot())
		if err != nil {
			return fmt.Errorf("failed to render resume: %w", err)
		}

		if renderOutputFile == "" || renderOutputFile == "-" {
			_, err := cmd.OutOrStdout().Write(page)
			return err
		}

		// Ensure output directory exists
		if err := os.MkdirAll(filepath.Dir(renderOutputFile), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(renderOutputFile, page, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", renderOutputFile)
		return nil
	})
}
