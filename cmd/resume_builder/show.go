package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current resume",
	Long:  "Prints the saved resume as JSON (default), as a terminal preview of its template, or as a short summary.",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var (
	showJSON    bool
	showPreview bool
	showSummary bool
	showWidth   int
)

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the document as JSON")
	showCmd.Flags().BoolVar(&showPreview, "preview", false, "Render the selected template in the terminal")
	showCmd.Flags().BoolVar(&showSummary, "summary", false, "Print a summary of sections and entries")
	showCmd.Flags().IntVar(&showWidth, "width", preview.DefaultWidth, "Preview width in columns")
	showCmd.MarkFlagsMutuallyExclusive("json", "preview", "summary")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(st *store.Store) error {
		doc := st.Snapshot()
		out := cmd.OutOrStdout()

		switch {
		case showPreview:
			text, err := preview.New(out, showWidth).Render(doc)
			if err != nil {
				return fmt.Errorf("failed to render preview: %w", err)
			}
			_, _ = fmt.Fprintln(out, text)
		case showSummary:
			observability.NewPrinter(out).PrintResume(&doc)
		default:
			jsonBytes, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal resume: %w", err)
			}
			_, _ = fmt.Fprintln(out, string(jsonBytes))
		}
		return nil
	})
}
