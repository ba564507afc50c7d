package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resume as an A4 PDF and/or a PNG image",
	Long:  "Renders the resume and prints it with headless Chrome. Set CHROME_PATH or chrome_path if Chrome is not on the usual path.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var (
	exportFormat string
	exportOutDir string
	exportName   string
)

// newExporter builds the exporter used by the export command.
var newExporter = func(cfg config.Config, logger *zap.Logger) export.Exporter {
	return export.NewChromeExporter(export.ChromeOptions{ExecPath: cfg.ChromePath, Logger: logger})
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(export.FormatPDF), "pdf, png or all")
	exportCmd.Flags().StringVar(&exportOutDir, "out-dir", "", "Output directory (default from config)")
	exportCmd.Flags().StringVar(&exportName, "name", "resume", "File name without extension")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	outDir := exportOutDir
	if outDir == "" {
		outDir = settings.OutputDir
	}

	return withSession(cmd, func(st *store.Store) error {
		page, err := rendering.RenderHTML(st.Snapshot())
		if err != nil {
			return fmt.Errorf("failed to render resume: %w", err)
		}

		paths, err := export.Export(cmd.Context(), newExporter(settings, logger), format, page, rendering.PreviewID, outDir, exportName)
		if err != nil {
			return err
		}
		observability.NewPrinter(cmd.OutOrStdout()).PrintExports(paths)
		return nil
	})
}
