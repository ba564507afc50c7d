// Package main implements the resume_builder CLI: edit a resume draft, preview
// it in the terminal and export it as PDF or PNG.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Build a resume from the command line",
	Long: "resume_builder edits a single resume draft that is saved automatically, " +
		"renders it with one of four templates and exports it as an A4 PDF or a PNG image.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

var (
	configPath string
	storageArg string
	storageDir string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&storageArg, "storage", "", "Storage backend: file, memory, postgres or redis")
	rootCmd.PersistentFlags().StringVar(&storageDir, "storage-dir", "", "Directory for the file storage backend")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs the root command and flushes buffered log output before
// returning, since os.Exit skips deferred calls.
func execute() error {
	defer syncLogger()
	return rootCmd.Execute()
}
