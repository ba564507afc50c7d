package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-builder/internal/importer"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the resume with a JSON or YAML document",
	Long:  "Reads a resume from a .json, .yaml or .yml file. The current resume is replaced only if the whole file is valid.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a JSON or YAML resume without importing it",
	Long: "Checks that a file is a well-formed resume document. With --strict the " +
		"contact details and every entry are also checked against the form rules.",
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var validateStrict bool

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Also apply the form rules")
	rootCmd.AddCommand(importCmd, validateCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	raw, err := importer.LoadFile(args[0])
	if err != nil {
		return err
	}
	return withSession(cmd, func(st *store.Store) error {
		if err := st.LoadResume(raw); err != nil {
			printValidation(cmd, args[0], err)
			return fmt.Errorf("failed to import %s: %w", args[0], err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", args[0])
		return nil
	})
}

func runValidate(cmd *cobra.Command, args []string) error {
	raw, err := importer.LoadFile(args[0])
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	doc, err := schemas.Validate(raw)
	if err != nil {
		printValidation(cmd, args[0], err)
		return fmt.Errorf("%s is not a valid resume", args[0])
	}
	printer.PrintFieldErrors(args[0], nil)

	if !validateStrict {
		return nil
	}
	problems := strictProblems(*doc)
	printer.PrintFieldErrors("form rules", problems)
	if len(problems) > 0 {
		return fmt.Errorf("%s has %d form problem(s)", args[0], len(problems))
	}
	return nil
}

// printValidation lists structural errors by field path.
func printValidation(cmd *cobra.Command, title string, err error) {
	var ve *schemas.ValidationError
	if !errors.As(err, &ve) {
		return
	}
	fields := make(map[string]string, len(ve.Errors))
	for _, fe := range ve.Errors {
		fields[fe.Field] = fe.Message
	}
	observability.NewPrinter(cmd.ErrOrStderr()).PrintFieldErrors(title, fields)
}

func strictProblems(doc types.Resume) map[string]string {
	problems := make(map[string]string)
	for f, msg := range schemas.ValidateStrict(schemas.PersonalInfoFormFrom(doc.PersonalInfo)).FieldErrors {
		problems["personalInfo."+f] = msg
	}
	for _, name := range collectionNames() {
		for f, msg := range collections[name].check(doc) {
			problems[f] = msg
		}
	}
	return problems
}
