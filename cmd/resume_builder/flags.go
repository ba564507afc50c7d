package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

// registerFields adds one string flag per field. Boolean fields may be given
// without a value.
func registerFields(cmd *cobra.Command, fields []field) {
	for _, f := range fields {
		cmd.Flags().String(f.name, "", f.usage)
		if f.boolean {
			cmd.Flags().Lookup(f.name).NoOptDefVal = "true"
		}
	}
}

// changedValues collects the fields set on the command line.
func changedValues(cmd *cobra.Command, fields []field) values {
	v := values{}
	for _, f := range fields {
		if fl := cmd.Flags().Lookup(f.name); fl != nil && fl.Changed {
			v[f.name] = fl.Value.String()
		}
	}
	return v
}

// reportForm prints form problems on stderr. With strict, problems are an
// error and nothing was changed.
func reportForm(cmd *cobra.Command, title string, form schemas.FormResult, strict bool) error {
	if form.Valid {
		return nil
	}
	observability.NewPrinter(cmd.ErrOrStderr()).PrintFieldErrors(title, form.FieldErrors)
	if strict {
		return fmt.Errorf("%s has %d problem(s); nothing was changed", title, len(form.FieldErrors))
	}
	return nil
}
