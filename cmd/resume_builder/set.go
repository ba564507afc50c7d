package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/photo"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Change a single-valued part of the resume",
}

var personalFields = []field{
	{name: "full-name", usage: "Full name"},
	{name: "job-title", usage: "Job title shown under the name"},
	{name: "email", usage: "Email address"},
	{name: "phone", usage: "Phone number"},
	{name: "location", usage: "City, country"},
	{name: "linkedin", usage: "LinkedIn profile URL"},
	{name: "website", usage: "Personal website URL"},
}

var setPersonalCmd = &cobra.Command{
	Use:   "personal",
	Short: "Update contact details and photo",
	Long: "Updates the fields given as flags and leaves the rest unchanged. " +
		"Form problems are printed as warnings, or reject the change with --strict.",
	Args: cobra.NoArgs,
	RunE: runSetPersonal,
}

var (
	personalPhoto       string
	personalRemovePhoto bool
	personalStrict      bool
)

var setSummaryCmd = &cobra.Command{
	Use:   "summary <text>",
	Short: "Replace the professional summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(st *store.Store) error {
			st.UpdateSummary(args[0])
			return nil
		})
	},
}

var setTemplateCmd = &cobra.Command{
	Use:   "template <modern|classic|minimal|creative>",
	Short: "Select the layout template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(st *store.Store) error {
			return st.UpdateTemplate(types.Template(args[0]))
		})
	},
}

var setAccentCmd = &cobra.Command{
	Use:   "accent <blue|green|purple|red|orange|teal|gray>",
	Short: "Select the accent color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(st *store.Store) error {
			return st.UpdateAccentColor(types.AccentColor(args[0]))
		})
	},
}

func init() {
	registerFields(setPersonalCmd, personalFields)
	setPersonalCmd.Flags().StringVar(&personalPhoto, "photo", "", "Image file to use as the photo (max 5MB)")
	setPersonalCmd.Flags().BoolVar(&personalRemovePhoto, "remove-photo", false, "Remove the photo")
	setPersonalCmd.Flags().BoolVar(&personalStrict, "strict", false, "Reject the change if the form has problems")
	setPersonalCmd.MarkFlagsMutuallyExclusive("photo", "remove-photo")

	setCmd.AddCommand(setPersonalCmd, setSummaryCmd, setTemplateCmd, setAccentCmd)
	rootCmd.AddCommand(setCmd)
}

func runSetPersonal(cmd *cobra.Command, _ []string) error {
	v := changedValues(cmd, personalFields)
	patch := types.PersonalInfoPatch{
		FullName: v.str("full-name"),
		JobTitle: v.str("job-title"),
		Email:    v.str("email"),
		Phone:    v.str("phone"),
		Location: v.str("location"),
		LinkedIn: v.str("linkedin"),
		Website:  v.str("website"),
	}

	switch {
	case personalPhoto != "":
		uri, err := photo.FromFile(personalPhoto)
		if err != nil {
			return err
		}
		patch.Photo = &uri
	case personalRemovePhoto:
		patch.Photo = types.Str("")
	}

	return withSession(cmd, func(st *store.Store) error {
		candidate := patch.Apply(st.Snapshot().PersonalInfo)
		form := schemas.ValidateStrict(schemas.PersonalInfoFormFrom(candidate))
		if err := reportForm(cmd, "personal info", form, personalStrict); err != nil {
			return err
		}
		st.UpdatePersonalInfo(patch)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Updated personal info")
		return nil
	})
}
