package schemas

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/types"
)

// FormResult is the outcome of strict validation. FieldErrors is keyed by the
// JSON field name and holds one user-facing message per field.
type FormResult struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// PersonalInfoForm is the contact block as entered in the form.
type PersonalInfoForm struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	JobTitle string `json:"jobTitle" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Location string `json:"location" validate:"required"`
	LinkedIn string `json:"linkedin" validate:"omitempty,url"`
	Website  string `json:"website" validate:"omitempty,url"`
	Photo    string `json:"photo"`
}

// ExperienceForm is one experience entry as entered in the form.
type ExperienceForm struct {
	Company     string `json:"company" validate:"required"`
	Position    string `json:"position" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// EducationForm is one education entry as entered in the form.
type EducationForm struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Field       string `json:"field"`
	StartYear   string `json:"startYear" validate:"required"`
	EndYear     string `json:"endYear"`
	GPA         string `json:"gpa"`
	Description string `json:"description"`
}

// SkillForm is one skill as entered in the form.
type SkillForm struct {
	Name     string `json:"name" validate:"required"`
	Level    string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	Category string `json:"category"`
}

// CertificationForm is one certification as entered in the form.
type CertificationForm struct {
	Name   string `json:"name" validate:"required"`
	Issuer string `json:"issuer" validate:"required"`
	Date   string `json:"date" validate:"required"`
	URL    string `json:"url" validate:"omitempty,url"`
}

// ProjectForm is one project as entered in the form.
type ProjectForm struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	URL          string   `json:"url" validate:"omitempty,url"`
	Technologies []string `json:"technologies"`
}

// LanguageForm is one language as entered in the form.
type LanguageForm struct {
	Name        string `json:"name" validate:"required"`
	Proficiency string `json:"proficiency" validate:"omitempty,oneof=basic conversational fluent native"`
}

// AwardForm is one award as entered in the form.
type AwardForm struct {
	Title       string `json:"title" validate:"required"`
	Issuer      string `json:"issuer" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description"`
}

// formMessages maps "<Form>.<Field>.<tag>" to the message shown next to the
// field.
var formMessages = map[string]string{
	"PersonalInfoForm.FullName.required": "Full name is required",
	"PersonalInfoForm.FullName.max":      "Name too long",
	"PersonalInfoForm.JobTitle.required": "Job title is required",
	"PersonalInfoForm.JobTitle.max":      "Title too long",
	"PersonalInfoForm.Email.required":    "Invalid email address",
	"PersonalInfoForm.Email.email":       "Invalid email address",
	"PersonalInfoForm.Phone.required":    "Phone number is required",
	"PersonalInfoForm.Location.required": "Location is required",
	"PersonalInfoForm.LinkedIn.url":      "Invalid LinkedIn URL",
	"PersonalInfoForm.Website.url":       "Invalid website URL",

	"ExperienceForm.Company.required":   "Company is required",
	"ExperienceForm.Position.required":  "Position is required",
	"ExperienceForm.StartDate.required": "Start date is required",

	"EducationForm.Institution.required": "Institution is required",
	"EducationForm.Degree.required":      "Degree is required",
	"EducationForm.StartYear.required":   "Start year is required",

	"SkillForm.Name.required": "Skill name is required",
	"SkillForm.Level.oneof":   "Invalid skill level",

	"CertificationForm.Name.required":   "Certification name is required",
	"CertificationForm.Issuer.required": "Issuer is required",
	"CertificationForm.Date.required":   "Date is required",
	"CertificationForm.URL.url":         "Invalid URL",

	"ProjectForm.Name.required": "Project name is required",
	"ProjectForm.URL.url":       "Invalid URL",

	"LanguageForm.Name.required":     "Language is required",
	"LanguageForm.Proficiency.oneof": "Invalid proficiency",

	"AwardForm.Title.required":  "Award title is required",
	"AwardForm.Issuer.required": "Issuer is required",
	"AwardForm.Date.required":   "Date is required",
}

var formValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
})

// ValidateStrict applies the business rules of the form that candidate
// belongs to. candidate is one of the *Form types, by value or pointer.
func ValidateStrict(candidate any) FormResult {
	err := formValidator().Struct(candidate)
	if err == nil {
		return FormResult{Valid: true}
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return FormResult{FieldErrors: map[string]string{"(form)": "unsupported form value"}}
	}

	result := FormResult{FieldErrors: make(map[string]string)}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		result.FieldErrors["(form)"] = err.Error()
		return result
	}
	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, seen := result.FieldErrors[field]; seen {
			continue
		}
		result.FieldErrors[field] = messageFor(fe)
	}
	return result
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := formMessages[fe.StructNamespace()+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "url":
		return "Invalid URL"
	case "max":
		return fe.Field() + " is too long"
	}
	return "Invalid value"
}

// PersonalInfoFormFrom builds the form view of a stored contact block.
func PersonalInfoFormFrom(p types.PersonalInfo) PersonalInfoForm {
	return PersonalInfoForm{
		FullName: p.FullName,
		JobTitle: p.JobTitle,
		Email:    p.Email,
		Phone:    p.Phone,
		Location: p.Location,
		LinkedIn: types.Deref(p.LinkedIn),
		Website:  types.Deref(p.Website),
		Photo:    types.Deref(p.Photo),
	}
}

// ExperienceFormFrom builds the form view of an experience entry.
func ExperienceFormFrom(e types.Experience) ExperienceForm {
	return ExperienceForm{
		Company:     e.Company,
		Position:    e.Position,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Current:     e.Current,
		Location:    e.Location,
		Description: e.Description,
	}
}

// EducationFormFrom builds the form view of an education entry.
func EducationFormFrom(e types.Education) EducationForm {
	return EducationForm{
		Institution: e.Institution,
		Degree:      e.Degree,
		Field:       e.Field,
		StartYear:   e.StartYear,
		EndYear:     e.EndYear,
		GPA:         types.Deref(e.GPA),
		Description: types.Deref(e.Description),
	}
}

// SkillFormFrom builds the form view of a skill.
func SkillFormFrom(s types.Skill) SkillForm {
	f := SkillForm{Name: s.Name, Category: types.Deref(s.Category)}
	if s.Level != nil {
		f.Level = string(*s.Level)
	}
	return f
}

// CertificationFormFrom builds the form view of a certification.
func CertificationFormFrom(c types.Certification) CertificationForm {
	return CertificationForm{Name: c.Name, Issuer: c.Issuer, Date: c.Date, URL: types.Deref(c.URL)}
}

// ProjectFormFrom builds the form view of a project.
func ProjectFormFrom(p types.Project) ProjectForm {
	return ProjectForm{Name: p.Name, Description: p.Description, URL: types.Deref(p.URL), Technologies: p.Technologies}
}

// LanguageFormFrom builds the form view of a language.
func LanguageFormFrom(l types.Language) LanguageForm {
	f := LanguageForm{Name: l.Name}
	if l.Proficiency != nil {
		f.Proficiency = string(*l.Proficiency)
	}
	return f
}

// AwardFormFrom builds the form view of an award.
func AwardFormFrom(a types.Award) AwardForm {
	return AwardForm{Title: a.Title, Issuer: a.Issuer, Date: a.Date, Description: types.Deref(a.Description)}
}
