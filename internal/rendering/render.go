package rendering

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// Renderer lays out a document. Render must not modify doc and must accept
// any combination of visible sections and empty collections.
type Renderer interface {
	Render(doc types.Resume) *Node
}

// For returns the renderer for t.
func For(t types.Template) (Renderer, error) {
	switch t {
	case types.TemplateModern:
		return modern{}, nil
	case types.TemplateClassic:
		return classic{}, nil
	case types.TemplateMinimal:
		return minimal{}, nil
	case types.TemplateCreative:
		return creative{}, nil
	}
	return nil, &TemplateError{Template: t, Message: "no renderer for template"}
}

// Render lays out doc with its own template.
func Render(doc types.Resume) (*Node, error) {
	r, err := For(doc.Template)
	if err != nil {
		return nil, err
	}
	return r.Render(doc), nil
}

// Visible reports whether section s has something to show: its flag is on
// and it has content.
func Visible(doc types.Resume, s types.Section) bool {
	if !doc.ShowSections.Shows(s) {
		return false
	}
	switch s {
	case types.SectionPhoto:
		return types.Deref(doc.PersonalInfo.Photo) != ""
	case types.SectionSummary:
		return doc.Summary != ""
	case types.SectionExperience:
		return len(doc.Experience) > 0
	case types.SectionEducation:
		return len(doc.Education) > 0
	case types.SectionSkills:
		return len(doc.Skills) > 0
	case types.SectionCertifications:
		return len(doc.Certifications) > 0
	case types.SectionProjects:
		return len(doc.Projects) > 0
	case types.SectionLanguages:
		return len(doc.Languages) > 0
	case types.SectionAwards:
		return len(doc.Awards) > 0
	}
	return false
}
