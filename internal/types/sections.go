//nolint:revive // types is a standard Go package name pattern
package types

// Section names one of the nine toggleable content groups.
type Section string

// Known sections
const (
	SectionPhoto          Section = "photo"
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionCertifications Section = "certifications"
	SectionProjects       Section = "projects"
	SectionLanguages      Section = "languages"
	SectionAwards         Section = "awards"
)

// Sections returns every section in form order.
func Sections() []Section {
	return []Section{
		SectionPhoto, SectionSummary, SectionExperience, SectionEducation, SectionSkills,
		SectionCertifications, SectionProjects, SectionLanguages, SectionAwards,
	}
}

// Valid reports whether s is one of the nine sections.
func (s Section) Valid() bool {
	switch s {
	case SectionPhoto, SectionSummary, SectionExperience, SectionEducation, SectionSkills,
		SectionCertifications, SectionProjects, SectionLanguages, SectionAwards:
		return true
	}
	return false
}

// ParseSection converts s into a Section, rejecting unknown names.
func ParseSection(s string) (Section, error) {
	return parseEnum("section", s, Section.Valid)
}

// UnmarshalJSON rejects unknown sections.
func (s *Section) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, "section", s, Section.Valid)
}

// ShowSections holds the visibility flag of every section. It is a fixed
// struct so keys can never be added or removed.
type ShowSections struct {
	Photo          bool `json:"photo"`
	Summary        bool `json:"summary"`
	Experience     bool `json:"experience"`
	Education      bool `json:"education"`
	Skills         bool `json:"skills"`
	Certifications bool `json:"certifications"`
	Projects       bool `json:"projects"`
	Languages      bool `json:"languages"`
	Awards         bool `json:"awards"`
}

// flag returns a pointer to the field backing s, or nil for unknown sections.
func (v *ShowSections) flag(s Section) *bool {
	switch s {
	case SectionPhoto:
		return &v.Photo
	case SectionSummary:
		return &v.Summary
	case SectionExperience:
		return &v.Experience
	case SectionEducation:
		return &v.Education
	case SectionSkills:
		return &v.Skills
	case SectionCertifications:
		return &v.Certifications
	case SectionProjects:
		return &v.Projects
	case SectionLanguages:
		return &v.Languages
	case SectionAwards:
		return &v.Awards
	}
	return nil
}

// Shows reports whether section s is visible. Unknown sections are hidden.
func (v ShowSections) Shows(s Section) bool {
	if p := v.flag(s); p != nil {
		return *p
	}
	return false
}

// Toggled returns a copy of v with the flag for s flipped. The second result
// is false when s is not a known section.
func (v ShowSections) Toggled(s Section) (ShowSections, bool) {
	p := v.flag(s)
	if p == nil {
		return v, false
	}
	*p = !*p
	return v, true
}

