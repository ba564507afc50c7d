//nolint:revive // types is a standard Go package name pattern
package types

// EmptyResume returns the fully populated document a new session starts from.
// Every call returns fresh memory.
func EmptyResume() Resume {
	return Resume{
		SchemaVersion: CurrentSchemaVersion,
		Template:      TemplateModern,
		AccentColor:   AccentBlue,
		PersonalInfo: PersonalInfo{
			LinkedIn: Str(""),
			Website:  Str(""),
		},
		Experience:     []Experience{},
		Education:      []Education{},
		Skills:         []Skill{},
		Certifications: []Certification{},
		Projects:       []Project{},
		Languages:      []Language{},
		Awards:         []Award{},
		ShowSections: ShowSections{
			Photo:      true,
			Summary:    true,
			Experience: true,
			Education:  true,
			Skills:     true,
		},
	}
}

// NewExperience returns a blank experience entry.
func NewExperience(id string) Experience {
	return Experience{ID: id}
}

// NewEducation returns a blank education entry.
func NewEducation(id string) Education {
	return Education{ID: id, GPA: Str(""), Description: Str("")}
}

// NewSkill returns a blank skill at intermediate level.
func NewSkill(id string) Skill {
	level := LevelIntermediate
	return Skill{ID: id, Level: &level, Category: Str("")}
}

// NewCertification returns a blank certification.
func NewCertification(id string) Certification {
	return Certification{ID: id, URL: Str("")}
}

// NewProject returns a blank project with no technologies.
func NewProject(id string) Project {
	return Project{ID: id, URL: Str("")}
}

// NewLanguage returns a blank language at conversational proficiency.
func NewLanguage(id string) Language {
	p := ProficiencyConversational
	return Language{ID: id, Proficiency: &p}
}

// NewAward returns a blank award.
func NewAward(id string) Award {
	return Award{ID: id, Description: Str("")}
}
