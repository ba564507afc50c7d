//nolint:revive // types is a standard Go package name pattern
package types

import "reflect"

// CurrentSchemaVersion is the persisted layout version written by this build.
const CurrentSchemaVersion = 1

// Resume is the complete document for one editing session.
type Resume struct {
	SchemaVersion  int             `json:"schemaVersion,omitempty"`
	Template       Template        `json:"template"`
	AccentColor    AccentColor     `json:"accentColor"`
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
	Languages      []Language      `json:"languages"`
	Awards         []Award         `json:"awards"`
	ShowSections   ShowSections    `json:"showSections"`
}

// PersonalInfo is the singleton contact block. Photo holds a data URI.
type PersonalInfo struct {
	Photo    *string `json:"photo,omitempty"`
	FullName string  `json:"fullName"`
	JobTitle string  `json:"jobTitle"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Location string  `json:"location"`
	LinkedIn *string `json:"linkedin,omitempty"`
	Website  *string `json:"website,omitempty"`
}

// Experience is one position held.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Education is one degree or program.
type Education struct {
	ID          string  `json:"id"`
	Institution string  `json:"institution"`
	Degree      string  `json:"degree"`
	Field       string  `json:"field"`
	StartYear   string  `json:"startYear"`
	EndYear     string  `json:"endYear"`
	GPA         *string `json:"gpa,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Skill is a named skill with an optional level and grouping.
type Skill struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Level    *SkillLevel `json:"level,omitempty"`
	Category *string     `json:"category,omitempty"`
}

// Certification is a credential with its issuer.
type Certification struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Issuer string  `json:"issuer"`
	Date   string  `json:"date"`
	URL    *string `json:"url,omitempty"`
}

// Project is a portfolio entry. A nil Technologies means none were listed.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	URL          *string  `json:"url,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Language is a spoken language.
type Language struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Proficiency *Proficiency `json:"proficiency,omitempty"`
}

// Award is an honor or prize.
type Award struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Issuer      string  `json:"issuer"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
}

// Record is implemented by every element of a repeated collection.
type Record interface {
	RecordID() string
}

func (e Experience) RecordID() string    { return e.ID }
func (e Education) RecordID() string     { return e.ID }
func (s Skill) RecordID() string         { return s.ID }
func (c Certification) RecordID() string { return c.ID }
func (p Project) RecordID() string       { return p.ID }
func (l Language) RecordID() string      { return l.ID }
func (a Award) RecordID() string         { return a.ID }

// Str returns a pointer to s, for optional fields and patches.
func Str(s string) *string { return &s }

// Deref returns *p, or "" when p is nil.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Equal reports whether r and other hold the same content. A nil collection
// equals an empty one.
func (r Resume) Equal(other Resume) bool {
	return reflect.DeepEqual(r.Clone(), other.Clone())
}

// Clone returns a deep copy that shares no memory with r.
func (r Resume) Clone() Resume {
	out := r
	out.PersonalInfo = r.PersonalInfo.clone()
	out.Experience = append(make([]Experience, 0, len(r.Experience)), r.Experience...)
	out.Education = cloneEach(r.Education, Education.clone)
	out.Skills = cloneEach(r.Skills, Skill.clone)
	out.Certifications = cloneEach(r.Certifications, Certification.clone)
	out.Projects = cloneEach(r.Projects, Project.clone)
	out.Languages = cloneEach(r.Languages, Language.clone)
	out.Awards = cloneEach(r.Awards, Award.clone)
	return out
}

func cloneEach[T any](in []T, clone func(T) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, clone(v))
	}
	return out
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	return Str(*p)
}

func (p PersonalInfo) clone() PersonalInfo {
	p.Photo = cloneStr(p.Photo)
	p.LinkedIn = cloneStr(p.LinkedIn)
	p.Website = cloneStr(p.Website)
	return p
}

func (e Education) clone() Education {
	e.GPA = cloneStr(e.GPA)
	e.Description = cloneStr(e.Description)
	return e
}

func (s Skill) clone() Skill {
	if s.Level != nil {
		l := *s.Level
		s.Level = &l
	}
	s.Category = cloneStr(s.Category)
	return s
}

func (c Certification) clone() Certification {
	c.URL = cloneStr(c.URL)
	return c
}

func (p Project) clone() Project {
	p.URL = cloneStr(p.URL)
	if p.Technologies != nil {
		p.Technologies = append([]string(nil), p.Technologies...)
	}
	return p
}

func (l Language) clone() Language {
	if l.Proficiency != nil {
		v := *l.Proficiency
		l.Proficiency = &v
	}
	return l
}

func (a Award) clone() Award {
	a.Description = cloneStr(a.Description)
	return a
}
