//nolint:revive // types is a standard Go package name pattern
package types

// Patches carry partial updates. A nil field leaves the target unchanged.

// PersonalInfoPatch updates the contact block. Setting Photo to "" removes
// the photo.
type PersonalInfoPatch struct {
	Photo    *string
	FullName *string
	JobTitle *string
	Email    *string
	Phone    *string
	Location *string
	LinkedIn *string
	Website  *string
}

// Apply returns p merged over info.
func (p PersonalInfoPatch) Apply(info PersonalInfo) PersonalInfo {
	if p.Photo != nil {
		if *p.Photo == "" {
			info.Photo = nil
		} else {
			info.Photo = Str(*p.Photo)
		}
	}
	setStr(&info.FullName, p.FullName)
	setStr(&info.JobTitle, p.JobTitle)
	setStr(&info.Email, p.Email)
	setStr(&info.Phone, p.Phone)
	setStr(&info.Location, p.Location)
	setOpt(&info.LinkedIn, p.LinkedIn)
	setOpt(&info.Website, p.Website)
	return info
}

// ExperiencePatch updates an Experience.
type ExperiencePatch struct {
	Company     *string
	Position    *string
	StartDate   *string
	EndDate     *string
	Current     *bool
	Location    *string
	Description *string
}

// Apply returns p merged over e. The id is never changed.
func (p ExperiencePatch) Apply(e Experience) Experience {
	setStr(&e.Company, p.Company)
	setStr(&e.Position, p.Position)
	setStr(&e.StartDate, p.StartDate)
	setStr(&e.EndDate, p.EndDate)
	if p.Current != nil {
		e.Current = *p.Current
	}
	setStr(&e.Location, p.Location)
	setStr(&e.Description, p.Description)
	return e
}

// EducationPatch updates an Education.
type EducationPatch struct {
	Institution *string
	Degree      *string
	Field       *string
	StartYear   *string
	EndYear     *string
	GPA         *string
	Description *string
}

// Apply returns p merged over e.
func (p EducationPatch) Apply(e Education) Education {
	setStr(&e.Institution, p.Institution)
	setStr(&e.Degree, p.Degree)
	setStr(&e.Field, p.Field)
	setStr(&e.StartYear, p.StartYear)
	setStr(&e.EndYear, p.EndYear)
	setOpt(&e.GPA, p.GPA)
	setOpt(&e.Description, p.Description)
	return e
}

// SkillPatch updates a Skill.
type SkillPatch struct {
	Name     *string
	Level    *SkillLevel
	Category *string
}

// Validate rejects a level outside the enumeration.
func (p SkillPatch) Validate() error {
	if p.Level != nil && !p.Level.Valid() {
		return &EnumError{Kind: "skill level", Value: string(*p.Level)}
	}
	return nil
}

// Apply returns p merged over s. Callers validate first.
func (p SkillPatch) Apply(s Skill) Skill {
	setStr(&s.Name, p.Name)
	if p.Level != nil {
		l := *p.Level
		s.Level = &l
	}
	setOpt(&s.Category, p.Category)
	return s
}

// CertificationPatch updates a Certification.
type CertificationPatch struct {
	Name   *string
	Issuer *string
	Date   *string
	URL    *string
}

// Apply returns p merged over c.
func (p CertificationPatch) Apply(c Certification) Certification {
	setStr(&c.Name, p.Name)
	setStr(&c.Issuer, p.Issuer)
	setStr(&c.Date, p.Date)
	setOpt(&c.URL, p.URL)
	return c
}

// ProjectPatch updates a Project. A non-nil Technologies replaces the list;
// an empty one clears it.
type ProjectPatch struct {
	Name         *string
	Description  *string
	URL          *string
	Technologies []string
}

// Apply returns p merged over pr.
func (p ProjectPatch) Apply(pr Project) Project {
	setStr(&pr.Name, p.Name)
	setStr(&pr.Description, p.Description)
	setOpt(&pr.URL, p.URL)
	if p.Technologies != nil {
		if len(p.Technologies) == 0 {
			pr.Technologies = nil
		} else {
			pr.Technologies = append([]string(nil), p.Technologies...)
		}
	}
	return pr
}

// LanguagePatch updates a Language.
type LanguagePatch struct {
	Name        *string
	Proficiency *Proficiency
}

// Validate rejects a proficiency outside the enumeration.
func (p LanguagePatch) Validate() error {
	if p.Proficiency != nil && !p.Proficiency.Valid() {
		return &EnumError{Kind: "proficiency", Value: string(*p.Proficiency)}
	}
	return nil
}

// Apply returns p merged over l. Callers validate first.
func (p LanguagePatch) Apply(l Language) Language {
	setStr(&l.Name, p.Name)
	if p.Proficiency != nil {
		v := *p.Proficiency
		l.Proficiency = &v
	}
	return l
}

// AwardPatch updates an Award.
type AwardPatch struct {
	Title       *string
	Issuer      *string
	Date        *string
	Description *string
}

// Apply returns p merged over a.
func (p AwardPatch) Apply(a Award) Award {
	setStr(&a.Title, p.Title)
	setStr(&a.Issuer, p.Issuer)
	setStr(&a.Date, p.Date)
	setOpt(&a.Description, p.Description)
	return a
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setOpt(dst **string, v *string) {
	if v != nil {
		*dst = Str(*v)
	}
}
