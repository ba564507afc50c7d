package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// field is one editable attribute of a record, exposed as a --flag.
type field struct {
	name    string
	usage   string
	boolean bool
}

// values holds the flags that were set on the command line.
type values map[string]string

func (v values) str(name string) *string {
	if s, ok := v[name]; ok {
		return &s
	}
	return nil
}

func (v values) boolean(name string) (*bool, error) {
	s, ok := v[name]
	if !ok {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, s, err)
	}
	return &b, nil
}

// list splits a comma-separated flag. An empty flag yields an empty,
// non-nil list.
func (v values) list(name string) []string {
	s, ok := v[name]
	if !ok {
		return nil
	}
	items := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// updateResult is the outcome of an update: the form check of the record as
// it would be after the patch, and whether the patch was applied.
type updateResult struct {
	form    schemas.FormResult
	applied bool
}

// collection binds one repeatable section to the store.
type collection struct {
	name   string
	fields []field
	add    func(st *store.Store) string
	remove func(st *store.Store, id string)
	move   func(st *store.Store, id string, delta int)
	list   func(doc types.Resume) (ids, labels []string)
	update func(st *store.Store, id string, v values, strict bool) (updateResult, error)
	check  func(doc types.Resume) map[string]string
}

// recordOps describes one record type for the generic helpers below.
type recordOps[T types.Record, P any] struct {
	name    string
	records func(types.Resume) []T
	label   func(T) string
	build   func(values) (P, error)
	apply   func(P, T) T
	form    func(T) any
	commit  func(*store.Store, string, P) error
}

func (o recordOps[T, P]) listFn(doc types.Resume) (ids, labels []string) {
	for _, r := range o.records(doc) {
		ids = append(ids, r.RecordID())
		labels = append(labels, o.label(r))
	}
	return ids, labels
}

// checkFn runs the form rules over every record, keying problems as
// collection[id].field.
func (o recordOps[T, P]) checkFn(doc types.Resume) map[string]string {
	problems := make(map[string]string)
	for _, r := range o.records(doc) {
		for f, msg := range schemas.ValidateStrict(o.form(r)).FieldErrors {
			problems[fmt.Sprintf("%s[%s].%s", o.name, r.RecordID(), f)] = msg
		}
	}
	return problems
}

func (o recordOps[T, P]) updateFn(st *store.Store, id string, v values, strict bool) (updateResult, error) {
	patch, err := o.build(v)
	if err != nil {
		return updateResult{}, err
	}

	var current *T
	for _, r := range o.records(st.Snapshot()) {
		if r.RecordID() == id {
			current = &r
			break
		}
	}
	if current == nil {
		return updateResult{}, fmt.Errorf("no %s entry with id %q", o.name, id)
	}

	result := updateResult{form: schemas.ValidateStrict(o.form(o.apply(patch, *current)))}
	if strict && !result.form.Valid {
		return result, nil
	}
	if err := o.commit(st, id, patch); err != nil {
		return result, err
	}
	result.applied = true
	return result, nil
}

func noErr[P any](fn func(*store.Store, string, P)) func(*store.Store, string, P) error {
	return func(st *store.Store, id string, p P) error {
		fn(st, id, p)
		return nil
	}
}

func joinLabel(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " · ")
}

var experienceOps = recordOps[types.Experience, types.ExperiencePatch]{
	name:    "experience",
	records: func(d types.Resume) []types.Experience { return d.Experience },
	label:   func(e types.Experience) string { return joinLabel(e.Position, e.Company) },
	build: func(v values) (types.ExperiencePatch, error) {
		current, err := v.boolean("current")
		if err != nil {
			return types.ExperiencePatch{}, err
		}
		return types.ExperiencePatch{
			Company:     v.str("company"),
			Position:    v.str("position"),
			StartDate:   v.str("start-date"),
			EndDate:     v.str("end-date"),
			Current:     current,
			Location:    v.str("location"),
			Description: v.str("description"),
		}, nil
	},
	apply:  types.ExperiencePatch.Apply,
	form:   func(e types.Experience) any { return schemas.ExperienceFormFrom(e) },
	commit: noErr((*store.Store).UpdateExperience),
}

var educationOps = recordOps[types.Education, types.EducationPatch]{
	name:    "education",
	records: func(d types.Resume) []types.Education { return d.Education },
	label:   func(e types.Education) string { return joinLabel(e.Degree, e.Institution) },
	build: func(v values) (types.EducationPatch, error) {
		return types.EducationPatch{
			Institution: v.str("institution"),
			Degree:      v.str("degree"),
			Field:       v.str("field"),
			StartYear:   v.str("start-year"),
			EndYear:     v.str("end-year"),
			GPA:         v.str("gpa"),
			Description: v.str("description"),
		}, nil
	},
	apply:  types.EducationPatch.Apply,
	form:   func(e types.Education) any { return schemas.EducationFormFrom(e) },
	commit: noErr((*store.Store).UpdateEducation),
}

var skillOps = recordOps[types.Skill, types.SkillPatch]{
	name:    "skills",
	records: func(d types.Resume) []types.Skill { return d.Skills },
	label: func(s types.Skill) string {
		if s.Level == nil {
			return s.Name
		}
		return joinLabel(s.Name, string(*s.Level))
	},
	build: func(v values) (types.SkillPatch, error) {
		patch := types.SkillPatch{Name: v.str("name"), Category: v.str("category")}
		if s := v.str("level"); s != nil {
			level, err := types.ParseSkillLevel(*s)
			if err != nil {
				return patch, err
			}
			patch.Level = &level
		}
		return patch, nil
	},
	apply:  types.SkillPatch.Apply,
	form:   func(s types.Skill) any { return schemas.SkillFormFrom(s) },
	commit: (*store.Store).UpdateSkill,
}

var certificationOps = recordOps[types.Certification, types.CertificationPatch]{
	name:    "certifications",
	records: func(d types.Resume) []types.Certification { return d.Certifications },
	label:   func(c types.Certification) string { return joinLabel(c.Name, c.Issuer) },
	build: func(v values) (types.CertificationPatch, error) {
		return types.CertificationPatch{
			Name:   v.str("name"),
			Issuer: v.str("issuer"),
			Date:   v.str("date"),
			URL:    v.str("url"),
		}, nil
	},
	apply:  types.CertificationPatch.Apply,
	form:   func(c types.Certification) any { return schemas.CertificationFormFrom(c) },
	commit: noErr((*store.Store).UpdateCertification),
}

var projectOps = recordOps[types.Project, types.ProjectPatch]{
	name:    "projects",
	records: func(d types.Resume) []types.Project { return d.Projects },
	label:   func(p types.Project) string { return p.Name },
	build: func(v values) (types.ProjectPatch, error) {
		return types.ProjectPatch{
			Name:         v.str("name"),
			Description:  v.str("description"),
			URL:          v.str("url"),
			Technologies: v.list("technologies"),
		}, nil
	},
	apply:  types.ProjectPatch.Apply,
	form:   func(p types.Project) any { return schemas.ProjectFormFrom(p) },
	commit: noErr((*store.Store).UpdateProject),
}

var languageOps = recordOps[types.Language, types.LanguagePatch]{
	name:    "languages",
	records: func(d types.Resume) []types.Language { return d.Languages },
	label: func(l types.Language) string {
		if l.Proficiency == nil {
			return l.Name
		}
		return joinLabel(l.Name, string(*l.Proficiency))
	},
	build: func(v values) (types.LanguagePatch, error) {
		patch := types.LanguagePatch{Name: v.str("name")}
		if s := v.str("proficiency"); s != nil {
			p, err := types.ParseProficiency(*s)
			if err != nil {
				return patch, err
			}
			patch.Proficiency = &p
		}
		return patch, nil
	},
	apply:  types.LanguagePatch.Apply,
	form:   func(l types.Language) any { return schemas.LanguageFormFrom(l) },
	commit: (*store.Store).UpdateLanguage,
}

var awardOps = recordOps[types.Award, types.AwardPatch]{
	name:    "awards",
	records: func(d types.Resume) []types.Award { return d.Awards },
	label:   func(a types.Award) string { return joinLabel(a.Title, a.Issuer) },
	build: func(v values) (types.AwardPatch, error) {
		return types.AwardPatch{
			Title:       v.str("title"),
			Issuer:      v.str("issuer"),
			Date:        v.str("date"),
			Description: v.str("description"),
		}, nil
	},
	apply:  types.AwardPatch.Apply,
	form:   func(a types.Award) any { return schemas.AwardFormFrom(a) },
	commit: noErr((*store.Store).UpdateAward),
}

var collections = map[string]collection{
	"experience": {
		name: "experience",
		fields: []field{
			{name: "company", usage: "Company name"},
			{name: "position", usage: "Job title held"},
			{name: "start-date", usage: "Start date, e.g. 2020-01"},
			{name: "end-date", usage: "End date, e.g. 2023-06"},
			{name: "current", usage: "Still working here", boolean: true},
			{name: "location", usage: "Location"},
			{name: "description", usage: "What you did"},
		},
		add:    (*store.Store).AddExperience,
		remove: (*store.Store).RemoveExperience,
		move:   (*store.Store).MoveExperience,
		list:   experienceOps.listFn,
		update: experienceOps.updateFn,
		check:  experienceOps.checkFn,
	},
	"education": {
		name: "education",
		fields: []field{
			{name: "institution", usage: "School or university"},
			{name: "degree", usage: "Degree"},
			{name: "field", usage: "Field of study"},
			{name: "start-year", usage: "Start year"},
			{name: "end-year", usage: "End year"},
			{name: "gpa", usage: "GPA"},
			{name: "description", usage: "Details"},
		},
		add:    (*store.Store).AddEducation,
		remove: (*store.Store).RemoveEducation,
		move:   (*store.Store).MoveEducation,
		list:   educationOps.listFn,
		update: educationOps.updateFn,
		check:  educationOps.checkFn,
	},
	"skills": {
		name: "skills",
		fields: []field{
			{name: "name", usage: "Skill name"},
			{name: "level", usage: "beginner, intermediate, advanced or expert"},
			{name: "category", usage: "Category, e.g. Languages"},
		},
		add:    (*store.Store).AddSkill,
		remove: (*store.Store).RemoveSkill,
		move:   (*store.Store).MoveSkill,
		list:   skillOps.listFn,
		update: skillOps.updateFn,
		check:  skillOps.checkFn,
	},
	"certifications": {
		name: "certifications",
		fields: []field{
			{name: "name", usage: "Certification name"},
			{name: "issuer", usage: "Issuing organization"},
			{name: "date", usage: "Date obtained"},
			{name: "url", usage: "Credential URL"},
		},
		add:    (*store.Store).AddCertification,
		remove: (*store.Store).RemoveCertification,
		move:   (*store.Store).MoveCertification,
		list:   certificationOps.listFn,
		update: certificationOps.updateFn,
		check:  certificationOps.checkFn,
	},
	"projects": {
		name: "projects",
		fields: []field{
			{name: "name", usage: "Project name"},
			{name: "description", usage: "What it does"},
			{name: "url", usage: "Project URL"},
			{name: "technologies", usage: "Comma-separated list; empty clears it"},
		},
		add:    (*store.Store).AddProject,
		remove: (*store.Store).RemoveProject,
		move:   (*store.Store).MoveProject,
		list:   projectOps.listFn,
		update: projectOps.updateFn,
		check:  projectOps.checkFn,
	},
	"languages": {
		name: "languages",
		fields: []field{
			{name: "name", usage: "Language"},
			{name: "proficiency", usage: "basic, conversational, fluent or native"},
		},
		add:    (*store.Store).AddLanguage,
		remove: (*store.Store).RemoveLanguage,
		move:   (*store.Store).MoveLanguage,
		list:   languageOps.listFn,
		update: languageOps.updateFn,
		check:  languageOps.checkFn,
	},
	"awards": {
		name: "awards",
		fields: []field{
			{name: "title", usage: "Award title"},
			{name: "issuer", usage: "Awarded by"},
			{name: "date", usage: "Date received"},
			{name: "description", usage: "Details"},
		},
		add:    (*store.Store).AddAward,
		remove: (*store.Store).RemoveAward,
		move:   (*store.Store).MoveAward,
		list:   awardOps.listFn,
		update: awardOps.updateFn,
		check:  awardOps.checkFn,
	},
}

// collectionNames lists the collections in display order.
func collectionNames() []string {
	names := make([]string, 0, len(collections))
	for name := range collections {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return sectionRank(names[i]) < sectionRank(names[j]) })
	return names
}

func sectionRank(name string) int {
	for i, s := range types.Sections() {
		if string(s) == name {
			return i
		}
	}
	return len(types.Sections())
}

func lookupCollection(name string) (collection, error) {
	c, ok := collections[name]
	if !ok {
		return collection{}, fmt.Errorf("unknown collection %q (want one of %s)", name, strings.Join(collectionNames(), ", "))
	}
	return c, nil
}
