package rendering

import "github.com/jonathan/resume-builder/internal/types"

// creative opens with a colored header band holding the photo, then splits
// the body into a narrow and a wide column.
type creative struct{}

// creativePercent is the bar width the creative layout draws. A skill
// without a level gets 60.
func creativePercent(s types.Skill) int {
	l, ok := level(s)
	if !ok {
		return 60
	}
	switch l {
	case types.LevelExpert:
		return 95
	case types.LevelAdvanced:
		return 80
	case types.LevelIntermediate:
		return 60
	case types.LevelBeginner:
		return 40
	}
	return 60
}

func (creative) Render(doc types.Resume) *Node {
	p := PaletteFor(doc.AccentColor)
	info := doc.PersonalInfo

	heading := func(s types.Section) *Node {
		return Text("h2", "section-title uppercase", sectionTitles[s]).Style("color", p.Accent)
	}

	all := contacts(info)
	var direct, social []contact
	for _, c := range all {
		if c.kind == "linkedin" || c.kind == "website" {
			social = append(social, c)
		} else {
			direct = append(direct, c)
		}
	}

	band := El("header", "header band",
		El("div", "band-row",
			photo(doc, "photo photo-rounded"),
			El("div", "header-text",
				Text("h1", "name", info.FullName),
				Text("p", "job-title", info.JobTitle),
				contactList(direct, "contact-list pills", ""))),
		contactList(social, "contact-list social", ""),
	).Style("background-color", p.Bright).Style("color", "#ffffff")

	summary := section(doc, types.SectionSummary, "panel",
		Text("h2", "section-title uppercase", "About Me").Style("color", p.Accent),
		Text("p", "summary", doc.Summary))
	if summary != nil {
		summary.Style("background-color", p.Tint)
	}

	skills := El("div", "skill-list")
	for _, s := range doc.Skills {
		skills.Append(El("div", "skill",
			Text("p", "skill-name", s.Name),
			skillBar(creativePercent(s), "#e5e7eb", p.Bright)))
	}

	languages := El("div", "language-list")
	for _, l := range doc.Languages {
		languages.Append(El("div", "language entry-head",
			Text("span", "language-name", l.Name),
			optText("span", "muted", proficiency(l))))
	}

	awards := El("div", "entries")
	for _, a := range doc.Awards {
		awards.Append(El("div", "entry",
			Text("p", "entry-title", a.Title),
			Text("p", "entry-meta", joinNonEmpty(" • ", a.Issuer, a.Date)),
			optText("p", "entry-body", types.Deref(a.Description))))
	}

	experience := El("div", "entries timeline")
	for _, e := range doc.Experience {
		experience.Append(El("div", "entry",
			El("div", "entry-head",
				Text("h3", "entry-title", e.Position),
				Text("span", "entry-dates", dateRange(e.StartDate, experienceEnd(e)))),
			Text("p", "entry-subtitle", joinNonEmpty(" • ", e.Company, e.Location)).Style("color", p.Accent),
			optText("p", "entry-body pre-line", e.Description),
		).Style("border-color", p.Soft))
	}

	education := El("div", "entries")
	for _, e := range doc.Education {
		education.Append(El("div", "entry",
			El("div", "entry-head",
				Text("h3", "entry-title", joinNonEmpty(" in ", e.Degree, e.Field)),
				Text("span", "entry-dates", dateRange(e.StartYear, e.EndYear))),
			Text("p", "entry-subtitle", e.Institution),
			gpa(e),
			optText("p", "entry-body", types.Deref(e.Description))))
	}

	projects := El("div", "grid-2")
	for _, pr := range doc.Projects {
		projects.Append(El("div", "card",
			Text("h3", "entry-title", pr.Name),
			optText("p", "entry-body", pr.Description),
			technologies(pr, "")).Style("background-color", p.Tint))
	}

	certifications := El("div", "grid-2")
	for _, c := range doc.Certifications {
		certifications.Append(El("div", "card",
			Text("p", "entry-title", c.Name),
			Text("p", "entry-meta", joinNonEmpty(" • ", c.Issuer, c.Date))).Style("background-color", p.Tint))
	}

	left := El("div", "column narrow",
		section(doc, types.SectionSkills, "", heading(types.SectionSkills), skills),
		section(doc, types.SectionLanguages, "", heading(types.SectionLanguages), languages),
		section(doc, types.SectionAwards, "", heading(types.SectionAwards), awards))
	right := El("div", "column wide",
		section(doc, types.SectionExperience, "", heading(types.SectionExperience), experience),
		section(doc, types.SectionEducation, "", heading(types.SectionEducation), education),
		section(doc, types.SectionProjects, "", heading(types.SectionProjects), projects),
		section(doc, types.SectionCertifications, "", heading(types.SectionCertifications), certifications))

	return El("div", "resume template-creative layout-columns",
		band,
		El("div", "body", summary, El("div", "columns", left, right)))
}
