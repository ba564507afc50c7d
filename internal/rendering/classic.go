package rendering

import "github.com/jonathan/resume-builder/internal/types"

// classic is a single column under a ruled header with the photo beside
// the name.
type classic struct{}

func (classic) Render(doc types.Resume) *Node {
	p := PaletteFor(doc.AccentColor)
	info := doc.PersonalInfo

	heading := func(s types.Section) *Node {
		return Text("h2", "section-title uppercase", sectionTitles[s]).Style("border-color", p.Deep)
	}

	experience := El("div", "entries")
	for _, e := range doc.Experience {
		company := e.Company
		if e.Location != "" {
			company += " - " + e.Location
		}
		experience.Append(El("div", "entry",
			El("div", "entry-head",
				El("div", "",
					Text("h3", "entry-title", e.Position),
					Text("p", "entry-subtitle", company)),
				Text("div", "entry-dates", dateRange(e.StartDate, experienceEnd(e)))),
			optText("p", "entry-body pre-line", e.Description),
		))
	}

	education := El("div", "entries")
	for _, e := range doc.Education {
		title := e.Degree
		if e.Field != "" {
			title += " in " + e.Field
		}
		education.Append(El("div", "entry entry-head",
			El("div", "",
				Text("p", "entry-title", title),
				Text("p", "entry-subtitle", e.Institution),
				gpa(e),
				optText("p", "entry-body", types.Deref(e.Description))),
			Text("div", "entry-dates", dateRange(e.StartYear, e.EndYear))))
	}

	skills := El("div", "chips")
	for _, s := range doc.Skills {
		chip := El("span", "chip", Text("span", "skill-name", s.Name))
		if l, ok := level(s); ok {
			chip.Append(Text("span", "muted", "("+string(l)+")"))
		}
		skills.Append(chip)
	}

	certifications := El("div", "entries")
	for _, c := range doc.Certifications {
		certifications.Append(El("div", "entry entry-head",
			El("div", "",
				Text("p", "entry-title", c.Name),
				Text("p", "entry-meta", c.Issuer)),
			Text("div", "entry-dates", c.Date)))
	}

	projects := El("div", "entries")
	for _, pr := range doc.Projects {
		projects.Append(El("div", "entry",
			Text("p", "entry-title", pr.Name),
			optText("p", "entry-body", pr.Description),
			technologies(pr, "Technologies: ")))
	}

	languages := El("div", "inline-list")
	for _, l := range doc.Languages {
		item := El("span", "language", Text("span", "language-name", l.Name))
		if prof := proficiency(l); prof != "" {
			item.Append(Text("span", "muted", "- "+prof))
		}
		languages.Append(item)
	}

	awards := El("div", "entries")
	for _, a := range doc.Awards {
		awards.Append(El("div", "entry entry-head",
			El("div", "",
				Text("p", "entry-title", a.Title),
				optText("p", "entry-meta", types.Deref(a.Description))),
			El("div", "entry-dates",
				Text("p", "", a.Issuer),
				Text("p", "", a.Date))))
	}

	header := El("header", "header header-ruled",
		photo(doc, "photo photo-square"),
		El("div", "header-text",
			Text("h1", "name", info.FullName),
			Text("p", "job-title", info.JobTitle).Style("color", p.Deep),
			contactList(contacts(info), "contact-list inline", "")))

	return El("div", "resume template-classic layout-single",
		header,
		section(doc, types.SectionSummary, "", heading(types.SectionSummary), Text("p", "summary", doc.Summary)),
		section(doc, types.SectionExperience, "", heading(types.SectionExperience), experience),
		section(doc, types.SectionEducation, "", heading(types.SectionEducation), education),
		section(doc, types.SectionSkills, "", heading(types.SectionSkills), skills),
		section(doc, types.SectionCertifications, "", heading(types.SectionCertifications), certifications),
		section(doc, types.SectionProjects, "", heading(types.SectionProjects), projects),
		section(doc, types.SectionLanguages, "", heading(types.SectionLanguages), languages),
		section(doc, types.SectionAwards, "", heading(types.SectionAwards), awards),
	)
}
