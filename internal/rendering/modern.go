package rendering

import "github.com/jonathan/resume-builder/internal/types"

// modern puts photo, contact, skills and languages in a colored sidebar and
// everything else in the main column.
type modern struct{}

func (modern) Render(doc types.Resume) *Node {
	p := PaletteFor(doc.AccentColor)
	info := doc.PersonalInfo

	heading := func(s types.Section) *Node {
		return Text("h2", "section-title", sectionTitles[s]).Style("border-color", p.Accent)
	}
	sideHeading := func(s types.Section) *Node {
		return Text("h3", "sidebar-title", sectionTitles[s])
	}

	skills := El("div", "skill-list")
	for _, s := range doc.Skills {
		item := El("div", "skill", Text("p", "skill-name", s.Name))
		if l, ok := level(s); ok {
			item.Append(skillBar(l.Percent(), "rgba(255,255,255,0.2)", "#ffffff"))
		}
		skills.Append(item)
	}

	languages := El("div", "language-list")
	for _, l := range doc.Languages {
		item := El("div", "language", Text("span", "language-name", l.Name))
		if prof := proficiency(l); prof != "" {
			item.Append(Text("span", "muted", "("+prof+")"))
		}
		languages.Append(item)
	}

	sidebar := El("aside", "sidebar",
		photo(doc, "photo photo-round"),
		contactList(contacts(info), "contact-list stacked", ""),
		section(doc, types.SectionSkills, "", sideHeading(types.SectionSkills), skills),
		section(doc, types.SectionLanguages, "", sideHeading(types.SectionLanguages), languages),
	).Style("background-color", p.Accent).Style("color", "#ffffff")

	experience := El("div", "entries")
	for _, e := range doc.Experience {
		experience.Append(El("div", "entry",
			El("div", "entry-head",
				El("div", "",
					Text("h3", "entry-title", e.Position),
					Text("p", "entry-subtitle", e.Company).Style("color", p.Accent)),
				El("div", "entry-dates",
					Text("p", "", e.StartDate),
					Text("p", "", experienceEnd(e)))),
			optText("p", "entry-meta", e.Location),
			optText("p", "entry-body pre-line", e.Description),
		))
	}

	education := El("div", "entries")
	for _, e := range doc.Education {
		education.Append(El("div", "entry",
			El("div", "entry-head",
				El("div", "",
					Text("h3", "entry-title", e.Degree),
					optText("p", "", e.Field),
					Text("p", "entry-subtitle", e.Institution).Style("color", p.Accent)),
				El("div", "entry-dates",
					Text("p", "", e.StartYear),
					Text("p", "", e.EndYear))),
			gpa(e),
			optText("p", "entry-body", types.Deref(e.Description)),
		))
	}

	certifications := El("div", "entries")
	for _, c := range doc.Certifications {
		certifications.Append(El("div", "entry",
			Text("p", "entry-title", c.Name),
			Text("p", "entry-meta", c.Issuer+" - "+c.Date)))
	}

	projects := El("div", "entries")
	for _, pr := range doc.Projects {
		projects.Append(El("div", "entry",
			Text("h3", "entry-title", pr.Name),
			optText("p", "entry-body", pr.Description),
			technologies(pr, "")))
	}

	awards := El("div", "entries")
	for _, a := range doc.Awards {
		awards.Append(El("div", "entry",
			Text("p", "entry-title", a.Title),
			Text("p", "entry-meta", a.Issuer+" - "+a.Date),
			optText("p", "entry-body", types.Deref(a.Description))))
	}

	main := El("main", "content",
		El("header", "header",
			Text("h1", "name", info.FullName),
			Text("p", "job-title", info.JobTitle).Style("color", p.Accent)),
		section(doc, types.SectionSummary, "", heading(types.SectionSummary), Text("p", "summary", doc.Summary)),
		section(doc, types.SectionExperience, "", heading(types.SectionExperience), experience),
		section(doc, types.SectionEducation, "", heading(types.SectionEducation), education),
		section(doc, types.SectionCertifications, "", heading(types.SectionCertifications), certifications),
		section(doc, types.SectionProjects, "", heading(types.SectionProjects), projects),
		section(doc, types.SectionAwards, "", heading(types.SectionAwards), awards),
	)

	return El("div", "resume template-modern layout-sidebar", sidebar, main)
}

func gpa(e types.Education) *Node {
	if v := types.Deref(e.GPA); v != "" {
		return Text("p", "entry-meta", "GPA: "+v)
	}
	return nil
}
