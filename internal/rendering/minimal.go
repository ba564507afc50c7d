package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// minimal is a centered, compact single column. It never shows the photo
// and the summary has no heading.
type minimal struct{}

func (minimal) Render(doc types.Resume) *Node {
	p := PaletteFor(doc.AccentColor)
	info := doc.PersonalInfo

	heading := func(s types.Section) *Node {
		return Text("h2", "section-title centered uppercase spaced", sectionTitles[s]).Style("color", p.Accent)
	}

	experience := El("div", "entries")
	for _, e := range doc.Experience {
		company := e.Company
		if e.Location != "" {
			company += " • " + e.Location
		}
		experience.Append(El("div", "entry",
			El("div", "entry-head",
				Text("h3", "entry-title", e.Position),
				Text("span", "entry-dates", dateRange(e.StartDate, experienceEnd(e)))),
			Text("p", "entry-subtitle", company),
			optText("p", "entry-body pre-line", e.Description)))
	}

	education := El("div", "entries")
	for _, e := range doc.Education {
		education.Append(El("div", "entry",
			El("div", "entry-head",
				Text("h3", "entry-title", e.Degree),
				Text("span", "entry-dates", dateRange(e.StartYear, e.EndYear))),
			Text("p", "entry-subtitle", joinNonEmpty(" • ", e.Field, e.Institution)),
			gpa(e),
			optText("p", "entry-body", types.Deref(e.Description))))
	}

	names := make([]string, 0, len(doc.Skills))
	for _, s := range doc.Skills {
		names = append(names, s.Name)
	}
	skills := Text("p", "centered", strings.Join(names, " • "))

	certifications := El("div", "entries")
	for _, c := range doc.Certifications {
		certifications.Append(El("div", "entry entry-head",
			Text("span", "entry-title", c.Name),
			Text("span", "entry-dates", joinNonEmpty(", ", c.Issuer, c.Date))))
	}

	projects := El("div", "entries")
	for _, pr := range doc.Projects {
		projects.Append(El("div", "entry",
			Text("h3", "entry-title", pr.Name),
			optText("p", "entry-body", pr.Description),
			technologies(pr, "")))
	}

	langs := make([]string, 0, len(doc.Languages))
	for _, l := range doc.Languages {
		if prof := proficiency(l); prof != "" {
			langs = append(langs, l.Name+" ("+prof+")")
		} else {
			langs = append(langs, l.Name)
		}
	}
	languages := Text("p", "centered", strings.Join(langs, " • "))

	awards := El("div", "entries")
	for _, a := range doc.Awards {
		awards.Append(El("div", "entry",
			El("div", "entry-head",
				Text("span", "entry-title", a.Title),
				Text("span", "entry-dates", joinNonEmpty(", ", a.Issuer, a.Date))),
			optText("p", "entry-body", types.Deref(a.Description))))
	}

	header := El("header", "header centered",
		Text("h1", "name light", info.FullName),
		Text("p", "job-title light", info.JobTitle).Style("color", p.Accent),
		contactList(contacts(info), "contact-list inline centered", "|"))

	return El("div", "resume template-minimal layout-single",
		header,
		section(doc, types.SectionSummary, "", nil, Text("p", "summary centered", doc.Summary)),
		section(doc, types.SectionExperience, "", heading(types.SectionExperience), experience),
		section(doc, types.SectionEducation, "", heading(types.SectionEducation), education),
		section(doc, types.SectionSkills, "", heading(types.SectionSkills), skills),
		section(doc, types.SectionCertifications, "", heading(types.SectionCertifications), certifications),
		section(doc, types.SectionProjects, "", heading(types.SectionProjects), projects),
		section(doc, types.SectionLanguages, "", heading(types.SectionLanguages), languages),
		section(doc, types.SectionAwards, "", heading(types.SectionAwards), awards),
	)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
