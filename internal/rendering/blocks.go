package rendering

import (
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Section titles shared by the templates.
var sectionTitles = map[types.Section]string{
	types.SectionSummary:        "Professional Summary",
	types.SectionExperience:     "Experience",
	types.SectionEducation:      "Education",
	types.SectionSkills:         "Skills",
	types.SectionCertifications: "Certifications",
	types.SectionProjects:       "Projects",
	types.SectionLanguages:      "Languages",
	types.SectionAwards:         "Awards",
}

// section wraps a visible section's heading and body, or returns nil when
// the section is hidden or empty.
func section(doc types.Resume, s types.Section, class string, heading, body *Node) *Node {
	if !Visible(doc, s) {
		return nil
	}
	return El("section", strings.TrimSpace("section "+class), heading, body).Set("data-section", string(s))
}

// photo returns the portrait, or nil when it should not be shown.
func photo(doc types.Resume, class string) *Node {
	if !Visible(doc, types.SectionPhoto) {
		return nil
	}
	img := El("img", class).
		Set("src", types.Deref(doc.PersonalInfo.Photo)).
		Set("alt", doc.PersonalInfo.FullName)
	return El("div", "photo-frame", img).Set("data-section", string(types.SectionPhoto))
}

type contact struct {
	kind  string
	value string
}

func contacts(info types.PersonalInfo) []contact {
	all := []contact{
		{"email", info.Email},
		{"phone", info.Phone},
		{"location", info.Location},
		{"linkedin", types.Deref(info.LinkedIn)},
		{"website", types.Deref(info.Website)},
	}
	out := all[:0]
	for _, c := range all {
		if c.value != "" {
			out = append(out, c)
		}
	}
	return out
}

// contactList lists the non-empty contact fields. When sep is not empty it
// is placed between items.
func contactList(items []contact, class, sep string) *Node {
	if len(items) == 0 {
		return nil
	}
	list := El("div", class)
	for i, c := range items {
		if sep != "" && i > 0 {
			list.Append(Text("span", "separator", sep))
		}
		list.Append(Text("span", "contact contact-"+c.kind, c.value).Set("data-contact", c.kind))
	}
	return list
}

func dateRange(start, end string) string {
	switch {
	case start == "":
		return end
	case end == "":
		return start
	}
	return start + " - " + end
}

func experienceEnd(e types.Experience) string {
	if e.Current {
		return "Present"
	}
	return e.EndDate
}

// optText returns a text node, or nil for empty text.
func optText(tag, class, text string) *Node {
	if text == "" {
		return nil
	}
	return Text(tag, class, text)
}

// skillBar draws a level as a filled bar of the given width percent.
func skillBar(percent int, track, fill string) *Node {
	bar := El("div", "bar-fill").Style("width", strconv.Itoa(percent)+"%").Style("background-color", fill)
	return El("div", "bar", bar).Style("background-color", track).Set("data-percent", strconv.Itoa(percent))
}

func technologies(p types.Project, prefix string) *Node {
	if len(p.Technologies) == 0 {
		return nil
	}
	return Text("p", "technologies", prefix+strings.Join(p.Technologies, ", "))
}

func proficiency(l types.Language) string {
	if l.Proficiency == nil {
		return ""
	}
	return string(*l.Proficiency)
}

func level(s types.Skill) (types.SkillLevel, bool) {
	if s.Level == nil {
		return "", false
	}
	return *s.Level, true
}
