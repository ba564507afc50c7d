package rendering

import (
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func levelPtr(l types.SkillLevel) *types.SkillLevel  { return &l }
func profPtr(p types.Proficiency) *types.Proficiency { return &p }

// fullResume has content in every section.
func fullResume() types.Resume {
	doc := types.EmptyResume()
	doc.PersonalInfo = types.PersonalInfo{
		Photo:    types.Str("data:image/png;base64,iVBORw0KGgo="),
		FullName: "Ada Lovelace",
		JobTitle: "Analyst",
		Email:    "ada@example.com",
		Phone:    "+44 20 0000 0000",
		Location: "London",
		LinkedIn: types.Str("linkedin.com/in/ada"),
		Website:  types.Str(""),
	}
	doc.Summary = "Writes programs for engines that do not exist yet."
	doc.Experience = []types.Experience{{
		ID: "e1", Company: "Analytical Engine Co", Position: "Programmer",
		StartDate: "1842", Current: true, Location: "London", Description: "Note G\nBernoulli numbers",
	}}
	doc.Education = []types.Education{{
		ID: "ed1", Institution: "Home", Degree: "Private tuition", Field: "Mathematics",
		StartYear: "1828", EndYear: "1835", GPA: types.Str("4.0"), Description: types.Str(""),
	}}
	doc.Skills = []types.Skill{
		{ID: "s1", Name: "Mathematics", Level: levelPtr(types.LevelExpert)},
		{ID: "s2", Name: "Translation", Level: levelPtr(types.LevelAdvanced)},
		{ID: "s3", Name: "Poetry"},
	}
	doc.Certifications = []types.Certification{{ID: "c1", Name: "Fellow", Issuer: "Society", Date: "1840"}}
	doc.Projects = []types.Project{{ID: "p1", Name: "Notes", Description: "Sketch of the engine", Technologies: []string{"Punch cards", "Brass"}}}
	doc.Languages = []types.Language{{ID: "l1", Name: "French", Proficiency: profPtr(types.ProficiencyFluent)}}
	doc.Awards = []types.Award{{ID: "a1", Title: "Recognition", Issuer: "Posterity", Date: "1953"}}
	return doc
}

// withSections returns a ShowSections with the flags selected by mask, in
// types.Sections() order.
func withSections(mask int) types.ShowSections {
	var v types.ShowSections
	for i, s := range types.Sections() {
		if mask&(1<<i) != 0 {
			v, _ = v.Toggled(s)
		}
	}
	return v
}

func TestFor(t *testing.T) {
	for _, tmpl := range types.Templates() {
		r, err := For(tmpl)
		require.NoError(t, err, tmpl)
		assert.NotNil(t, r)
	}

	_, err := For(types.Template("fancy"))
	require.Error(t, err)
	var te *TemplateError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, types.Template("fancy"), te.Template)
	assert.Contains(t, err.Error(), "template error")
}

func TestRenderers_EverySectionCombination(t *testing.T) {
	sections := types.Sections()
	for _, tmpl := range types.Templates() {
		t.Run(string(tmpl), func(t *testing.T) {
			r, err := For(tmpl)
			require.NoError(t, err)

			for mask := 0; mask < 1<<len(sections); mask++ {
				doc := fullResume()
				doc.Template = tmpl
				doc.ShowSections = withSections(mask)
				before := doc.Clone()

				tree := r.Render(doc)
				require.NotNil(t, tree)

				var want []string
				for _, s := range sections {
					if doc.ShowSections.Shows(s) && !(tmpl == types.TemplateMinimal && s == types.SectionPhoto) {
						want = append(want, string(s))
					}
				}
				assert.ElementsMatch(t, want, tree.Sections(), "mask %09b", mask)
				assert.True(t, doc.Equal(before), "render must not modify its input")
			}
		})
	}
}

func TestRenderers_EmptyDocument(t *testing.T) {
	for _, tmpl := range types.Templates() {
		t.Run(string(tmpl), func(t *testing.T) {
			doc := types.EmptyResume()
			doc.Template = tmpl
			for _, all := range []types.ShowSections{withSections(0), withSections(1<<len(types.Sections()) - 1)} {
				doc.ShowSections = all
				tree, err := Render(doc)
				require.NoError(t, err)
				assert.Empty(t, tree.Sections(), "empty collections render no sections")
				assert.True(t, tree.HasClass("template-"+string(tmpl)))
			}
		})
	}
}

func TestRenderers_Content(t *testing.T) {
	doc := fullResume()
	doc.ShowSections = withSections(1<<len(types.Sections()) - 1)

	for _, tmpl := range types.Templates() {
		t.Run(string(tmpl), func(t *testing.T) {
			doc.Template = tmpl
			tree, err := Render(doc)
			require.NoError(t, err)
			text := tree.TextContent()

			assert.Contains(t, text, "Ada Lovelace")
			assert.Contains(t, text, "Present", "current position has no end date")
			assert.Contains(t, text, "Punch cards, Brass")
			assert.Contains(t, text, "linkedin.com/in/ada")
			assert.Contains(t, text, "GPA: 4.0")

			websites := tree.Find(func(n *Node) bool { return n.Attr("data-contact") == "website" })
			assert.Empty(t, websites, "empty optional contact is skipped")
		})
	}
}

func TestRenderers_SkillBars(t *testing.T) {
	doc := fullResume()
	doc.ShowSections.Skills = true

	bars := func(tmpl types.Template) []string {
		doc.Template = tmpl
		tree, err := Render(doc)
		require.NoError(t, err)
		var out []string
		for _, n := range tree.Find(func(n *Node) bool { return n.HasClass("bar") }) {
			out = append(out, n.Attr("data-percent"))
		}
		return out
	}

	assert.Equal(t, []string{"100", "75"}, bars(types.TemplateModern), "skills without a level get no bar")
	assert.Equal(t, []string{"95", "80", "60"}, bars(types.TemplateCreative))
	assert.Empty(t, bars(types.TemplateClassic))
}

func TestRenderers_AccentApplied(t *testing.T) {
	doc := fullResume()
	doc.AccentColor = types.AccentTeal

	for _, tmpl := range types.Templates() {
		doc.Template = tmpl
		tree, err := Render(doc)
		require.NoError(t, err)

		p := PaletteFor(types.AccentTeal)
		styled := tree.Find(func(n *Node) bool {
			s := n.Attr("style")
			return s != "" && (strings.Contains(s, p.Accent) || strings.Contains(s, p.Deep) || strings.Contains(s, p.Bright))
		})
		assert.NotEmpty(t, styled, tmpl)
	}
}

func TestPaletteFor(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range types.AccentColors() {
		p := PaletteFor(c)
		for _, hex := range []string{p.Accent, p.Deep, p.Bright, p.Soft, p.Tint} {
			assert.Regexp(t, `^#[0-9a-f]{6}$`, hex, c)
		}
		assert.False(t, seen[p.Accent], "accent %s reused", p.Accent)
		seen[p.Accent] = true
	}

	assert.Equal(t, "#2563eb", PaletteFor(types.AccentBlue).Accent)
	assert.Equal(t, "#374151", PaletteFor(types.AccentGray).Accent)
	assert.Equal(t, PaletteFor(types.AccentBlue), PaletteFor(types.AccentColor("mauve")))
}

func TestVisible(t *testing.T) {
	doc := types.EmptyResume()
	assert.False(t, Visible(doc, types.SectionPhoto), "flag on but no photo")
	assert.False(t, Visible(doc, types.SectionSummary), "flag on but no text")

	doc.Summary = "hello"
	assert.True(t, Visible(doc, types.SectionSummary))
	doc.ShowSections.Summary = false
	assert.False(t, Visible(doc, types.SectionSummary))

	assert.False(t, Visible(doc, types.Section("hobbies")))
}
