//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyResume_Defaults(t *testing.T) {
	r := EmptyResume()

	assert.Equal(t, CurrentSchemaVersion, r.SchemaVersion)
	assert.Equal(t, TemplateModern, r.Template)
	assert.Equal(t, AccentBlue, r.AccentColor)
	assert.Nil(t, r.PersonalInfo.Photo)
	require.NotNil(t, r.PersonalInfo.LinkedIn)
	assert.Equal(t, "", *r.PersonalInfo.LinkedIn)
	assert.NotNil(t, r.Experience)
	assert.Empty(t, r.Experience)
	assert.NotNil(t, r.Awards)

	assert.True(t, r.ShowSections.Photo)
	assert.True(t, r.ShowSections.Summary)
	assert.True(t, r.ShowSections.Experience)
	assert.True(t, r.ShowSections.Education)
	assert.True(t, r.ShowSections.Skills)
	assert.False(t, r.ShowSections.Certifications)
	assert.False(t, r.ShowSections.Projects)
	assert.False(t, r.ShowSections.Languages)
	assert.False(t, r.ShowSections.Awards)
}

func TestEmptyResume_FreshMemory(t *testing.T) {
	a := EmptyResume()
	b := EmptyResume()
	*a.PersonalInfo.LinkedIn = "changed"
	assert.Equal(t, "", *b.PersonalInfo.LinkedIn)
}

func TestEmptyResume_JSONShape(t *testing.T) {
	data, err := json.Marshal(EmptyResume())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{"template", "accentColor", "personalInfo", "summary", "experience",
		"education", "skills", "certifications", "projects", "languages", "awards", "showSections"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, []any{}, raw["experience"])
	assert.Len(t, raw["showSections"], 9)
}

func TestResume_ZeroSchemaVersionOmitted(t *testing.T) {
	r := EmptyResume()
	r.SchemaVersion = 0

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "schemaVersion")

	data, err = json.Marshal(EmptyResume())
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(CurrentSchemaVersion), raw["schemaVersion"])
}

func TestNewRecordDefaults(t *testing.T) {
	skill := NewSkill("s1")
	require.NotNil(t, skill.Level)
	assert.Equal(t, LevelIntermediate, *skill.Level)

	lang := NewLanguage("l1")
	require.NotNil(t, lang.Proficiency)
	assert.Equal(t, ProficiencyConversational, *lang.Proficiency)

	proj := NewProject("p1")
	assert.Nil(t, proj.Technologies)
	assert.Equal(t, "", Deref(proj.URL))

	exp := NewExperience("e1")
	assert.Equal(t, Experience{ID: "e1"}, exp)
}

func TestResume_CloneIsDeep(t *testing.T) {
	r := EmptyResume()
	r.PersonalInfo.Photo = Str("data:image/png;base64,AAAA")
	r.Skills = append(r.Skills, NewSkill("s1"))
	r.Projects = append(r.Projects, Project{ID: "p1", Technologies: []string{"Go"}})

	c := r.Clone()
	require.Equal(t, r, c)

	*c.PersonalInfo.Photo = "other"
	*c.Skills[0].Level = LevelExpert
	c.Projects[0].Technologies[0] = "Rust"

	assert.Equal(t, "data:image/png;base64,AAAA", *r.PersonalInfo.Photo)
	assert.Equal(t, LevelIntermediate, *r.Skills[0].Level)
	assert.Equal(t, "Go", r.Projects[0].Technologies[0])
}

func TestPatches_Apply(t *testing.T) {
	t.Run("empty patch leaves record unchanged", func(t *testing.T) {
		e := Experience{ID: "e1", Company: "Acme", Current: true}
		assert.Equal(t, e, ExperiencePatch{}.Apply(e))

		ed := NewEducation("ed1")
		assert.Equal(t, ed, EducationPatch{}.Apply(ed))

		a := NewAward("a1")
		assert.Equal(t, a, AwardPatch{}.Apply(a))
	})

	t.Run("experience fields merge", func(t *testing.T) {
		got := ExperiencePatch{Company: Str("Acme"), Current: boolPtr(true)}.Apply(NewExperience("e1"))
		assert.Equal(t, Experience{ID: "e1", Company: "Acme", Current: true}, got)
	})

	t.Run("empty photo removes it", func(t *testing.T) {
		info := PersonalInfo{Photo: Str("data:image/png;base64,AAAA")}
		got := PersonalInfoPatch{Photo: Str("")}.Apply(info)
		assert.Nil(t, got.Photo)
	})

	t.Run("technologies replace and clear", func(t *testing.T) {
		p := ProjectPatch{Technologies: []string{"Go", "SQL"}}.Apply(NewProject("p1"))
		assert.Equal(t, []string{"Go", "SQL"}, p.Technologies)

		cleared := ProjectPatch{Technologies: []string{}}.Apply(p)
		assert.Nil(t, cleared.Technologies)

		unchanged := ProjectPatch{Name: Str("x")}.Apply(p)
		assert.Equal(t, []string{"Go", "SQL"}, unchanged.Technologies)
	})

	t.Run("enum patches validate", func(t *testing.T) {
		bad := SkillLevel("guru")
		assert.Error(t, SkillPatch{Level: &bad}.Validate())
		good := LevelExpert
		assert.NoError(t, SkillPatch{Level: &good}.Validate())

		badP := Proficiency("tourist")
		assert.Error(t, LanguagePatch{Proficiency: &badP}.Validate())
	})

	t.Run("patch does not alias caller memory", func(t *testing.T) {
		url := "https://example.com"
		c := CertificationPatch{URL: &url}.Apply(NewCertification("c1"))
		url = "mutated"
		assert.Equal(t, "https://example.com", *c.URL)
	})
}

func boolPtr(b bool) *bool { return &b }

func TestResume_Equal(t *testing.T) {
	a := EmptyResume()
	b := EmptyResume()
	assert.True(t, a.Equal(b))

	b.Experience = nil
	assert.True(t, a.Equal(b), "nil and empty collections are equal")

	b.Summary = "changed"
	assert.False(t, a.Equal(b))

	c := EmptyResume()
	c.PersonalInfo.LinkedIn = nil
	assert.False(t, a.Equal(c), "absent and empty optional fields differ")
}
