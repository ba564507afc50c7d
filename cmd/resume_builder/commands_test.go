package main

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestShow_EmptyDraft(t *testing.T) {
	c := newCLI(t)

	doc := c.doc()
	assert.True(t, doc.Equal(types.EmptyResume()))

	entries, err := os.ReadDir(c.dir)
	if err == nil {
		assert.Empty(t, entries, "opening the draft must not write it")
	}
}

func TestAddAndUpdateExperience(t *testing.T) {
	c := newCLI(t)

	id := strings.TrimSpace(c.must("add", "experience"))
	require.NotEmpty(t, id)

	out := c.must("update", "experience", id,
		"--company", "Analytical Engines Ltd",
		"--position", "Programmer",
		"--start-date", "1842-01",
		"--current")
	assert.Contains(t, out, "Updated experience "+id)

	doc := c.doc()
	require.Len(t, doc.Experience, 1)
	got := doc.Experience[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Analytical Engines Ltd", got.Company)
	assert.Equal(t, "Programmer", got.Position)
	assert.True(t, got.Current)
	assert.Empty(t, got.Location)
}

func TestUpdate_FormProblems(t *testing.T) {
	c := newCLI(t)
	id := strings.TrimSpace(c.must("add", "experience"))

	_, stderr, err := c.run("update", "experience", id, "--company", "Acme", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing was changed")
	assert.Contains(t, stderr, "position")
	assert.Empty(t, c.doc().Experience[0].Company)

	stdout, stderr, err := c.run("update", "experience", id, "--company", "Acme")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Updated")
	assert.Contains(t, stderr, "position")
	assert.Equal(t, "Acme", c.doc().Experience[0].Company)
}

func TestUpdate_Errors(t *testing.T) {
	c := newCLI(t)
	skill := strings.TrimSpace(c.must("add", "skills"))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown id", []string{"update", "skills", "nope", "--name", "Go"}, `no skills entry with id "nope"`},
		{"bad level", []string{"update", "skills", skill, "--level", "guru"}, "guru"},
		{"bad bool", []string{"update", "experience", "x", "--current=maybe"}, "--current"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := c.run(tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
	assert.Nil(t, c.doc().Skills[0].Level)
}

func TestUpdate_ProjectTechnologies(t *testing.T) {
	c := newCLI(t)
	id := strings.TrimSpace(c.must("add", "projects"))

	c.must("update", "projects", id, "--name", "Notes", "--technologies", "Go, Postgres ,,Redis")
	assert.Equal(t, []string{"Go", "Postgres", "Redis"}, c.doc().Projects[0].Technologies)

	c.must("update", "projects", id, "--technologies", "")
	assert.Empty(t, c.doc().Projects[0].Technologies)
	assert.Equal(t, "Notes", c.doc().Projects[0].Name)
}

func TestMoveAndRemove(t *testing.T) {
	c := newCLI(t)
	a := strings.TrimSpace(c.must("add", "skills"))
	b := strings.TrimSpace(c.must("add", "skills"))
	d := strings.TrimSpace(c.must("add", "skills"))

	ids := func() []string {
		var out []string
		for _, s := range c.doc().Skills {
			out = append(out, s.ID)
		}
		return out
	}

	c.must("move", "skills", d, "up")
	assert.Equal(t, []string{a, d, b}, ids())

	c.must("move", "skills", a, "10")
	assert.Equal(t, []string{d, b, a}, ids())

	c.must("move", "skills", a, "--", "-1")
	assert.Equal(t, []string{d, a, b}, ids())

	out := c.must("remove", "skills", a)
	assert.Contains(t, out, "SKILLS")
	assert.Equal(t, []string{d, b}, ids())

	_, _, err := c.run("remove", "skills", a)
	assert.Error(t, err)
	_, _, err = c.run("move", "skills", b, "sideways")
	assert.Error(t, err)
	_, _, err = c.run("remove", "hobbies", b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown collection")
}

func TestList(t *testing.T) {
	c := newCLI(t)
	id := strings.TrimSpace(c.must("add", "languages"))
	c.must("update", "languages", id, "--name", "French", "--proficiency", "fluent")

	out := c.must("list", "languages")
	assert.Contains(t, out, "LANGUAGES")
	assert.Contains(t, out, "French · fluent")
	assert.Contains(t, out, id)
}

func TestSetCommands(t *testing.T) {
	c := newCLI(t)

	c.must("set", "template", "creative")
	c.must("set", "accent", "teal")
	c.must("set", "summary", "Mathematician and writer.")

	doc := c.doc()
	assert.Equal(t, types.TemplateCreative, doc.Template)
	assert.Equal(t, types.AccentTeal, doc.AccentColor)
	assert.Equal(t, "Mathematician and writer.", doc.Summary)

	_, _, err := c.run("set", "template", "modernx")
	assert.ErrorIs(t, err, store.ErrInvalidTemplate)
	_, _, err = c.run("set", "accent", "magenta")
	assert.ErrorIs(t, err, store.ErrInvalidAccentColor)
	assert.Equal(t, types.TemplateCreative, c.doc().Template)
}

func TestSetPersonal(t *testing.T) {
	c := newCLI(t)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))))
	photoPath := filepath.Join(t.TempDir(), "me.png")
	require.NoError(t, os.WriteFile(photoPath, buf.Bytes(), 0o644))

	_, stderr, err := c.run("set", "personal", "--full-name", "Ada Lovelace", "--email", "not-an-email", "--photo", photoPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "email")

	info := c.doc().PersonalInfo
	assert.Equal(t, "Ada Lovelace", info.FullName)
	assert.Equal(t, "not-an-email", info.Email)
	require.NotNil(t, info.Photo)
	assert.True(t, strings.HasPrefix(*info.Photo, "data:image/png;base64,"))

	_, _, err = c.run("set", "personal", "--job-title", "Analyst", "--strict")
	require.Error(t, err)
	assert.Empty(t, c.doc().PersonalInfo.JobTitle)

	c.must("set", "personal", "--remove-photo")
	assert.Nil(t, c.doc().PersonalInfo.Photo)

	textPath := filepath.Join(t.TempDir(), "me.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("hello"), 0o644))
	_, _, err = c.run("set", "personal", "--photo", textPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please select an image file")
}

func TestToggle(t *testing.T) {
	c := newCLI(t)

	assert.Equal(t, "photo: hidden\n", c.must("toggle", "photo"))
	assert.False(t, c.doc().ShowSections.Photo)
	assert.Equal(t, "photo: shown\n", c.must("toggle", "photo"))

	_, _, err := c.run("toggle", "hobbies")
	assert.ErrorIs(t, err, store.ErrUnknownSection)
}

func TestImportShowAndReset(t *testing.T) {
	c := newCLI(t)
	fixture := filepath.Join("..", "..", "testdata", "valid", "resume.json")

	assert.Contains(t, c.must("import", fixture), "Imported")
	assert.Equal(t, "Ada Lovelace", c.doc().PersonalInfo.FullName)

	assert.Contains(t, c.must("show", "--summary"), "Ada Lovelace")
	assert.Contains(t, c.must("show", "--preview", "--width", "80"), "EXPERIENCE")

	_, stderr, err := c.run("import", filepath.Join("..", "..", "testdata", "invalid", "bad_template.json"))
	require.Error(t, err)
	assert.Contains(t, stderr, "template")
	assert.Equal(t, "Ada Lovelace", c.doc().PersonalInfo.FullName)

	assert.Contains(t, c.must("reset"), "Resume reset")
	assert.True(t, c.doc().Equal(types.EmptyResume()))
}

func TestShow_FlagsExclusive(t *testing.T) {
	_, _, err := newCLI(t).run("show", "--json", "--summary")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := newCLI(t)

	out := c.must("validate", filepath.Join("..", "..", "testdata", "valid", "resume.yaml"))
	assert.Contains(t, out, "no problems")

	_, _, err := c.run("validate", filepath.Join("..", "..", "testdata", "invalid", "malformed.json"))
	require.Error(t, err)

	_, stderr, err := c.run("validate", filepath.Join("..", "..", "testdata", "invalid", "bad_template.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a valid resume")
	assert.Contains(t, stderr, "template")

	assert.True(t, c.doc().Equal(types.EmptyResume()), "validate must not import")
}

func TestValidate_Strict(t *testing.T) {
	c := newCLI(t)
	path := filepath.Join(t.TempDir(), "draft.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"template": "modern",
		"accentColor": "blue",
		"personalInfo": {"fullName": "", "jobTitle": "", "email": "", "phone": "", "location": ""},
		"summary": "",
		"experience": [{"id": "exp-1", "company": "", "position": "", "startDate": "", "endDate": "", "current": false, "location": "", "description": ""}],
		"education": [], "skills": [], "certifications": [], "projects": [], "languages": [], "awards": [],
		"showSections": {"photo": true, "summary": true, "experience": true, "education": true, "skills": true,
			"certifications": false, "projects": false, "languages": false, "awards": false}
	}`), 0o644))

	c.must("validate", path)

	stdout, _, err := c.run("validate", "--strict", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "form problem")
	assert.Contains(t, stdout, "experience[exp-1].company")
	assert.Contains(t, stdout, "personalInfo.fullName")
}

func TestRender(t *testing.T) {
	c := newCLI(t)
	c.must("set", "personal", "--full-name", "Ada <Lovelace>")

	out := filepath.Join(t.TempDir(), "site", "resume.html")
	assert.Contains(t, c.must("render", "--out", out), out)

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(page), `id="resume-preview"`)
	assert.Contains(t, string(page), "Ada &lt;Lovelace&gt;")

	assert.Contains(t, c.must("render"), "<!DOCTYPE html>")
}

// stubExporter writes the region id instead of launching a browser.
type stubExporter struct{}

func (stubExporter) ExportDocument(_ context.Context, page []byte, regionID, filename string) error {
	return os.WriteFile(filename, []byte("pdf "+regionID), 0o644)
}

func (stubExporter) ExportRaster(_ context.Context, page []byte, regionID, filename string) error {
	return os.WriteFile(filename, []byte("png "+regionID), 0o644)
}

func TestExport(t *testing.T) {
	original := newExporter
	newExporter = func(config.Config, *zap.Logger) export.Exporter { return stubExporter{} }
	t.Cleanup(func() { newExporter = original })

	c := newCLI(t)
	outDir := filepath.Join(t.TempDir(), "exports")

	c.must("export", "--format", "all", "--out-dir", outDir, "--name", "ada")
	for _, name := range []string{"ada.pdf", "ada.png"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err)
		assert.Contains(t, string(data), "resume-preview")
	}

	_, _, err := c.run("export", "--format", "docx", "--out-dir", outDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}

func TestMemoryStorageForgetsBetweenRuns(t *testing.T) {
	c := newCLI(t)
	c.must("set", "summary", "kept")

	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"--storage=memory", "show", "--json"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), `"summary": ""`)

	assert.Equal(t, "kept", c.doc().Summary)
}

func TestBadConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	c := newCLI(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"storage": "postgres"}`), 0o644))

	_, _, err := c.run("--config", path, "--storage=postgres", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database_url")
}

func TestSyncLoggerFlushesBufferedOutput(t *testing.T) {
	var buf bytes.Buffer
	ws := &zapcore.BufferedWriteSyncer{WS: zapcore.AddSync(&buf)}
	t.Cleanup(func() { _ = ws.Stop() })

	previous := logger
	logger = zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), ws, zap.DebugLevel))
	t.Cleanup(func() { logger = previous })

	logger.Info("session closed")
	assert.Zero(t, buf.Len(), "entry is still buffered")

	syncLogger()
	assert.Contains(t, buf.String(), "session closed")
}
