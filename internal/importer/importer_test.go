package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Fixtures(t *testing.T) {
	tests := []struct {
		file     string
		name     string
		template types.Template
	}{
		{"resume.json", "Ada Lovelace", types.TemplateClassic},
		{"resume.yaml", "Grace Hopper", types.TemplateMinimal},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			raw, err := LoadFile(filepath.Join("..", "..", "testdata", "valid", tt.file))
			require.NoError(t, err)
			require.IsType(t, map[string]any{}, raw)

			doc, err := schemas.Validate(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.name, doc.PersonalInfo.FullName)
			assert.Equal(t, tt.template, doc.Template)
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing", filepath.Join(dir, "absent.json"), "failed to read file"},
		{"bad json", write("bad.json", "{ invalid json }"), "failed to unmarshal JSON"},
		{"bad yaml", write("bad.yml", "template: [unclosed"), "failed to unmarshal YAML"},
		{"empty", write("empty.yaml", "  \n"), "file is empty"},
		{"extension", write("resume.txt", "{}"), `unsupported file extension ".txt"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.path)
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.path, loadErr.Path)
			assert.Contains(t, loadErr.Message, tt.want)
		})
	}
}

func TestParse_ExtensionCaseInsensitive(t *testing.T) {
	doc, err := Parse("RESUME.YML", []byte("summary: hi\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"summary": "hi"}, doc)
}

func TestLoadError(t *testing.T) {
	cause := errors.New("boom")
	err := &LoadError{Path: "a.json", Message: "failed to read file", Cause: cause}

	assert.Equal(t, "load error: a.json: failed to read file: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "load error: a.json: file is empty", (&LoadError{Path: "a.json", Message: "file is empty"}).Error())
}
