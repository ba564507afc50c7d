package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_StampsCurrentVersion(t *testing.T) {
	doc, err := Migrate(map[string]any{"template": "modern"})
	require.NoError(t, err)
	assert.Equal(t, 1, doc["schemaVersion"])
}

func TestMigrate_Chain(t *testing.T) {
	chain := []Migration{
		{From: 2, Name: "rename-headline", Up: func(doc map[string]any) (map[string]any, error) {
			info := doc["personalInfo"].(map[string]any)
			info["jobTitle"] = info["headline"]
			delete(info, "headline")
			return doc, nil
		}},
		{From: 1, Name: "add-summary", Up: func(doc map[string]any) (map[string]any, error) {
			if _, ok := doc["summary"]; !ok {
				doc["summary"] = ""
			}
			return doc, nil
		}},
	}

	doc := map[string]any{
		"personalInfo": map[string]any{"headline": "Engineer"},
	}
	got, err := migrate(doc, chain, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, got["schemaVersion"])
	assert.Equal(t, "", got["summary"])
	assert.Equal(t, "Engineer", got["personalInfo"].(map[string]any)["jobTitle"])
	assert.NotContains(t, got["personalInfo"], "headline")
}

func TestMigrate_Errors(t *testing.T) {
	t.Run("gap in chain", func(t *testing.T) {
		_, err := migrate(map[string]any{}, nil, 2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no migration from version 1")
	})

	t.Run("failing step", func(t *testing.T) {
		chain := []Migration{{From: 1, Name: "boom", Up: func(map[string]any) (map[string]any, error) {
			return nil, errors.New("unexpected shape")
		}}}
		_, err := migrate(map[string]any{}, chain, 2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `migration "boom" failed: unexpected shape`)
	})

	t.Run("newer than supported", func(t *testing.T) {
		_, err := Migrate(map[string]any{"schemaVersion": float64(2)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "newer than supported")
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := Migrate(map[string]any{"schemaVersion": "one"})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "schemaVersion", ve.Errors[0].Field)
	})

	t.Run("zero", func(t *testing.T) {
		_, err := Migrate(map[string]any{"schemaVersion": float64(0)})
		require.Error(t, err)
	})
}
