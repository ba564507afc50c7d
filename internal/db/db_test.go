package db

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_AreIdempotentStatements(t *testing.T) {
	ms := Migrations()
	require.NotEmpty(t, ms)

	seen := make(map[string]bool)
	for _, m := range ms {
		assert.NotEmpty(t, m.Name)
		assert.False(t, seen[m.Name], "duplicate migration name %s", m.Name)
		seen[m.Name] = true
		assert.Contains(t, m.SQL, "IF NOT EXISTS", "migration %s must be repeatable", m.Name)
	}
	assert.True(t, strings.Contains(ms[0].SQL, "resume_drafts"))
}

func TestMigrations_ReturnsCopy(t *testing.T) {
	ms := Migrations()
	ms[0].Name = "changed"
	assert.Equal(t, "create_resume_drafts", Migrations()[0].Name)
}

// The argument checks run before any query, so a DB without a pool is enough.
func TestDrafts_RejectBadArguments(t *testing.T) {
	db := &DB{}
	ctx := context.Background()

	_, err := db.GetDraft(ctx, "")
	assert.Error(t, err)
	assert.Error(t, db.DeleteDraft(ctx, ""))
	assert.Error(t, db.SaveDraft(ctx, "", []byte(`{}`)))

	err = db.SaveDraft(ctx, "resucraft_draft", []byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")

	store := NewDraftStore(db)
	_, ok, err := store.Get(ctx, "")
	assert.Error(t, err)
	assert.False(t, ok)
}
