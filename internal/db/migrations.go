package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Migration is one idempotent schema change.
type Migration struct {
	Name string
	SQL  string
}

// migrations run in order on every startup; each statement must be safe to
// repeat.
var migrations = []Migration{
	{
		Name: "create_resume_drafts",
		SQL: `CREATE TABLE IF NOT EXISTS resume_drafts (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: "index_resume_drafts_updated_at",
		SQL:  `CREATE INDEX IF NOT EXISTS resume_drafts_updated_at_idx ON resume_drafts (updated_at DESC)`,
	},
}

// Migrations returns the schema changes applied by Migrate.
func Migrations() []Migration {
	return append([]Migration(nil), migrations...)
}

// Migrate applies every migration in order, stopping at the first failure.
func (db *DB) Migrate(ctx context.Context) error {
	db.logger.Debug("starting database migrations", zap.Int("count", len(migrations)))

	for _, m := range migrations {
		if _, err := db.pool.Exec(ctx, m.SQL); err != nil {
			db.logger.Error("migration failed", zap.String("name", m.Name), zap.Error(err))
			return fmt.Errorf("migration %s failed: %w", m.Name, err)
		}
		db.logger.Debug("migration completed", zap.String("name", m.Name))
	}
	return nil
}
