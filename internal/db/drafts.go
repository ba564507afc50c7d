package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-builder/internal/persist"
)

// Draft is one saved document row.
type Draft struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func checkKey(key string) error {
	if key == "" {
		return errors.New("draft key is required")
	}
	return nil
}

// GetDraft retrieves a draft by key. It returns nil when none is stored.
func (db *DB) GetDraft(ctx context.Context, key string) (*Draft, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	var d Draft
	var value []byte
	err := db.pool.QueryRow(ctx,
		`SELECT key, value, updated_at FROM resume_drafts WHERE key = $1`,
		key,
	).Scan(&d.Key, &value, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get draft %s: %w", key, err)
	}
	d.Value = value
	return &d, nil
}

// SaveDraft inserts or replaces the draft stored under key. value must be a
// JSON document.
func (db *DB) SaveDraft(ctx context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if !json.Valid(value) {
		return fmt.Errorf("failed to save draft %s: value is not valid JSON", key)
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO resume_drafts (key, value, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to save draft %s: %w", key, err)
	}
	return nil
}

// DeleteDraft removes the draft stored under key, if any.
func (db *DB) DeleteDraft(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if _, err := db.pool.Exec(ctx, `DELETE FROM resume_drafts WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete draft %s: %w", key, err)
	}
	return nil
}

// DraftStore adapts DB to persist.Storage.
type DraftStore struct {
	db *DB
}

var _ persist.Storage = (*DraftStore)(nil)

// NewDraftStore returns a Storage backed by the resume_drafts table.
func NewDraftStore(db *DB) *DraftStore {
	return &DraftStore{db: db}
}

// Get reads the draft value for key.
func (s *DraftStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	d, err := s.db.GetDraft(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if d == nil {
		return nil, false, nil
	}
	return d.Value, true, nil
}

// Set upserts the draft value for key.
func (s *DraftStore) Set(ctx context.Context, key string, value []byte) error {
	return s.db.SaveDraft(ctx, key, value)
}

// Delete removes the draft for key.
func (s *DraftStore) Delete(ctx context.Context, key string) error {
	return s.db.DeleteDraft(ctx, key)
}
