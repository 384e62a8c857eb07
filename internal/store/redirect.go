// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"pagewright/internal/models"
)

// redirectColumns lists all columns for page_redirects SELECTs.
const redirectColumns = `id, page_id, old_path, redirect_type, is_active,
	access_count, last_accessed, created_by, created_at`

// RedirectStore provides access to old-path → page redirect records.
type RedirectStore struct {
	db DBTX
}

// NewRedirectStore creates a new RedirectStore backed by the given database.
func NewRedirectStore(db *sql.DB) *RedirectStore {
	return &RedirectStore{db: db}
}

// WithTx returns a copy of the store bound to the given transaction.
func (s *RedirectStore) WithTx(tx *sql.Tx) *RedirectStore {
	return &RedirectStore{db: tx}
}

func scanRedirect(sc scanner) (*models.PageRedirect, error) {
	var r models.PageRedirect
	err := sc.Scan(
		&r.ID, &r.PageID, &r.OldPath, &r.RedirectType, &r.IsActive,
		&r.AccessCount, &r.LastAccessed, &r.CreatedBy, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserts a new redirect and returns it with the generated ID.
func (s *RedirectStore) Create(r *models.PageRedirect) (*models.PageRedirect, error) {
	row := s.db.QueryRow(`
		INSERT INTO page_redirects (page_id, old_path, redirect_type, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+redirectColumns,
		r.PageID, r.OldPath, r.RedirectType, r.IsActive, r.CreatedBy,
	)
	created, err := scanRedirect(row)
	if err != nil {
		return nil, fmt.Errorf("create redirect: %w", err)
	}
	return created, nil
}

// FindByOldPath retrieves an active redirect by its old path.
// Returns nil if not found.
func (s *RedirectStore) FindByOldPath(path string) (*models.PageRedirect, error) {
	row := s.db.QueryRow(`
		SELECT `+redirectColumns+`
		FROM page_redirects
		WHERE old_path = $1 AND is_active
	`, path)
	r, err := scanRedirect(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find redirect: %w", err)
	}
	return r, nil
}

// RecordHit increments the access counter and stamps last_accessed.
func (s *RedirectStore) RecordHit(id uuid.UUID) error {
	_, err := s.db.Exec(`
		UPDATE page_redirects
		SET access_count = access_count + 1, last_accessed = NOW()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("record redirect hit: %w", err)
	}
	return nil
}
