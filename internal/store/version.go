// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"pagewright/internal/models"
)

// versionColumns lists all columns for page_versions SELECTs.
const versionColumns = `id, page_id, version_number, title, content, summary,
	status, meta_title, meta_description, meta_keywords, custom_fields,
	comment, created_by, created_at`

// VersionStore provides access to the append-only page version log.
// Rows are inserted and read, never updated or deleted individually.
type VersionStore struct {
	db DBTX
}

// NewVersionStore creates a new VersionStore backed by the given database.
func NewVersionStore(db *sql.DB) *VersionStore {
	return &VersionStore{db: db}
}

// WithTx returns a copy of the store bound to the given transaction.
func (s *VersionStore) WithTx(tx *sql.Tx) *VersionStore {
	return &VersionStore{db: tx}
}

func scanVersion(sc scanner) (*models.PageVersion, error) {
	var v models.PageVersion
	var fields []byte
	err := sc.Scan(
		&v.ID, &v.PageID, &v.VersionNumber, &v.Title, &v.Content, &v.Summary,
		&v.Status, &v.MetaTitle, &v.MetaDescription, &v.MetaKeywords, &fields,
		&v.Comment, &v.CreatedBy, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &v.CustomFields); err != nil {
			return nil, fmt.Errorf("decode custom fields: %w", err)
		}
	}
	return &v, nil
}

// Create inserts a new version row and returns it with the generated ID.
// The caller is responsible for allocating VersionNumber under a page
// lock; the unique (page_id, version_number) constraint backstops races.
func (s *VersionStore) Create(v *models.PageVersion) (*models.PageVersion, error) {
	var fields any
	if v.CustomFields != nil {
		encoded, err := json.Marshal(v.CustomFields)
		if err != nil {
			return nil, fmt.Errorf("encode custom fields: %w", err)
		}
		fields = encoded
	}

	row := s.db.QueryRow(`
		INSERT INTO page_versions (
			page_id, version_number, title, content, summary, status,
			meta_title, meta_description, meta_keywords, custom_fields,
			comment, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+versionColumns,
		v.PageID, v.VersionNumber, v.Title, v.Content, v.Summary, v.Status,
		v.MetaTitle, v.MetaDescription, v.MetaKeywords, fields,
		v.Comment, v.CreatedBy,
	)
	created, err := scanVersion(row)
	if err != nil {
		return nil, fmt.Errorf("create version: %w", err)
	}
	return created, nil
}

// MaxVersionNumber returns the highest version number recorded for a
// page, or 0 if the page has no versions yet.
func (s *VersionStore) MaxVersionNumber(pageID uuid.UUID) (int, error) {
	var max int
	err := s.db.QueryRow(
		`SELECT COALESCE(MAX(version_number), 0) FROM page_versions WHERE page_id = $1`,
		pageID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max version number: %w", err)
	}
	return max, nil
}

// ListByPage returns all versions for a page, newest first.
func (s *VersionStore) ListByPage(pageID uuid.UUID) ([]*models.PageVersion, error) {
	rows, err := s.db.Query(`
		SELECT `+versionColumns+`
		FROM page_versions
		WHERE page_id = $1
		ORDER BY version_number DESC
	`, pageID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var versions []*models.PageVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// FindByID returns a single version by its ID. Returns nil if not found.
func (s *VersionStore) FindByID(id uuid.UUID) (*models.PageVersion, error) {
	row := s.db.QueryRow(`SELECT `+versionColumns+` FROM page_versions WHERE id = $1`, id)
	v, err := scanVersion(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find version by id: %w", err)
	}
	return v, nil
}

// FindByNumber returns a page's version by its number. Returns nil if not found.
func (s *VersionStore) FindByNumber(pageID uuid.UUID, number int) (*models.PageVersion, error) {
	row := s.db.QueryRow(`
		SELECT `+versionColumns+`
		FROM page_versions
		WHERE page_id = $1 AND version_number = $2
	`, pageID, number)
	v, err := scanVersion(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find version by number: %w", err)
	}
	return v, nil
}
