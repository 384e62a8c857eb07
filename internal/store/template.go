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

// templateColumns lists all columns for templates SELECTs.
const templateColumns = `id, name, slug, description, layout, template_file,
	is_active, created_by, created_at, updated_at`

// TemplateStore provides access to page template data in PostgreSQL.
type TemplateStore struct {
	db DBTX
}

// NewTemplateStore creates a new TemplateStore backed by the given database.
func NewTemplateStore(db *sql.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

// WithTx returns a copy of the store bound to the given transaction.
func (s *TemplateStore) WithTx(tx *sql.Tx) *TemplateStore {
	return &TemplateStore{db: tx}
}

func scanTemplate(sc scanner) (*models.Template, error) {
	var t models.Template
	err := sc.Scan(
		&t.ID, &t.Name, &t.Slug, &t.Description, &t.Layout, &t.TemplateFile,
		&t.IsActive, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new template and returns it with the generated ID.
func (s *TemplateStore) Create(t *models.Template) (*models.Template, error) {
	row := s.db.QueryRow(`
		INSERT INTO templates (name, slug, description, layout, template_file, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+templateColumns,
		t.Name, t.Slug, t.Description, t.Layout, t.TemplateFile, t.IsActive, t.CreatedBy,
	)
	created, err := scanTemplate(row)
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	return created, nil
}

// FindByID retrieves a template by ID. Returns nil if not found.
func (s *TemplateStore) FindByID(id uuid.UUID) (*models.Template, error) {
	row := s.db.QueryRow(`SELECT `+templateColumns+` FROM templates WHERE id = $1`, id)
	t, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template by id: %w", err)
	}
	return t, nil
}

// FindBySlug retrieves a template by slug. Returns nil if not found.
func (s *TemplateStore) FindBySlug(slug string) (*models.Template, error) {
	row := s.db.QueryRow(`SELECT `+templateColumns+` FROM templates WHERE slug = $1`, slug)
	t, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template by slug: %w", err)
	}
	return t, nil
}
