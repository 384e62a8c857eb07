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

// fieldGroupColumns lists all columns for field_groups SELECTs.
const fieldGroupColumns = `id, template_id, name, slug, description,
	sort_order, is_collapsible, is_collapsed`

// fieldDefColumns lists all columns for field_definitions SELECTs.
const fieldDefColumns = `id, group_id, name, slug, description, help_text,
	field_type, default_value, placeholder, is_required, min_length, max_length,
	min_value, max_value, options, validation_regex, allowed_extensions,
	max_file_size_kb, sort_order`

// FieldStore provides access to the custom-field schema (groups and
// definitions) in PostgreSQL. The schema is shared, read-mostly data
// referenced by many pages.
type FieldStore struct {
	db DBTX
}

// NewFieldStore creates a new FieldStore backed by the given database.
func NewFieldStore(db *sql.DB) *FieldStore {
	return &FieldStore{db: db}
}

// WithTx returns a copy of the store bound to the given transaction.
func (s *FieldStore) WithTx(tx *sql.Tx) *FieldStore {
	return &FieldStore{db: tx}
}

func scanFieldGroup(sc scanner) (*models.FieldGroup, error) {
	var g models.FieldGroup
	err := sc.Scan(
		&g.ID, &g.TemplateID, &g.Name, &g.Slug, &g.Description,
		&g.Order, &g.IsCollapsible, &g.IsCollapsed,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func scanFieldDefinition(sc scanner) (*models.FieldDefinition, error) {
	var d models.FieldDefinition
	err := sc.Scan(
		&d.ID, &d.GroupID, &d.Name, &d.Slug, &d.Description, &d.HelpText,
		&d.Type, &d.DefaultValue, &d.Placeholder, &d.IsRequired, &d.MinLength, &d.MaxLength,
		&d.MinValue, &d.MaxValue, &d.Options, &d.ValidationRegex, &d.AllowedExtensions,
		&d.MaxFileSizeKB, &d.Order,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateGroup inserts a new field group and returns it with the generated ID.
func (s *FieldStore) CreateGroup(g *models.FieldGroup) (*models.FieldGroup, error) {
	row := s.db.QueryRow(`
		INSERT INTO field_groups (template_id, name, slug, description, sort_order, is_collapsible, is_collapsed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+fieldGroupColumns,
		g.TemplateID, g.Name, g.Slug, g.Description, g.Order, g.IsCollapsible, g.IsCollapsed,
	)
	created, err := scanFieldGroup(row)
	if err != nil {
		return nil, fmt.Errorf("create field group: %w", err)
	}
	return created, nil
}

// CreateDefinition inserts a new field definition and returns it with the
// generated ID.
func (s *FieldStore) CreateDefinition(d *models.FieldDefinition) (*models.FieldDefinition, error) {
	row := s.db.QueryRow(`
		INSERT INTO field_definitions (
			group_id, name, slug, description, help_text, field_type,
			default_value, placeholder, is_required, min_length, max_length,
			min_value, max_value, options, validation_regex, allowed_extensions,
			max_file_size_kb, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING `+fieldDefColumns,
		d.GroupID, d.Name, d.Slug, d.Description, d.HelpText, d.Type,
		d.DefaultValue, d.Placeholder, d.IsRequired, d.MinLength, d.MaxLength,
		d.MinValue, d.MaxValue, d.Options, d.ValidationRegex, d.AllowedExtensions,
		d.MaxFileSizeKB, d.Order,
	)
	created, err := scanFieldDefinition(row)
	if err != nil {
		return nil, fmt.Errorf("create field definition: %w", err)
	}
	return created, nil
}

// FindGroupBySlug retrieves a field group by template and slug.
// Returns nil if not found.
func (s *FieldStore) FindGroupBySlug(templateID uuid.UUID, slug string) (*models.FieldGroup, error) {
	row := s.db.QueryRow(`
		SELECT `+fieldGroupColumns+`
		FROM field_groups
		WHERE template_id = $1 AND slug = $2
	`, templateID, slug)
	g, err := scanFieldGroup(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find field group: %w", err)
	}
	return g, nil
}

// FindDefinitionByID retrieves a field definition by ID. Returns nil if
// not found.
func (s *FieldStore) FindDefinitionByID(id uuid.UUID) (*models.FieldDefinition, error) {
	row := s.db.QueryRow(`SELECT `+fieldDefColumns+` FROM field_definitions WHERE id = $1`, id)
	d, err := scanFieldDefinition(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find field definition by id: %w", err)
	}
	return d, nil
}

// FindDefinitionBySlug retrieves a field definition by group and slug.
// Returns nil if not found.
func (s *FieldStore) FindDefinitionBySlug(groupID uuid.UUID, slug string) (*models.FieldDefinition, error) {
	row := s.db.QueryRow(`
		SELECT `+fieldDefColumns+`
		FROM field_definitions
		WHERE group_id = $1 AND slug = $2
	`, groupID, slug)
	d, err := scanFieldDefinition(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find field definition: %w", err)
	}
	return d, nil
}

// ListGroupsByTemplate returns all field groups for a template in display order.
func (s *FieldStore) ListGroupsByTemplate(templateID uuid.UUID) ([]*models.FieldGroup, error) {
	rows, err := s.db.Query(`
		SELECT `+fieldGroupColumns+`
		FROM field_groups
		WHERE template_id = $1
		ORDER BY sort_order, name
	`, templateID)
	if err != nil {
		return nil, fmt.Errorf("list field groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.FieldGroup
	for rows.Next() {
		g, err := scanFieldGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan field group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// ListDefinitionsByGroup returns all field definitions in a group in display order.
func (s *FieldStore) ListDefinitionsByGroup(groupID uuid.UUID) ([]*models.FieldDefinition, error) {
	rows, err := s.db.Query(`
		SELECT `+fieldDefColumns+`
		FROM field_definitions
		WHERE group_id = $1
		ORDER BY sort_order, name
	`, groupID)
	if err != nil {
		return nil, fmt.Errorf("list field definitions: %w", err)
	}
	defer rows.Close()

	var defs []*models.FieldDefinition
	for rows.Next() {
		d, err := scanFieldDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("scan field definition: %w", err)
		}
		defs = append(defs, d)
	}
	return defs, rows.Err()
}
