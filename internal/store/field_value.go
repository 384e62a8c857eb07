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

// fieldValueColumns lists all columns for page_field_values SELECTs.
const fieldValueColumns = `id, page_id, field_id, value, file_url, ref_kind, ref_id, ref_label`

// FieldValueStore provides access to per-page custom field values.
type FieldValueStore struct {
	db DBTX
}

// NewFieldValueStore creates a new FieldValueStore backed by the given database.
func NewFieldValueStore(db *sql.DB) *FieldValueStore {
	return &FieldValueStore{db: db}
}

// WithTx returns a copy of the store bound to the given transaction.
func (s *FieldValueStore) WithTx(tx *sql.Tx) *FieldValueStore {
	return &FieldValueStore{db: tx}
}

func scanFieldValue(sc scanner) (*models.PageFieldValue, error) {
	var v models.PageFieldValue
	err := sc.Scan(
		&v.ID, &v.PageID, &v.FieldID, &v.Value, &v.FileURL,
		&v.RefKind, &v.RefID, &v.RefLabel,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Upsert writes the value for a (page, field) pair, replacing any
// existing value for the same pair.
func (s *FieldValueStore) Upsert(v *models.PageFieldValue) (*models.PageFieldValue, error) {
	row := s.db.QueryRow(`
		INSERT INTO page_field_values (page_id, field_id, value, file_url, ref_kind, ref_id, ref_label)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (page_id, field_id) DO UPDATE SET
			value = EXCLUDED.value,
			file_url = EXCLUDED.file_url,
			ref_kind = EXCLUDED.ref_kind,
			ref_id = EXCLUDED.ref_id,
			ref_label = EXCLUDED.ref_label
		RETURNING `+fieldValueColumns,
		v.PageID, v.FieldID, v.Value, v.FileURL, v.RefKind, v.RefID, v.RefLabel,
	)
	saved, err := scanFieldValue(row)
	if err != nil {
		return nil, fmt.Errorf("upsert field value: %w", err)
	}
	return saved, nil
}

// FindByPageAndField retrieves the value for one (page, field) pair.
// Returns nil if no value is set.
func (s *FieldValueStore) FindByPageAndField(pageID, fieldID uuid.UUID) (*models.PageFieldValue, error) {
	row := s.db.QueryRow(`
		SELECT `+fieldValueColumns+`
		FROM page_field_values
		WHERE page_id = $1 AND field_id = $2
	`, pageID, fieldID)
	v, err := scanFieldValue(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find field value: %w", err)
	}
	return v, nil
}

// FieldValueDetail joins a field value with its definition and owning
// group slug, as needed to build the flattened "group.field" snapshot map.
type FieldValueDetail struct {
	Value     models.PageFieldValue
	Field     models.FieldDefinition
	GroupSlug string
}

// ListByPage returns all field values for a page with their definitions,
// in schema display order.
func (s *FieldValueStore) ListByPage(pageID uuid.UUID) ([]FieldValueDetail, error) {
	rows, err := s.db.Query(`
		SELECT v.id, v.page_id, v.field_id, v.value, v.file_url, v.ref_kind, v.ref_id, v.ref_label,
		       d.id, d.group_id, d.name, d.slug, d.description, d.help_text,
		       d.field_type, d.default_value, d.placeholder, d.is_required, d.min_length, d.max_length,
		       d.min_value, d.max_value, d.options, d.validation_regex, d.allowed_extensions,
		       d.max_file_size_kb, d.sort_order,
		       g.slug
		FROM page_field_values v
		JOIN field_definitions d ON d.id = v.field_id
		JOIN field_groups g ON g.id = d.group_id
		WHERE v.page_id = $1
		ORDER BY g.sort_order, d.sort_order, d.name
	`, pageID)
	if err != nil {
		return nil, fmt.Errorf("list field values: %w", err)
	}
	defer rows.Close()

	var details []FieldValueDetail
	for rows.Next() {
		var fv FieldValueDetail
		err := rows.Scan(
			&fv.Value.ID, &fv.Value.PageID, &fv.Value.FieldID, &fv.Value.Value,
			&fv.Value.FileURL, &fv.Value.RefKind, &fv.Value.RefID, &fv.Value.RefLabel,
			&fv.Field.ID, &fv.Field.GroupID, &fv.Field.Name, &fv.Field.Slug,
			&fv.Field.Description, &fv.Field.HelpText,
			&fv.Field.Type, &fv.Field.DefaultValue, &fv.Field.Placeholder,
			&fv.Field.IsRequired, &fv.Field.MinLength, &fv.Field.MaxLength,
			&fv.Field.MinValue, &fv.Field.MaxValue, &fv.Field.Options,
			&fv.Field.ValidationRegex, &fv.Field.AllowedExtensions,
			&fv.Field.MaxFileSizeKB, &fv.Field.Order,
			&fv.GroupSlug,
		)
		if err != nil {
			return nil, fmt.Errorf("scan field value detail: %w", err)
		}
		details = append(details, fv)
	}
	return details, rows.Err()
}

// DeleteByPage removes all field values for a page. Used by restore
// before rebuilding values from a version's snapshot map.
func (s *FieldValueStore) DeleteByPage(pageID uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM page_field_values WHERE page_id = $1`, pageID)
	if err != nil {
		return fmt.Errorf("delete field values: %w", err)
	}
	return nil
}
