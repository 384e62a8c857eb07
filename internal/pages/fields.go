// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pages

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"pagewright/internal/models"
	"pagewright/internal/store"
)

// FileUpload describes an uploaded file being attached to a file-kind
// field. Size and name are validated against the field's constraints;
// URL is what gets persisted.
type FileUpload struct {
	Name      string
	SizeBytes int64
	URL       string
}

// RefInput describes a generic object reference for relation-kind fields.
type RefInput struct {
	Kind  string
	ID    uuid.UUID
	Label string
}

// SetValueInput carries the new value for one field. Exactly one of
// Value, File, or Ref is normally set, matching the field's kind.
type SetValueInput struct {
	Value *string
	File  *FileUpload
	Ref   *RefInput
}

// SetFieldValue validates rawValue against the field definition's
// constraints and upserts the (page, field) value. Any validation
// failure rejects the write entirely; no partial state is persisted.
func (s *Service) SetFieldValue(pageID, fieldID uuid.UUID, in SetValueInput) (*models.PageFieldValue, error) {
	page, err := s.pages.FindByID(pageID)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("page %s: %w", pageID, ErrNotFound)
	}

	field, err := s.fields.FindDefinitionByID(fieldID)
	if err != nil {
		return nil, err
	}
	if field == nil {
		return nil, fmt.Errorf("field %s: %w", fieldID, ErrNotFound)
	}

	if err := validateValue(field, in); err != nil {
		return nil, err
	}

	value := &models.PageFieldValue{
		PageID:  pageID,
		FieldID: fieldID,
	}
	if in.Value != nil {
		value.Value = *in.Value
	}
	if in.File != nil {
		value.FileURL = &in.File.URL
	}
	if in.Ref != nil {
		value.RefKind = &in.Ref.Kind
		refID := in.Ref.ID
		value.RefID = &refID
		value.RefLabel = &in.Ref.Label
	}

	return s.values.Upsert(value)
}

// PageFields returns the page's field values joined with their
// definitions and group slugs.
func (s *Service) PageFields(pageID uuid.UUID) ([]store.FieldValueDetail, error) {
	page, err := s.pages.FindByID(pageID)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("page %s: %w", pageID, ErrNotFound)
	}
	return s.values.ListByPage(pageID)
}

// validateValue applies the field definition's validation ladder to the
// incoming value. Checks run in constraint order; the first failure wins.
func validateValue(field *models.FieldDefinition, in SetValueInput) error {
	hasValue := in.Value != nil && *in.Value != ""
	hasFile := in.File != nil
	hasRef := in.Ref != nil

	if field.IsRequired && !hasValue && !hasFile && !hasRef {
		return fieldErrorf(field.Slug, "a value is required")
	}

	if hasValue {
		value := *in.Value

		switch field.Type {
		case models.FieldText, models.FieldTextarea, models.FieldRichText:
			// Length bounds count characters, not bytes, so multibyte
			// input is measured the way editors see it.
			length := utf8.RuneCountInString(value)
			if field.MinLength != nil && length < *field.MinLength {
				return fieldErrorf(field.Slug, "text is shorter than the minimum length %d", *field.MinLength)
			}
			if field.MaxLength != nil && length > *field.MaxLength {
				return fieldErrorf(field.Slug, "text exceeds the maximum length %d", *field.MaxLength)
			}

		case models.FieldInteger, models.FieldDecimal:
			num, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fieldErrorf(field.Slug, "%q is not a valid number", value)
			}
			if field.Type == models.FieldInteger && num != float64(int64(num)) {
				return fieldErrorf(field.Slug, "%q is not an integer", value)
			}
			if field.MinValue != nil && num < *field.MinValue {
				return fieldErrorf(field.Slug, "value is below the minimum %v", *field.MinValue)
			}
			if field.MaxValue != nil && num > *field.MaxValue {
				return fieldErrorf(field.Slug, "value is above the maximum %v", *field.MaxValue)
			}

		case models.FieldEmail:
			if !strings.Contains(value, "@") {
				return fieldErrorf(field.Slug, "%q is not a valid email address", value)
			}

		case models.FieldURL:
			if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
				return fieldErrorf(field.Slug, "%q is not a valid URL", value)
			}

		case models.FieldJSON:
			if !json.Valid([]byte(value)) {
				return fieldErrorf(field.Slug, "value is not valid JSON")
			}

		case models.FieldSelect, models.FieldRadio:
			if !field.HasOption(value) {
				return fieldErrorf(field.Slug, "%q is not among the configured options", value)
			}
		}

		if field.ValidationRegex != "" {
			pattern, err := regexp.Compile(field.ValidationRegex)
			if err != nil {
				return fieldErrorf(field.Slug, "validation pattern is invalid")
			}
			if !pattern.MatchString(value) {
				return fieldErrorf(field.Slug, "value does not match the validation pattern")
			}
		}
	}

	if hasFile && field.Type.IsFileKind() {
		if field.MaxFileSizeKB != nil && in.File.SizeBytes > int64(*field.MaxFileSizeKB)*1024 {
			return fieldErrorf(field.Slug, "file exceeds the maximum size of %d KB", *field.MaxFileSizeKB)
		}
		if allowed := field.AllowedExtensionsList(); len(allowed) > 0 {
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(in.File.Name), "."))
			found := false
			for _, a := range allowed {
				if ext == a {
					found = true
					break
				}
			}
			if !found {
				return fieldErrorf(field.Slug, "file type %q is not allowed", ext)
			}
		}
	}

	return nil
}
