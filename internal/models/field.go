// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// FieldType enumerates the kinds of custom fields a template may define.
type FieldType string

const (
	FieldText        FieldType = "text"
	FieldTextarea    FieldType = "textarea"
	FieldRichText    FieldType = "richtext"
	FieldEmail       FieldType = "email"
	FieldURL         FieldType = "url"
	FieldInteger     FieldType = "integer"
	FieldDecimal     FieldType = "decimal"
	FieldBoolean     FieldType = "boolean"
	FieldDate        FieldType = "date"
	FieldTime        FieldType = "time"
	FieldDateTime    FieldType = "datetime"
	FieldImage       FieldType = "image"
	FieldGalleryKind FieldType = "gallery"
	FieldFile        FieldType = "file"
	FieldVideo       FieldType = "video"
	FieldAudio       FieldType = "audio"
	FieldMap         FieldType = "map"
	FieldColor       FieldType = "color"
	FieldSelect      FieldType = "select"
	FieldMultiSelect FieldType = "multiselect"
	FieldRadio       FieldType = "radio"
	FieldCheckboxes  FieldType = "checkboxes"
	FieldJSON        FieldType = "json"
	FieldCode        FieldType = "code"
	FieldRelation    FieldType = "relation"
)

// IsFileKind reports whether the field stores an uploaded file reference.
func (t FieldType) IsFileKind() bool {
	switch t {
	case FieldFile, FieldImage, FieldVideo, FieldAudio:
		return true
	}
	return false
}

// FieldGroup organizes field definitions within a template. Group slugs
// are unique per template and form the first half of the flattened
// "group.field" keys used in version snapshots.
type FieldGroup struct {
	ID            uuid.UUID `json:"id"`
	TemplateID    uuid.UUID `json:"template_id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Order         int       `json:"order"`
	IsCollapsible bool      `json:"is_collapsible"`
	IsCollapsed   bool      `json:"is_collapsed"`
}

// FieldOption is one selectable choice for select/radio/checkbox fields.
type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldDefinition describes one typed custom field within a group,
// including the validation constraints applied to its values.
type FieldDefinition struct {
	ID                uuid.UUID `json:"id"`
	GroupID           uuid.UUID `json:"group_id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Description       string    `json:"description"`
	HelpText          string    `json:"help_text"`
	Type              FieldType `json:"field_type"`
	DefaultValue      string    `json:"default_value"`
	Placeholder       string    `json:"placeholder"`
	IsRequired        bool      `json:"is_required"`
	MinLength         *int      `json:"min_length,omitempty"`
	MaxLength         *int      `json:"max_length,omitempty"`
	MinValue          *float64  `json:"min_value,omitempty"`
	MaxValue          *float64  `json:"max_value,omitempty"`
	Options           string    `json:"options"`
	ValidationRegex   string    `json:"validation_regex"`
	AllowedExtensions string    `json:"allowed_extensions"`
	MaxFileSizeKB     *int      `json:"max_file_size,omitempty"`
	Order             int       `json:"order"`
}

// OptionsList parses the options column into a list of choices. The column
// accepts a JSON array of strings, a JSON array of {value,label} objects,
// or a plain comma-separated list.
func (d *FieldDefinition) OptionsList() []FieldOption {
	if d.Options == "" {
		return nil
	}

	// Unmarshal into structs fails for an array of strings, so a nil
	// error means the column really holds {value,label} objects, empty
	// values included.
	var objects []FieldOption
	if err := json.Unmarshal([]byte(d.Options), &objects); err == nil && len(objects) > 0 {
		return objects
	}

	var plain []string
	if err := json.Unmarshal([]byte(d.Options), &plain); err == nil {
		opts := make([]FieldOption, 0, len(plain))
		for _, v := range plain {
			opts = append(opts, FieldOption{Value: v, Label: v})
		}
		return opts
	}

	parts := strings.Split(d.Options, ",")
	opts := make([]FieldOption, 0, len(parts))
	for _, p := range parts {
		v := strings.TrimSpace(p)
		if v != "" {
			opts = append(opts, FieldOption{Value: v, Label: v})
		}
	}
	return opts
}

// HasOption reports whether value is among the field's configured choices.
func (d *FieldDefinition) HasOption(value string) bool {
	for _, opt := range d.OptionsList() {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// AllowedExtensionsList returns the comma-separated extension allow-list
// as lowercase entries without leading dots.
func (d *FieldDefinition) AllowedExtensionsList() []string {
	if d.AllowedExtensions == "" {
		return nil
	}
	parts := strings.Split(d.AllowedExtensions, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		e := strings.ToLower(strings.TrimSpace(p))
		e = strings.TrimPrefix(e, ".")
		if e != "" {
			exts = append(exts, e)
		}
	}
	return exts
}
