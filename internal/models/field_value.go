// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"

	"github.com/google/uuid"
)

// PageFieldValue holds the value of one field definition for one page.
// Exactly one row exists per (page, field) pair. Text-like kinds use
// Value; file kinds store the uploaded file's URL; relation kinds record
// a generic reference to another object.
type PageFieldValue struct {
	ID      uuid.UUID `json:"id"`
	PageID  uuid.UUID `json:"page_id"`
	FieldID uuid.UUID `json:"field_id"`
	Value   string    `json:"value"`

	// File reference for file/image/video/audio kinds.
	FileURL *string `json:"file_url,omitempty"`

	// Generic object reference for relation kinds.
	RefKind  *string    `json:"ref_kind,omitempty"`
	RefID    *uuid.UUID `json:"ref_id,omitempty"`
	RefLabel *string    `json:"ref_label,omitempty"`
}

// truthy values accepted for boolean fields, matching the loose set the
// editor UI historically sent.
var truthy = map[string]bool{
	"true": true, "1": true, "t": true, "y": true, "yes": true,
}

// DisplayValue formats the value for human display according to the
// field's type: booleans render Yes/No, select/radio resolve the machine
// value to its label, file kinds render the file URL, and relations
// render the referenced object's label.
func (v *PageFieldValue) DisplayValue(field *FieldDefinition) string {
	switch {
	case field.Type.IsFileKind() && v.FileURL != nil:
		return *v.FileURL

	case field.Type == FieldBoolean:
		if truthy[strings.ToLower(v.Value)] {
			return "Yes"
		}
		return "No"

	case (field.Type == FieldSelect || field.Type == FieldRadio) && v.Value != "":
		for _, opt := range field.OptionsList() {
			if opt.Value == v.Value {
				return opt.Label
			}
		}
		return v.Value

	case field.Type == FieldRelation && v.RefLabel != nil:
		return *v.RefLabel
	}

	return v.Value
}
