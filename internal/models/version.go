// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PageVersion is an immutable snapshot of a page's content, metadata, and
// custom field values at a point in time. Version numbers are allocated
// monotonically per page starting at 1 and are never reused; rows are
// never updated after insertion.
type PageVersion struct {
	ID              uuid.UUID  `json:"id"`
	PageID          uuid.UUID  `json:"page_id"`
	VersionNumber   int        `json:"version_number"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Summary         string     `json:"summary"`
	Status          PageStatus `json:"status"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	MetaKeywords    string     `json:"meta_keywords"`

	// CustomFields flattens the page's field values at snapshot time,
	// keyed "<group-slug>.<field-slug>". File kinds store the file URL.
	// Stored as a single JSONB document; versions are read whole, never
	// filtered by field value.
	CustomFields map[string]string `json:"custom_fields,omitempty"`

	Comment   string     `json:"comment"`
	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
