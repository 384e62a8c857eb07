// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PageRedirect maps an old URL path to a page. A redirect is created
// automatically whenever a page's slug changes so old links keep working.
type PageRedirect struct {
	ID           uuid.UUID  `json:"id"`
	PageID       uuid.UUID  `json:"page_id"`
	OldPath      string     `json:"old_path"`
	RedirectType int        `json:"redirect_type"` // 301 or 302
	IsActive     bool       `json:"is_active"`
	AccessCount  int        `json:"access_count"`
	LastAccessed *time.Time `json:"last_accessed,omitempty"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
