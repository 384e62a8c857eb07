// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// TemplateLayout categorizes page templates by their overall layout.
type TemplateLayout string

const (
	LayoutDefault      TemplateLayout = "default"
	LayoutFullWidth    TemplateLayout = "full_width"
	LayoutSidebarLeft  TemplateLayout = "sidebar_left"
	LayoutSidebarRight TemplateLayout = "sidebar_right"
	LayoutLanding      TemplateLayout = "landing"
	LayoutDashboard    TemplateLayout = "dashboard"
)

// Template defines a page layout and, through its field groups, the
// custom-field schema available to pages using it.
type Template struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	Description  string         `json:"description"`
	Layout       TemplateLayout `json:"layout"`
	TemplateFile string         `json:"template_file"`
	IsActive     bool           `json:"is_active"`
	CreatedBy    *uuid.UUID     `json:"created_by,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
