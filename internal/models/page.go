// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PageStatus represents the publishing lifecycle state of a page.
type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusReview    PageStatus = "review"
	PageStatusScheduled PageStatus = "scheduled"
	PageStatusPublished PageStatus = "published"
	PageStatusArchived  PageStatus = "archived"
)

// Valid reports whether s is one of the known page statuses.
func (s PageStatus) Valid() bool {
	switch s {
	case PageStatusDraft, PageStatusReview, PageStatusScheduled,
		PageStatusPublished, PageStatusArchived:
		return true
	}
	return false
}

// PageVisibility controls who can see a published page.
type PageVisibility string

const (
	VisibilityPublic   PageVisibility = "public"
	VisibilityPrivate  PageVisibility = "private"
	VisibilityPassword PageVisibility = "password"
)

// Page is a hierarchical content node. Pages form a tree through ParentID
// and carry SEO metadata that is captured in every version snapshot.
type Page struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	Slug            string         `json:"slug"`
	Content         string         `json:"content"`
	Summary         string         `json:"summary"`
	ParentID        *uuid.UUID     `json:"parent_id,omitempty"`
	TemplateID      uuid.UUID      `json:"template_id"`
	Status          PageStatus     `json:"status"`
	Visibility      PageVisibility `json:"visibility"`
	PasswordHash    *string        `json:"-"` // For password-protected pages
	Order           int            `json:"order"`
	MetaTitle       string         `json:"meta_title"`
	MetaDescription string         `json:"meta_description"`
	MetaKeywords    string         `json:"meta_keywords"`
	PublishedAt     *time.Time     `json:"published_at,omitempty"`
	ScheduledAt     *time.Time     `json:"scheduled_at,omitempty"`
	CreatedBy       *uuid.UUID     `json:"created_by,omitempty"`
	UpdatedBy       *uuid.UUID     `json:"updated_by,omitempty"`
	PublishedBy     *uuid.UUID     `json:"published_by,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// IsPublished reports whether the page should be treated as published at
// the given instant. A scheduled page whose scheduled time has passed is
// published for visibility purposes even though its persisted status still
// reads "scheduled". There is no background sweep flipping the column, so
// callers must use this method rather than comparing Status directly.
func (p *Page) IsPublished(now time.Time) bool {
	if p.Status == PageStatusPublished {
		return true
	}
	return p.Status == PageStatusScheduled &&
		p.ScheduledAt != nil &&
		!p.ScheduledAt.After(now)
}

// NeedsPassword reports whether viewing the page requires a password.
func (p *Page) NeedsPassword() bool {
	return p.Visibility == VisibilityPassword && p.PasswordHash != nil && *p.PasswordHash != ""
}

// CheckPassword verifies a supplied password against the page's hash.
func (p *Page) CheckPassword(password string) bool {
	if p.PasswordHash == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*p.PasswordHash), []byte(password)) == nil
}

// EffectiveMetaTitle returns the SEO title, falling back to the page title.
func (p *Page) EffectiveMetaTitle() string {
	if p.MetaTitle != "" {
		return p.MetaTitle
	}
	return p.Title
}
