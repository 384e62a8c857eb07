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

// pageColumns lists all columns for pages SELECTs.
const pageColumns = `id, title, slug, content, summary, parent_id, template_id,
	status, visibility, password_hash, sort_order, meta_title, meta_description,
	meta_keywords, published_at, scheduled_at, created_by, updated_by,
	published_by, created_at, updated_at`

// PageStore handles all page-related database operations, including the
// tree-integrity queries used by move and delete.
type PageStore struct {
	db DBTX
}

// NewPageStore creates a new PageStore backed by the given database.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

// WithTx returns a copy of the store bound to the given transaction.
func (s *PageStore) WithTx(tx *sql.Tx) *PageStore {
	return &PageStore{db: tx}
}

func scanPage(sc scanner) (*models.Page, error) {
	var p models.Page
	err := sc.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Summary, &p.ParentID, &p.TemplateID,
		&p.Status, &p.Visibility, &p.PasswordHash, &p.Order, &p.MetaTitle, &p.MetaDescription,
		&p.MetaKeywords, &p.PublishedAt, &p.ScheduledAt, &p.CreatedBy, &p.UpdatedBy,
		&p.PublishedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new page and returns it with the generated ID.
func (s *PageStore) Create(p *models.Page) (*models.Page, error) {
	row := s.db.QueryRow(`
		INSERT INTO pages (
			title, slug, content, summary, parent_id, template_id, status,
			visibility, password_hash, sort_order, meta_title, meta_description,
			meta_keywords, published_at, scheduled_at, created_by, updated_by, published_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING `+pageColumns,
		p.Title, p.Slug, p.Content, p.Summary, p.ParentID, p.TemplateID, p.Status,
		p.Visibility, p.PasswordHash, p.Order, p.MetaTitle, p.MetaDescription,
		p.MetaKeywords, p.PublishedAt, p.ScheduledAt, p.CreatedBy, p.UpdatedBy, p.PublishedBy,
	)
	created, err := scanPage(row)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return created, nil
}

// FindByID retrieves a page by ID. Returns nil if not found.
func (s *PageStore) FindByID(id uuid.UUID) (*models.Page, error) {
	row := s.db.QueryRow(`SELECT `+pageColumns+` FROM pages WHERE id = $1`, id)
	p, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a page by slug regardless of status. Visibility
// decisions belong to the caller (Page.IsPublished, not raw status).
func (s *PageStore) FindBySlug(slug string) (*models.Page, error) {
	row := s.db.QueryRow(`SELECT `+pageColumns+` FROM pages WHERE slug = $1`, slug)
	p, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by slug: %w", err)
	}
	return p, nil
}

// Update writes all mutable page fields and bumps updated_at.
func (s *PageStore) Update(p *models.Page) error {
	_, err := s.db.Exec(`
		UPDATE pages SET
			title = $1, slug = $2, content = $3, summary = $4, parent_id = $5,
			template_id = $6, status = $7, visibility = $8, password_hash = $9,
			sort_order = $10, meta_title = $11, meta_description = $12,
			meta_keywords = $13, published_at = $14, scheduled_at = $15,
			updated_by = $16, published_by = $17, updated_at = NOW()
		WHERE id = $18
	`, p.Title, p.Slug, p.Content, p.Summary, p.ParentID,
		p.TemplateID, p.Status, p.Visibility, p.PasswordHash,
		p.Order, p.MetaTitle, p.MetaDescription,
		p.MetaKeywords, p.PublishedAt, p.ScheduledAt,
		p.UpdatedBy, p.PublishedBy, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	return nil
}

// Delete removes a page by ID. Owned rows (field values, versions,
// revision requests, notifications, redirects) cascade at the database
// level; callers must check HasChildren first since parent_id restricts.
func (s *PageStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

// HasChildren reports whether any page has this page as its parent.
func (s *PageStore) HasChildren(id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM pages WHERE parent_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("page has children: %w", err)
	}
	return exists, nil
}

// IsDescendant reports whether candidate lies in the subtree rooted at
// ancestor. Used by move to reject cycles.
func (s *PageStore) IsDescendant(ancestor, candidate uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		WITH RECURSIVE subtree AS (
			SELECT id FROM pages WHERE parent_id = $1
			UNION ALL
			SELECT p.id FROM pages p JOIN subtree s ON p.parent_id = s.id
		)
		SELECT EXISTS (SELECT 1 FROM subtree WHERE id = $2)
	`, ancestor, candidate).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("page is descendant: %w", err)
	}
	return exists, nil
}

// SlugExists reports whether any page other than exclude uses the slug.
// Pass uuid.Nil to check against all pages.
func (s *PageStore) SlugExists(slug string, exclude uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM pages WHERE slug = $1 AND id <> $2)`,
		slug, exclude,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("page slug exists: %w", err)
	}
	return exists, nil
}

// LockForUpdate takes a row lock on the page, serializing concurrent
// version-number allocation. Only meaningful inside a transaction.
// Returns false if the page does not exist.
func (s *PageStore) LockForUpdate(id uuid.UUID) (bool, error) {
	var locked uuid.UUID
	err := s.db.QueryRow(`SELECT id FROM pages WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lock page: %w", err)
	}
	return true, nil
}

// ListChildren returns the direct children of a page in tree order.
func (s *PageStore) ListChildren(parentID uuid.UUID) ([]*models.Page, error) {
	rows, err := s.db.Query(`
		SELECT `+pageColumns+`
		FROM pages
		WHERE parent_id = $1
		ORDER BY sort_order, title
	`, parentID)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	defer rows.Close()

	var pages []*models.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// ListRoots returns all root pages (no parent) in tree order.
func (s *PageStore) ListRoots() ([]*models.Page, error) {
	rows, err := s.db.Query(`
		SELECT ` + pageColumns + `
		FROM pages
		WHERE parent_id IS NULL
		ORDER BY sort_order, title
	`)
	if err != nil {
		return nil, fmt.Errorf("list root pages: %w", err)
	}
	defer rows.Close()

	var pages []*models.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}
