// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pages

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pagewright/internal/models"
	"pagewright/internal/slug"
	"pagewright/internal/store"
)

// CreatePageInput carries the caller-supplied fields for a new page.
// Slug is optional: when empty it is derived from the title and deduped
// with a numeric suffix against existing pages.
type CreatePageInput struct {
	Title           string
	Slug            string
	Content         string
	Summary         string
	TemplateID      uuid.UUID
	ParentID        *uuid.UUID
	Status          models.PageStatus
	Visibility      models.PageVisibility
	Password        string
	Order           int
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	ScheduledAt     *time.Time
}

// CreatePage creates a new page under the optional parent. The slug is
// derived from the title when absent; a scheduled status requires a
// future scheduled time at creation.
func (s *Service) CreatePage(in CreatePageInput, actor uuid.UUID) (*models.Page, error) {
	if in.Title == "" {
		return nil, validationf("title is required")
	}

	if in.Status == "" {
		in.Status = models.PageStatusDraft
	}
	if !in.Status.Valid() {
		return nil, validationf("unknown status %q", in.Status)
	}
	if in.Visibility == "" {
		in.Visibility = models.VisibilityPublic
	}

	if in.Status == models.PageStatusScheduled {
		if in.ScheduledAt == nil {
			return nil, validationf("scheduled pages require a scheduled time")
		}
		if !in.ScheduledAt.After(time.Now()) {
			return nil, validationf("scheduled time must be in the future")
		}
	}

	tpl, err := s.templates.FindByID(in.TemplateID)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, fmt.Errorf("template %s: %w", in.TemplateID, ErrNotFound)
	}

	if in.ParentID != nil {
		parent, err := s.pages.FindByID(*in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("parent page %s: %w", *in.ParentID, ErrNotFound)
		}
	}

	base := in.Slug
	if base == "" {
		base = slug.Generate(in.Title)
	} else {
		base = slug.Generate(base)
	}
	if base == "" {
		return nil, validationf("title %q yields an empty slug", in.Title)
	}

	var passwordHash *string
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash page password: %w", err)
		}
		h := string(hash)
		passwordHash = &h
	}

	var created *models.Page
	err = s.inTx(func(tx *sql.Tx) error {
		txPages := s.pages.WithTx(tx)

		unique, err := slug.Unique(base, func(candidate string) (bool, error) {
			return txPages.SlugExists(candidate, uuid.Nil)
		})
		if errors.Is(err, slug.ErrExhausted) {
			return &ValidationError{Msg: err.Error()}
		}
		if err != nil {
			return err
		}

		page := &models.Page{
			Title:           in.Title,
			Slug:            unique,
			Content:         in.Content,
			Summary:         in.Summary,
			ParentID:        in.ParentID,
			TemplateID:      in.TemplateID,
			Status:          in.Status,
			Visibility:      in.Visibility,
			PasswordHash:    passwordHash,
			Order:           in.Order,
			MetaTitle:       in.MetaTitle,
			MetaDescription: in.MetaDescription,
			MetaKeywords:    in.MetaKeywords,
			ScheduledAt:     in.ScheduledAt,
			CreatedBy:       &actor,
			UpdatedBy:       &actor,
		}
		if in.Status == models.PageStatusPublished {
			now := time.Now()
			page.PublishedAt = &now
			page.PublishedBy = &actor
		}

		created, err = txPages.Create(page)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("page created", "page_id", created.ID, "slug", created.Slug, "status", created.Status)
	return created, nil
}

// GetPage retrieves a page by ID.
func (s *Service) GetPage(id uuid.UUID) (*models.Page, error) {
	page, err := s.pages.FindByID(id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("page %s: %w", id, ErrNotFound)
	}
	return page, nil
}

// GetPageBySlug retrieves a page by slug.
func (s *Service) GetPageBySlug(slug string) (*models.Page, error) {
	page, err := s.pages.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("page %q: %w", slug, ErrNotFound)
	}
	return page, nil
}

// Children returns a page's direct children ordered by sort order.
func (s *Service) Children(pageID uuid.UUID) ([]*models.Page, error) {
	page, err := s.pages.FindByID(pageID)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("page %s: %w", pageID, ErrNotFound)
	}
	return s.pages.ListChildren(pageID)
}

// Roots returns the top-level pages ordered by sort order.
func (s *Service) Roots() ([]*models.Page, error) {
	return s.pages.ListRoots()
}

// ResolveRedirect looks up an active redirect for the given old path and
// records the hit. Returns nil when no redirect matches.
func (s *Service) ResolveRedirect(path string) (*models.PageRedirect, *models.Page, error) {
	redirect, err := s.redirects.FindByOldPath(path)
	if err != nil {
		return nil, nil, err
	}
	if redirect == nil {
		return nil, nil, nil
	}
	if err := s.redirects.RecordHit(redirect.ID); err != nil {
		return nil, nil, err
	}
	page, err := s.pages.FindByID(redirect.PageID)
	if err != nil {
		return nil, nil, err
	}
	return redirect, page, nil
}

// UpdatePageInput carries partial edits to a page's content and SEO
// metadata. Nil fields are left unchanged.
type UpdatePageInput struct {
	Title           *string
	Content         *string
	Summary         *string
	Order           *int
	MetaTitle       *string
	MetaDescription *string
	MetaKeywords    *string
}

// UpdatePage applies a content edit and snapshots the result, so every
// saved edit is recoverable. The page's creator is notified unless they
// made the edit themselves.
func (s *Service) UpdatePage(pageID uuid.UUID, in UpdatePageInput, actor uuid.UUID, comment string) (*models.Page, error) {
	if in.Title != nil && *in.Title == "" {
		return nil, validationf("title cannot be empty")
	}

	var updated *models.Page
	err := s.inTx(func(tx *sql.Tx) error {
		txPages := s.pages.WithTx(tx)

		page, err := lockAndFind(txPages, pageID)
		if err != nil {
			return err
		}

		if in.Title != nil {
			page.Title = *in.Title
		}
		if in.Content != nil {
			page.Content = *in.Content
		}
		if in.Summary != nil {
			page.Summary = *in.Summary
		}
		if in.Order != nil {
			page.Order = *in.Order
		}
		if in.MetaTitle != nil {
			page.MetaTitle = *in.MetaTitle
		}
		if in.MetaDescription != nil {
			page.MetaDescription = *in.MetaDescription
		}
		if in.MetaKeywords != nil {
			page.MetaKeywords = *in.MetaKeywords
		}
		page.UpdatedBy = &actor
		if err := txPages.Update(page); err != nil {
			return err
		}

		if comment == "" {
			comment = "Content updated"
		}
		if _, err := s.snapshotLocked(tx, page, actor, comment, nil); err != nil {
			return err
		}

		if page.CreatedBy != nil && *page.CreatedBy != actor {
			if err := s.notifyTx(tx, models.NotifyPageUpdated, page, *page.CreatedBy, &actor, nil); err != nil {
				return err
			}
		}

		updated = page
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("page updated", "page_id", pageID, "actor", actor)
	return updated, nil
}

// MovePage reparents a page. A nil newParent moves the page to the root.
// Moving a page under itself or one of its descendants fails with ErrCycle.
func (s *Service) MovePage(pageID uuid.UUID, newParent *uuid.UUID, actor uuid.UUID) (*models.Page, error) {
	var moved *models.Page
	err := s.inTx(func(tx *sql.Tx) error {
		txPages := s.pages.WithTx(tx)

		page, err := lockAndFind(txPages, pageID)
		if err != nil {
			return err
		}

		if newParent != nil {
			if *newParent == pageID {
				return ErrCycle
			}
			parent, err := txPages.FindByID(*newParent)
			if err != nil {
				return err
			}
			if parent == nil {
				return fmt.Errorf("parent page %s: %w", *newParent, ErrNotFound)
			}
			descendant, err := txPages.IsDescendant(pageID, *newParent)
			if err != nil {
				return err
			}
			if descendant {
				return ErrCycle
			}
		}

		page.ParentID = newParent
		page.UpdatedBy = &actor
		if err := txPages.Update(page); err != nil {
			return err
		}
		moved = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}

// DeletePage removes a page and, via database cascades, its field
// values, versions, revision requests, notifications, and redirects.
// Fails with ErrHasChildren while child pages exist.
func (s *Service) DeletePage(pageID uuid.UUID, actor uuid.UUID) error {
	err := s.inTx(func(tx *sql.Tx) error {
		txPages := s.pages.WithTx(tx)

		page, err := lockAndFind(txPages, pageID)
		if err != nil {
			return err
		}

		hasChildren, err := txPages.HasChildren(page.ID)
		if err != nil {
			return err
		}
		if hasChildren {
			return ErrHasChildren
		}

		return txPages.Delete(page.ID)
	})
	if err != nil {
		return err
	}

	slog.Info("page deleted", "page_id", pageID, "actor", actor)
	return nil
}

// ChangeSlug renames a page's slug and records a permanent redirect from
// the old path so existing links keep resolving.
func (s *Service) ChangeSlug(pageID uuid.UUID, newSlug string, actor uuid.UUID) (*models.Page, error) {
	cleaned := slug.Generate(newSlug)
	if cleaned == "" {
		return nil, validationf("slug %q is not valid", newSlug)
	}

	var updated *models.Page
	err := s.inTx(func(tx *sql.Tx) error {
		txPages := s.pages.WithTx(tx)
		txRedirects := s.redirects.WithTx(tx)

		page, err := lockAndFind(txPages, pageID)
		if err != nil {
			return err
		}
		if page.Slug == cleaned {
			updated = page
			return nil
		}

		inUse, err := txPages.SlugExists(cleaned, page.ID)
		if err != nil {
			return err
		}
		if inUse {
			return validationf("slug %q is already in use", cleaned)
		}

		oldPath := "/" + page.Slug
		page.Slug = cleaned
		page.UpdatedBy = &actor
		if err := txPages.Update(page); err != nil {
			return err
		}

		_, err = txRedirects.Create(&models.PageRedirect{
			PageID:       page.ID,
			OldPath:      oldPath,
			RedirectType: 301,
			IsActive:     true,
			CreatedBy:    &actor,
		})
		if err != nil {
			return err
		}

		updated = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SetStatus transitions a page to a new lifecycle status. A transition
// into published stamps published_at when unset; a transition into
// scheduled with no scheduled time defaults it to 24 hours out rather
// than rejecting. Every transition that actually changes the status is
// snapshotted and the page's creator is notified.
func (s *Service) SetStatus(pageID uuid.UUID, newStatus models.PageStatus, actor uuid.UUID, comment string) (*models.Page, error) {
	if !newStatus.Valid() {
		return nil, validationf("unknown status %q", newStatus)
	}
	return s.setStatus(pageID, newStatus, nil, actor, comment)
}

// Schedule moves a page into the scheduled status with an explicit
// publication time, which must be in the future.
func (s *Service) Schedule(pageID uuid.UUID, at time.Time, actor uuid.UUID, comment string) (*models.Page, error) {
	if !at.After(time.Now()) {
		return nil, validationf("scheduled time must be in the future")
	}
	return s.setStatus(pageID, models.PageStatusScheduled, &at, actor, comment)
}

func (s *Service) setStatus(pageID uuid.UUID, newStatus models.PageStatus, scheduledAt *time.Time, actor uuid.UUID, comment string) (*models.Page, error) {
	var updated *models.Page
	err := s.inTx(func(tx *sql.Tx) error {
		txPages := s.pages.WithTx(tx)

		page, err := lockAndFind(txPages, pageID)
		if err != nil {
			return err
		}
		if scheduledAt != nil {
			page.ScheduledAt = scheduledAt
		}
		if page.Status == newStatus && scheduledAt == nil {
			updated = page
			return nil
		}

		now := time.Now()
		switch newStatus {
		case models.PageStatusPublished:
			if page.PublishedAt == nil {
				page.PublishedAt = &now
			}
			page.PublishedBy = &actor
		case models.PageStatusScheduled:
			if page.ScheduledAt == nil {
				// No scheduled time was given; default to tomorrow
				// instead of rejecting the transition.
				fallback := now.Add(24 * time.Hour)
				page.ScheduledAt = &fallback
			}
		}

		page.Status = newStatus
		page.UpdatedBy = &actor
		if err := txPages.Update(page); err != nil {
			return err
		}

		if comment == "" {
			comment = fmt.Sprintf("Status changed to %s", newStatus)
		}
		if _, err := s.snapshotLocked(tx, page, actor, comment, nil); err != nil {
			return err
		}

		if page.CreatedBy != nil && *page.CreatedBy != actor {
			if err := s.notifyTx(tx, statusNotification(newStatus), page, *page.CreatedBy, &actor, nil); err != nil {
				return err
			}
		}

		updated = page
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("page status changed", "page_id", pageID, "status", newStatus, "actor", actor)
	return updated, nil
}

// statusNotification maps a status transition to the notification type
// sent to the page's creator.
func statusNotification(status models.PageStatus) models.NotificationType {
	switch status {
	case models.PageStatusPublished:
		return models.NotifyPagePublished
	case models.PageStatusArchived:
		return models.NotifyPageArchived
	default:
		return models.NotifyPageUpdated
	}
}

// lockAndFind takes the page row lock and loads the page, translating a
// missing page into ErrNotFound.
func lockAndFind(txPages *store.PageStore, id uuid.UUID) (*models.Page, error) {
	found, err := txPages.LockForUpdate(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("page %s: %w", id, ErrNotFound)
	}
	return txPages.FindByID(id)
}
