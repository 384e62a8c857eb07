// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pages

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"pagewright/internal/models"
)

// Snapshot records a new immutable version of the page: its content,
// SEO metadata, current status (or the override), and a flattened map of
// its custom field values keyed "<group-slug>.<field-slug>". The version
// number is allocated under the page row lock so concurrent snapshots of
// the same page serialize and numbers stay gapless and unique.
func (s *Service) Snapshot(pageID, actor uuid.UUID, comment string, statusOverride *models.PageStatus) (*models.PageVersion, error) {
	var version *models.PageVersion
	err := s.inTx(func(tx *sql.Tx) error {
		page, err := lockAndFind(s.pages.WithTx(tx), pageID)
		if err != nil {
			return err
		}
		version, err = s.snapshotLocked(tx, page, actor, comment, statusOverride)
		return err
	})
	if err != nil {
		return nil, err
	}
	return version, nil
}

// snapshotLocked creates the version row for an already-locked page.
// Callers must hold the page row lock within tx.
func (s *Service) snapshotLocked(tx *sql.Tx, page *models.Page, actor uuid.UUID, comment string, statusOverride *models.PageStatus) (*models.PageVersion, error) {
	txVersions := s.versions.WithTx(tx)
	txValues := s.values.WithTx(tx)

	max, err := txVersions.MaxVersionNumber(page.ID)
	if err != nil {
		return nil, err
	}

	details, err := txValues.ListByPage(page.ID)
	if err != nil {
		return nil, err
	}
	var fields map[string]string
	if len(details) > 0 {
		fields = make(map[string]string, len(details))
		for _, d := range details {
			key := d.GroupSlug + "." + d.Field.Slug
			if d.Field.Type.IsFileKind() && d.Value.FileURL != nil {
				fields[key] = *d.Value.FileURL
			} else {
				fields[key] = d.Value.Value
			}
		}
	}

	status := page.Status
	if statusOverride != nil {
		status = *statusOverride
	}

	version, err := txVersions.Create(&models.PageVersion{
		PageID:          page.ID,
		VersionNumber:   max + 1,
		Title:           page.Title,
		Content:         page.Content,
		Summary:         page.Summary,
		Status:          status,
		MetaTitle:       page.MetaTitle,
		MetaDescription: page.MetaDescription,
		MetaKeywords:    page.MetaKeywords,
		CustomFields:    fields,
		Comment:         comment,
		CreatedBy:       &actor,
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("page snapshot created",
		"page_id", page.ID,
		"version", version.VersionNumber,
	)
	return version, nil
}

// ListVersions returns a page's versions, newest first.
func (s *Service) ListVersions(pageID uuid.UUID) ([]*models.PageVersion, error) {
	page, err := s.pages.FindByID(pageID)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("page %s: %w", pageID, ErrNotFound)
	}
	return s.versions.ListByPage(pageID)
}

// GetVersion returns one version of a page by its number.
func (s *Service) GetVersion(pageID uuid.UUID, number int) (*models.PageVersion, error) {
	version, err := s.versions.FindByNumber(pageID, number)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, fmt.Errorf("page %s version %d: %w", pageID, number, ErrNotFound)
	}
	return version, nil
}

// RestoreResult reports the outcome of restoring a version. Dropped
// lists the snapshot's custom-field keys whose group or field no longer
// exists in the page's template schema; those entries were skipped.
type RestoreResult struct {
	Page    *models.Page        `json:"page"`
	Version *models.PageVersion `json:"version"`
	Dropped []string            `json:"dropped_fields,omitempty"`
}

// Restore copies a version's title, content, summary, and SEO metadata
// back onto the live page. When the version carries a custom-field map,
// all current field values are deleted and rebuilt from the map; entries
// that no longer resolve against the template's schema are skipped and
// reported in the result.
//
// Restore overwrites the page's current field values. Callers wanting
// the pre-restore state recoverable must Snapshot first.
func (s *Service) Restore(pageID uuid.UUID, versionNumber int, actor uuid.UUID) (*RestoreResult, error) {
	var result *RestoreResult
	err := s.inTx(func(tx *sql.Tx) error {
		txPages := s.pages.WithTx(tx)
		txFields := s.fields.WithTx(tx)
		txValues := s.values.WithTx(tx)
		txVersions := s.versions.WithTx(tx)

		page, err := lockAndFind(txPages, pageID)
		if err != nil {
			return err
		}
		version, err := txVersions.FindByNumber(pageID, versionNumber)
		if err != nil {
			return err
		}
		if version == nil {
			return fmt.Errorf("page %s version %d: %w", pageID, versionNumber, ErrNotFound)
		}

		page.Title = version.Title
		page.Content = version.Content
		page.Summary = version.Summary
		page.MetaTitle = version.MetaTitle
		page.MetaDescription = version.MetaDescription
		page.MetaKeywords = version.MetaKeywords

		var dropped []string
		if version.CustomFields != nil {
			if err := txValues.DeleteByPage(page.ID); err != nil {
				return err
			}
			for key, value := range version.CustomFields {
				groupSlug, fieldSlug, ok := strings.Cut(key, ".")
				if !ok {
					dropped = append(dropped, key)
					continue
				}
				group, err := txFields.FindGroupBySlug(page.TemplateID, groupSlug)
				if err != nil {
					return err
				}
				if group == nil {
					dropped = append(dropped, key)
					continue
				}
				field, err := txFields.FindDefinitionBySlug(group.ID, fieldSlug)
				if err != nil {
					return err
				}
				if field == nil {
					dropped = append(dropped, key)
					continue
				}
				_, err = txValues.Upsert(&models.PageFieldValue{
					PageID:  page.ID,
					FieldID: field.ID,
					Value:   value,
				})
				if err != nil {
					return err
				}
			}
			sort.Strings(dropped)
		}

		// The restore is attributed to the invoking user.
		page.UpdatedBy = &actor
		if err := txPages.Update(page); err != nil {
			return err
		}

		result = &RestoreResult{Page: page, Version: version, Dropped: dropped}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("page version restored",
		"page_id", pageID,
		"version", versionNumber,
		"dropped_fields", len(result.Dropped),
	)
	return result, nil
}
