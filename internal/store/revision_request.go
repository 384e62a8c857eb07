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

// revisionRequestColumns lists all columns for page_revision_requests SELECTs.
const revisionRequestColumns = `id, page_id, requested_by, reviewer_id, comment,
	reviewer_comment, status, version_id, requested_at, updated_at, completed_at`

// RevisionRequestStore provides access to revision workflow tickets.
// Completed tickets are retained forever for audit.
type RevisionRequestStore struct {
	db DBTX
}

// NewRevisionRequestStore creates a new RevisionRequestStore backed by the
// given database.
func NewRevisionRequestStore(db *sql.DB) *RevisionRequestStore {
	return &RevisionRequestStore{db: db}
}

// WithTx returns a copy of the store bound to the given transaction.
func (s *RevisionRequestStore) WithTx(tx *sql.Tx) *RevisionRequestStore {
	return &RevisionRequestStore{db: tx}
}

func scanRevisionRequest(sc scanner) (*models.PageRevisionRequest, error) {
	var r models.PageRevisionRequest
	err := sc.Scan(
		&r.ID, &r.PageID, &r.RequestedBy, &r.ReviewerID, &r.Comment,
		&r.ReviewerComment, &r.Status, &r.VersionID, &r.RequestedAt,
		&r.UpdatedAt, &r.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserts a new pending revision request and returns it.
func (s *RevisionRequestStore) Create(r *models.PageRevisionRequest) (*models.PageRevisionRequest, error) {
	row := s.db.QueryRow(`
		INSERT INTO page_revision_requests (page_id, requested_by, comment, status, version_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+revisionRequestColumns,
		r.PageID, r.RequestedBy, r.Comment, r.Status, r.VersionID,
	)
	created, err := scanRevisionRequest(row)
	if err != nil {
		return nil, fmt.Errorf("create revision request: %w", err)
	}
	return created, nil
}

// FindByID retrieves a revision request by ID. Returns nil if not found.
func (s *RevisionRequestStore) FindByID(id uuid.UUID) (*models.PageRevisionRequest, error) {
	row := s.db.QueryRow(`
		SELECT `+revisionRequestColumns+`
		FROM page_revision_requests
		WHERE id = $1
	`, id)
	r, err := scanRevisionRequest(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find revision request: %w", err)
	}
	return r, nil
}

// Complete transitions a pending request to approved or rejected,
// recording the reviewer and stamping completed_at. The WHERE status =
// 'pending' guard makes completion race-safe: the first reviewer wins and
// any later attempt reports false.
func (s *RevisionRequestStore) Complete(id uuid.UUID, status models.RevisionStatus, reviewer uuid.UUID, comment string) (bool, error) {
	result, err := s.db.Exec(`
		UPDATE page_revision_requests
		SET status = $2, reviewer_id = $3, reviewer_comment = $4,
		    completed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`, id, status, reviewer, comment)
	if err != nil {
		return false, fmt.Errorf("complete revision request: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("complete revision request rows: %w", err)
	}
	return n == 1, nil
}

// ListByPage returns all revision requests for a page, newest first.
func (s *RevisionRequestStore) ListByPage(pageID uuid.UUID) ([]*models.PageRevisionRequest, error) {
	rows, err := s.db.Query(`
		SELECT `+revisionRequestColumns+`
		FROM page_revision_requests
		WHERE page_id = $1
		ORDER BY requested_at DESC
	`, pageID)
	if err != nil {
		return nil, fmt.Errorf("list revision requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.PageRevisionRequest
	for rows.Next() {
		r, err := scanRevisionRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan revision request: %w", err)
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

// ListPending returns all open revision requests, oldest first, for
// reviewer work queues.
func (s *RevisionRequestStore) ListPending() ([]*models.PageRevisionRequest, error) {
	rows, err := s.db.Query(`
		SELECT ` + revisionRequestColumns + `
		FROM page_revision_requests
		WHERE status = 'pending'
		ORDER BY requested_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list pending revision requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.PageRevisionRequest
	for rows.Next() {
		r, err := scanRevisionRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan revision request: %w", err)
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}
