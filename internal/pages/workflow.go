// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pages

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pagewright/internal/models"
)

// RequestReview puts a page into review and opens a pending revision
// request. Every active staff user with the publish permission, except
// the requester, receives a revision_requested notification.
//
// Re-requesting after a rejection always creates a brand-new ticket;
// completed tickets are never reopened.
func (s *Service) RequestReview(pageID, requestedBy uuid.UUID, comment string) (*models.PageRevisionRequest, error) {
	var request *models.PageRevisionRequest
	err := s.inTx(func(tx *sql.Tx) error {
		txPages := s.pages.WithTx(tx)
		txRevisions := s.revisions.WithTx(tx)
		txUsers := s.users.WithTx(tx)

		page, err := lockAndFind(txPages, pageID)
		if err != nil {
			return err
		}

		page.Status = models.PageStatusReview
		page.UpdatedBy = &requestedBy
		if err := txPages.Update(page); err != nil {
			return err
		}

		request, err = txRevisions.Create(&models.PageRevisionRequest{
			PageID:      pageID,
			RequestedBy: requestedBy,
			Comment:     comment,
			Status:      models.RevisionPending,
		})
		if err != nil {
			return err
		}

		reviewers, err := txUsers.ListReviewers(requestedBy)
		if err != nil {
			return err
		}
		for _, reviewer := range reviewers {
			err := s.notifyTx(tx, models.NotifyRevisionRequested, page, reviewer.ID, &requestedBy,
				map[string]any{"review_id": request.ID.String()})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("review requested", "page_id", pageID, "request_id", request.ID)
	return request, nil
}

// Approve completes a pending revision request, publishes the page, and
// notifies the requester. The completion is guarded on the pending
// status: a request already approved or rejected fails with
// ErrInvalidState and is left untouched.
func (s *Service) Approve(requestID, reviewerID uuid.UUID, comment string) (*models.PageRevisionRequest, error) {
	return s.completeRequest(requestID, reviewerID, comment, models.RevisionApproved)
}

// Reject completes a pending revision request without publishing; the
// page returns to draft. Like Approve, rejecting a non-pending request
// fails with ErrInvalidState.
func (s *Service) Reject(requestID, reviewerID uuid.UUID, comment string) (*models.PageRevisionRequest, error) {
	return s.completeRequest(requestID, reviewerID, comment, models.RevisionRejected)
}

func (s *Service) completeRequest(requestID, reviewerID uuid.UUID, comment string, outcome models.RevisionStatus) (*models.PageRevisionRequest, error) {
	var completed *models.PageRevisionRequest
	err := s.inTx(func(tx *sql.Tx) error {
		txPages := s.pages.WithTx(tx)
		txRevisions := s.revisions.WithTx(tx)

		request, err := txRevisions.FindByID(requestID)
		if err != nil {
			return err
		}
		if request == nil {
			return fmt.Errorf("revision request %s: %w", requestID, ErrNotFound)
		}

		ok, err := txRevisions.Complete(requestID, outcome, reviewerID, comment)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("revision request %s is %s: %w", requestID, request.Status, ErrInvalidState)
		}

		page, err := lockAndFind(txPages, request.PageID)
		if err != nil {
			return err
		}

		var notifyType models.NotificationType
		var versionComment string
		if outcome == models.RevisionApproved {
			now := time.Now()
			page.Status = models.PageStatusPublished
			page.PublishedAt = &now
			page.PublishedBy = &reviewerID
			notifyType = models.NotifyRevisionApproved
			versionComment = "Published via approved revision request"
		} else {
			page.Status = models.PageStatusDraft
			notifyType = models.NotifyRevisionRejected
			versionComment = "Returned to draft after rejected revision request"
		}
		page.UpdatedBy = &reviewerID
		if err := txPages.Update(page); err != nil {
			return err
		}

		if _, err := s.snapshotLocked(tx, page, reviewerID, versionComment, nil); err != nil {
			return err
		}

		err = s.notifyTx(tx, notifyType, page, request.RequestedBy, &reviewerID, nil)
		if err != nil {
			return err
		}

		completed, err = txRevisions.FindByID(requestID)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("revision request completed",
		"request_id", requestID,
		"outcome", outcome,
		"reviewer", reviewerID,
	)
	return completed, nil
}

// GetRevisionRequest retrieves a revision request by ID.
func (s *Service) GetRevisionRequest(id uuid.UUID) (*models.PageRevisionRequest, error) {
	request, err := s.revisions.FindByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("revision request %s: %w", id, ErrNotFound)
	}
	return request, nil
}

// ListRevisionRequests returns a page's revision requests, newest first.
func (s *Service) ListRevisionRequests(pageID uuid.UUID) ([]*models.PageRevisionRequest, error) {
	return s.revisions.ListByPage(pageID)
}

// PendingRevisionRequests returns all open requests, oldest first.
func (s *Service) PendingRevisionRequests() ([]*models.PageRevisionRequest, error) {
	return s.revisions.ListPending()
}
