// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// RevisionStatus is the state of a revision request ticket.
// Pending tickets may move to approved or rejected; both are terminal.
type RevisionStatus string

const (
	RevisionPending    RevisionStatus = "pending"
	RevisionInProgress RevisionStatus = "in_progress"
	RevisionApproved   RevisionStatus = "approved"
	RevisionRejected   RevisionStatus = "rejected"
)

// PageRevisionRequest is a workflow ticket gating publication behind
// reviewer approval. Completed tickets are retained for audit and never
// reopened; re-requesting creates a new ticket.
type PageRevisionRequest struct {
	ID              uuid.UUID      `json:"id"`
	PageID          uuid.UUID      `json:"page_id"`
	RequestedBy     uuid.UUID      `json:"requested_by"`
	ReviewerID      *uuid.UUID     `json:"reviewer,omitempty"`
	Comment         string         `json:"comment"`
	ReviewerComment string         `json:"reviewer_comment"`
	Status          RevisionStatus `json:"status"`
	VersionID       *uuid.UUID     `json:"version_id,omitempty"`
	RequestedAt     time.Time      `json:"requested_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
}

// IsOpen reports whether the ticket can still be approved or rejected.
func (r *PageRevisionRequest) IsOpen() bool {
	return r.Status == RevisionPending
}
