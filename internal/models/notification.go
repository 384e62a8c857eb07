// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies which workflow event produced a notification.
type NotificationType string

const (
	NotifyPageCreated       NotificationType = "page_created"
	NotifyPageUpdated       NotificationType = "page_updated"
	NotifyPagePublished     NotificationType = "page_published"
	NotifyPageArchived      NotificationType = "page_archived"
	NotifyPageDeleted       NotificationType = "page_deleted"
	NotifyRevisionRequested NotificationType = "revision_requested"
	NotifyRevisionApproved  NotificationType = "revision_approved"
	NotifyRevisionRejected  NotificationType = "revision_rejected"
	NotifyCommentAdded      NotificationType = "comment_added"
)

// notificationTemplates maps each type to its message template.
// {title} and {actor} placeholders are filled in by BuildMessage.
var notificationTemplates = map[NotificationType]string{
	NotifyPageCreated:       `Page "{title}" was created by {actor}`,
	NotifyPageUpdated:       `Page "{title}" was updated by {actor}`,
	NotifyPagePublished:     `Page "{title}" was published by {actor}`,
	NotifyPageArchived:      `Page "{title}" was archived by {actor}`,
	NotifyPageDeleted:       `Page "{title}" was deleted by {actor}`,
	NotifyRevisionRequested: `Review requested for page "{title}" by {actor}`,
	NotifyRevisionApproved:  `Review of page "{title}" was approved by {actor}`,
	NotifyRevisionRejected:  `Review of page "{title}" was rejected by {actor}`,
	NotifyCommentAdded:      `New comment on page "{title}" by {actor}`,
}

// BuildMessage renders the notification message for the given type.
// An empty actor name falls back to "System" for events raised without a
// human actor. Unknown types yield an empty message.
func BuildMessage(t NotificationType, pageTitle, actorName string) string {
	tmpl, ok := notificationTemplates[t]
	if !ok {
		return ""
	}
	if actorName == "" {
		actorName = "System"
	}
	msg := strings.ReplaceAll(tmpl, "{title}", pageTitle)
	return strings.ReplaceAll(msg, "{actor}", actorName)
}

// PageNotification is a persisted per-user event record. Rows are created
// by workflow transitions and mutated only by marking them read.
type PageNotification struct {
	ID        uuid.UUID        `json:"id"`
	Type      NotificationType `json:"notification_type"`
	UserID    uuid.UUID        `json:"user_id"`
	PageID    uuid.UUID        `json:"page_id"`
	ActorID   *uuid.UUID       `json:"actor_id,omitempty"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
	ExtraData map[string]any   `json:"extra_data,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
