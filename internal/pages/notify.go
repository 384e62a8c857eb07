// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pages

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"pagewright/internal/models"
)

// notifyTx persists a notification inside the caller's transaction.
// The message is rendered from the type's template with the page title
// and the actor's display name; a nil actor renders as "System".
// Duplicate notifications to the same user for the same event are
// allowed; there is no dedup.
func (s *Service) notifyTx(tx *sql.Tx, t models.NotificationType, page *models.Page, recipient uuid.UUID, actor *uuid.UUID, extra map[string]any) error {
	txUsers := s.users.WithTx(tx)
	txNotifications := s.notifications.WithTx(tx)

	actorName := ""
	if actor != nil {
		u, err := txUsers.FindByID(*actor)
		if err != nil {
			return err
		}
		if u != nil {
			actorName = u.Name()
		}
	}

	_, err := txNotifications.Create(&models.PageNotification{
		Type:      t,
		UserID:    recipient,
		PageID:    page.ID,
		ActorID:   actor,
		Message:   models.BuildMessage(t, page.Title, actorName),
		ExtraData: extra,
	})
	return err
}

// Notify persists a standalone notification outside any workflow
// transition, e.g. a comment-added event raised by a collaborator.
func (s *Service) Notify(t models.NotificationType, pageID, recipient uuid.UUID, actor *uuid.UUID, extra map[string]any) (*models.PageNotification, error) {
	page, err := s.pages.FindByID(pageID)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("page %s: %w", pageID, ErrNotFound)
	}

	actorName := ""
	if actor != nil {
		u, err := s.users.FindByID(*actor)
		if err != nil {
			return nil, err
		}
		if u != nil {
			actorName = u.Name()
		}
	}

	return s.notifications.Create(&models.PageNotification{
		Type:      t,
		UserID:    recipient,
		PageID:    pageID,
		ActorID:   actor,
		Message:   models.BuildMessage(t, page.Title, actorName),
		ExtraData: extra,
	})
}

// MarkNotificationRead marks a notification read. Marking an
// already-read notification is a no-op: read_at keeps its original
// stamp.
func (s *Service) MarkNotificationRead(id uuid.UUID) (*models.PageNotification, error) {
	n, err := s.notifications.FindByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("notification %s: %w", id, ErrNotFound)
	}
	return s.notifications.MarkRead(id)
}

// Notifications returns a user's notifications, newest first.
func (s *Service) Notifications(userID uuid.UUID, limit int) ([]*models.PageNotification, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.notifications.ListByUser(userID, limit)
}

// UnreadCount returns how many unread notifications a user has.
func (s *Service) UnreadCount(userID uuid.UUID) (int, error) {
	return s.notifications.UnreadCount(userID)
}
