// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"pagewright/internal/models"
)

// notificationColumns lists all columns for page_notifications SELECTs.
const notificationColumns = `id, notification_type, user_id, page_id, actor_id,
	message, is_read, read_at, extra_data, created_at`

// NotificationStore provides access to persisted per-user notifications.
type NotificationStore struct {
	db DBTX
}

// NewNotificationStore creates a new NotificationStore backed by the given database.
func NewNotificationStore(db *sql.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

// WithTx returns a copy of the store bound to the given transaction.
func (s *NotificationStore) WithTx(tx *sql.Tx) *NotificationStore {
	return &NotificationStore{db: tx}
}

func scanNotification(sc scanner) (*models.PageNotification, error) {
	var n models.PageNotification
	var extra []byte
	err := sc.Scan(
		&n.ID, &n.Type, &n.UserID, &n.PageID, &n.ActorID,
		&n.Message, &n.IsRead, &n.ReadAt, &extra, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(extra) > 0 {
		if err := json.Unmarshal(extra, &n.ExtraData); err != nil {
			return nil, fmt.Errorf("decode extra data: %w", err)
		}
	}
	return &n, nil
}

// Create inserts a new notification and returns it with the generated ID.
// Duplicate notifications to the same user for the same event are allowed.
func (s *NotificationStore) Create(n *models.PageNotification) (*models.PageNotification, error) {
	var extra any
	if n.ExtraData != nil {
		encoded, err := json.Marshal(n.ExtraData)
		if err != nil {
			return nil, fmt.Errorf("encode extra data: %w", err)
		}
		extra = encoded
	}

	row := s.db.QueryRow(`
		INSERT INTO page_notifications (notification_type, user_id, page_id, actor_id, message, extra_data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+notificationColumns,
		n.Type, n.UserID, n.PageID, n.ActorID, n.Message, extra,
	)
	created, err := scanNotification(row)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return created, nil
}

// FindByID retrieves a notification by ID. Returns nil if not found.
func (s *NotificationStore) FindByID(id uuid.UUID) (*models.PageNotification, error) {
	row := s.db.QueryRow(`SELECT `+notificationColumns+` FROM page_notifications WHERE id = $1`, id)
	n, err := scanNotification(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find notification: %w", err)
	}
	return n, nil
}

// MarkRead stamps read_at the first time a notification is read.
// The NOT is_read guard makes repeated calls no-ops: read_at keeps its
// original value. Returns the current row state.
func (s *NotificationStore) MarkRead(id uuid.UUID) (*models.PageNotification, error) {
	_, err := s.db.Exec(`
		UPDATE page_notifications
		SET is_read = TRUE, read_at = NOW()
		WHERE id = $1 AND NOT is_read
	`, id)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return s.FindByID(id)
}

// ListByUser returns a user's notifications, newest first, up to limit.
func (s *NotificationStore) ListByUser(userID uuid.UUID, limit int) ([]*models.PageNotification, error) {
	rows, err := s.db.Query(`
		SELECT `+notificationColumns+`
		FROM page_notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.PageNotification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// UnreadCount returns the number of unread notifications for a user.
func (s *NotificationStore) UnreadCount(userID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM page_notifications WHERE user_id = $1 AND NOT is_read`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unread count: %w", err)
	}
	return count, nil
}
