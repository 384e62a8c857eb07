// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package pages implements the page versioning and revision workflow
// core: the page tree, custom field values, the append-only version log,
// the review/approve/reject state machine, and notification fan-out.
//
// Every mutating operation runs inside a single database transaction so
// the page mutation and its accompanying version and notification writes
// commit or roll back together. The acting user is always passed
// explicitly; nothing is inferred from ambient request state.
package pages

import (
	"database/sql"
	"fmt"

	"pagewright/internal/store"
)

// Service orchestrates the stores that make up the versioning core.
type Service struct {
	db *sql.DB

	pages         *store.PageStore
	templates     *store.TemplateStore
	fields        *store.FieldStore
	values        *store.FieldValueStore
	versions      *store.VersionStore
	revisions     *store.RevisionRequestStore
	notifications *store.NotificationStore
	redirects     *store.RedirectStore
	users         *store.UserStore
}

// NewService creates the versioning core service over the given pool.
func NewService(db *sql.DB) *Service {
	return &Service{
		db:            db,
		pages:         store.NewPageStore(db),
		templates:     store.NewTemplateStore(db),
		fields:        store.NewFieldStore(db),
		values:        store.NewFieldValueStore(db),
		versions:      store.NewVersionStore(db),
		revisions:     store.NewRevisionRequestStore(db),
		notifications: store.NewNotificationStore(db),
		redirects:     store.NewRedirectStore(db),
		users:         store.NewUserStore(db),
	}
}

// inTx runs fn inside a transaction, rolling back on error.
func (s *Service) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
