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

// userColumns lists all columns for users SELECTs.
const userColumns = `id, email, password_hash, display_name, role,
	is_staff, is_active, can_publish, created_at, updated_at`

// UserStore provides access to user data in PostgreSQL.
type UserStore struct {
	db DBTX
}

// NewUserStore creates a new UserStore backed by the given database.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// WithTx returns a copy of the store bound to the given transaction.
func (s *UserStore) WithTx(tx *sql.Tx) *UserStore {
	return &UserStore{db: tx}
}

func scanUser(sc scanner) (*models.User, error) {
	var u models.User
	err := sc.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.Role,
		&u.IsStaff, &u.IsActive, &u.CanPublish, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and returns it with the generated ID.
func (s *UserStore) Create(u *models.User) (*models.User, error) {
	row := s.db.QueryRow(`
		INSERT INTO users (email, password_hash, display_name, role, is_staff, is_active, can_publish)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+userColumns,
		u.Email, u.PasswordHash, u.DisplayName, u.Role, u.IsStaff, u.IsActive, u.CanPublish,
	)
	created, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// FindByID retrieves a user by ID. Returns nil if not found.
func (s *UserStore) FindByID(id uuid.UUID) (*models.User, error) {
	row := s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// FindByEmail retrieves a user by email. Returns nil if not found.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	row := s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// ListReviewers returns all active staff users holding the publish
// permission, excluding the given user. These are the recipients of
// revision-request notifications.
func (s *UserStore) ListReviewers(exclude uuid.UUID) ([]*models.User, error) {
	rows, err := s.db.Query(`
		SELECT `+userColumns+`
		FROM users
		WHERE is_staff AND is_active AND can_publish AND id <> $1
		ORDER BY email
	`, exclude)
	if err != nil {
		return nil, fmt.Errorf("list reviewers: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
