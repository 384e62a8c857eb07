package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: an admin
// user who can publish, an editor who cannot, and a default page template
// with a small custom-field schema. No-op if users already exist.
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, is_staff, is_active, can_publish)
		VALUES ($1, $2, $3, $4, TRUE, TRUE, TRUE),
		       ($5, $2, $6, $7, TRUE, TRUE, FALSE)
	`, "admin@pagewright.local", string(hash), "Admin", "admin",
		"editor@pagewright.local", "Editor", "editor")
	if err != nil {
		return fmt.Errorf("seed insert users: %w", err)
	}

	// Default template with a minimal SEO field group.
	var templateID string
	err = db.QueryRow(`
		INSERT INTO templates (name, slug, description, layout, template_file)
		VALUES ('Default', 'default', 'Default page template', 'default', 'pages/default.html')
		RETURNING id
	`).Scan(&templateID)
	if err != nil {
		return fmt.Errorf("seed insert template: %w", err)
	}

	var groupID string
	err = db.QueryRow(`
		INSERT INTO field_groups (template_id, name, slug, description)
		VALUES ($1, 'Hero', 'hero', 'Hero section fields')
		RETURNING id
	`, templateID).Scan(&groupID)
	if err != nil {
		return fmt.Errorf("seed insert field group: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO field_definitions (group_id, name, slug, field_type, sort_order)
		VALUES ($1, 'Headline', 'headline', 'text', 0),
		       ($1, 'Subtitle', 'subtitle', 'textarea', 1),
		       ($1, 'Hero Image', 'hero-image', 'image', 2)
	`, groupID)
	if err != nil {
		return fmt.Errorf("seed insert field definitions: %w", err)
	}

	slog.Info("database seeded with default users and template",
		"admin", "admin@pagewright.local",
		"editor", "editor@pagewright.local",
	)

	return nil
}
