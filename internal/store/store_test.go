// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"pagewright/internal/database"
	"pagewright/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "pagewright")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "pagewright")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testUser inserts a user with a unique email and registers cleanup.
func testUser(t *testing.T, db *sql.DB, canPublish bool) *models.User {
	t.Helper()

	u, err := NewUserStore(db).Create(&models.User{
		Email:        "test-" + uuid.NewString()[:8] + "@pagewright.test",
		PasswordHash: "x",
		DisplayName:  "Test User",
		Role:         models.RoleEditor,
		IsStaff:      true,
		IsActive:     true,
		CanPublish:   canPublish,
	})
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM users WHERE id = $1", u.ID) })
	return u
}

// testTemplate inserts a template with a unique slug and registers cleanup.
func testTemplate(t *testing.T, db *sql.DB) *models.Template {
	t.Helper()

	tpl, err := NewTemplateStore(db).Create(&models.Template{
		Name:   "Test Template",
		Slug:   "test-tpl-" + uuid.NewString()[:8],
		Layout: models.LayoutDefault,
	})
	if err != nil {
		t.Fatalf("create test template: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM templates WHERE id = $1", tpl.ID) })
	return tpl
}

// testPage inserts a draft page and registers cleanup. Owned rows
// (versions, field values, requests, notifications) cascade on delete.
func testPage(t *testing.T, db *sql.DB, tpl *models.Template, author *models.User) *models.Page {
	t.Helper()

	p, err := NewPageStore(db).Create(&models.Page{
		Title:      "Test Page",
		Slug:       "test-page-" + uuid.NewString()[:8],
		TemplateID: tpl.ID,
		Status:     models.PageStatusDraft,
		Visibility: models.VisibilityPublic,
		CreatedBy:  &author.ID,
		UpdatedBy:  &author.ID,
	})
	if err != nil {
		t.Fatalf("create test page: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM pages WHERE id = $1", p.ID) })
	return p
}
