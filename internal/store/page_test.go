package store

import (
	"testing"

	"github.com/google/uuid"

	"pagewright/internal/models"
)

func TestPageStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewPageStore(db)
	author := testUser(t, db, false)
	tpl := testTemplate(t, db)

	page := testPage(t, db, tpl, author)

	if page.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if page.Status != models.PageStatusDraft {
		t.Errorf("status: got %q, want draft", page.Status)
	}

	found, err := s.FindByID(page.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected page, got nil")
	}
	if found.Slug != page.Slug {
		t.Errorf("slug: got %q, want %q", found.Slug, page.Slug)
	}

	bySlug, err := s.FindBySlug(page.Slug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if bySlug == nil || bySlug.ID != page.ID {
		t.Error("FindBySlug did not return the created page")
	}

	missing, err := s.FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestPageStoreSlugExists(t *testing.T) {
	db := testDB(t)
	s := NewPageStore(db)
	author := testUser(t, db, false)
	tpl := testTemplate(t, db)
	page := testPage(t, db, tpl, author)

	exists, err := s.SlugExists(page.Slug, uuid.Nil)
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if !exists {
		t.Error("expected slug to exist")
	}

	// The page itself is excluded when checking its own rename.
	exists, err = s.SlugExists(page.Slug, page.ID)
	if err != nil {
		t.Fatalf("SlugExists exclude: %v", err)
	}
	if exists {
		t.Error("expected slug free when its owner is excluded")
	}
}

func TestPageStoreTreeQueries(t *testing.T) {
	db := testDB(t)
	s := NewPageStore(db)
	author := testUser(t, db, false)
	tpl := testTemplate(t, db)

	root := testPage(t, db, tpl, author)
	child := testPage(t, db, tpl, author)
	grandchild := testPage(t, db, tpl, author)

	child.ParentID = &root.ID
	if err := s.Update(child); err != nil {
		t.Fatalf("update child: %v", err)
	}
	grandchild.ParentID = &child.ID
	if err := s.Update(grandchild); err != nil {
		t.Fatalf("update grandchild: %v", err)
	}
	// Deepest first so parent deletes don't hit the RESTRICT FK.
	t.Cleanup(func() {
		db.Exec("DELETE FROM pages WHERE id = $1", grandchild.ID)
		db.Exec("DELETE FROM pages WHERE id = $1", child.ID)
	})

	hasChildren, err := s.HasChildren(root.ID)
	if err != nil {
		t.Fatalf("HasChildren: %v", err)
	}
	if !hasChildren {
		t.Error("expected root to have children")
	}

	hasChildren, err = s.HasChildren(grandchild.ID)
	if err != nil {
		t.Fatalf("HasChildren leaf: %v", err)
	}
	if hasChildren {
		t.Error("expected leaf to have no children")
	}

	// grandchild lies in root's subtree; root does not lie in grandchild's.
	desc, err := s.IsDescendant(root.ID, grandchild.ID)
	if err != nil {
		t.Fatalf("IsDescendant: %v", err)
	}
	if !desc {
		t.Error("expected grandchild to be a descendant of root")
	}

	desc, err = s.IsDescendant(grandchild.ID, root.ID)
	if err != nil {
		t.Fatalf("IsDescendant reversed: %v", err)
	}
	if desc {
		t.Error("expected root not to be a descendant of grandchild")
	}

	children, err := s.ListChildren(root.ID)
	if err != nil {
		t.Fatalf("ListChildren: %v", err)
	}
	if len(children) != 1 || children[0].ID != child.ID {
		t.Errorf("ListChildren: got %d entries", len(children))
	}
}
