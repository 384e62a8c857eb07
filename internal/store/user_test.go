package store

import (
	"testing"
)

func TestUserStoreFindByEmail(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	user := testUser(t, db, false)

	found, err := s.FindByEmail(user.Email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found == nil || found.ID != user.ID {
		t.Error("expected created user by email")
	}

	missing, err := s.FindByEmail("nobody@pagewright.test")
	if err != nil {
		t.Fatalf("FindByEmail missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown email")
	}
}

func TestUserStoreListReviewers(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	editor := testUser(t, db, false)
	reviewer := testUser(t, db, true)
	requester := testUser(t, db, true)

	reviewers, err := s.ListReviewers(requester.ID)
	if err != nil {
		t.Fatalf("ListReviewers: %v", err)
	}

	var sawReviewer, sawEditor, sawRequester bool
	for _, u := range reviewers {
		switch u.ID {
		case reviewer.ID:
			sawReviewer = true
		case editor.ID:
			sawEditor = true
		case requester.ID:
			sawRequester = true
		}
	}
	if !sawReviewer {
		t.Error("expected publish-capable staff user in reviewer list")
	}
	if sawEditor {
		t.Error("user without publish permission listed as reviewer")
	}
	if sawRequester {
		t.Error("requester must be excluded from their own reviewer fan-out")
	}
}
