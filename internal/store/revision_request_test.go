package store

import (
	"testing"

	"pagewright/internal/models"
)

func TestRevisionRequestComplete(t *testing.T) {
	db := testDB(t)
	s := NewRevisionRequestStore(db)
	editor := testUser(t, db, false)
	reviewer := testUser(t, db, true)
	tpl := testTemplate(t, db)
	page := testPage(t, db, tpl, editor)

	request, err := s.Create(&models.PageRevisionRequest{
		PageID:      page.ID,
		RequestedBy: editor.ID,
		Comment:     "please review",
		Status:      models.RevisionPending,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !request.IsOpen() {
		t.Error("expected new request to be open")
	}

	ok, err := s.Complete(request.ID, models.RevisionApproved, reviewer.ID, "looks good")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !ok {
		t.Fatal("expected first completion to succeed")
	}

	completed, err := s.FindByID(request.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if completed.Status != models.RevisionApproved {
		t.Errorf("status: got %q, want approved", completed.Status)
	}
	if completed.ReviewerID == nil || *completed.ReviewerID != reviewer.ID {
		t.Error("expected reviewer to be recorded")
	}
	if completed.CompletedAt == nil {
		t.Error("expected completed_at to be stamped")
	}

	// Completed tickets are terminal: a second completion is a no-op.
	ok, err = s.Complete(request.ID, models.RevisionRejected, reviewer.ID, "changed my mind")
	if err != nil {
		t.Fatalf("second Complete: %v", err)
	}
	if ok {
		t.Error("expected second completion to report false")
	}

	after, _ := s.FindByID(request.ID)
	if after.Status != models.RevisionApproved {
		t.Errorf("status after second completion: got %q, want approved", after.Status)
	}
	if after.ReviewerComment != "looks good" {
		t.Errorf("reviewer comment: got %q, want original", after.ReviewerComment)
	}
}

func TestRevisionRequestListPending(t *testing.T) {
	db := testDB(t)
	s := NewRevisionRequestStore(db)
	editor := testUser(t, db, false)
	reviewer := testUser(t, db, true)
	tpl := testTemplate(t, db)
	page := testPage(t, db, tpl, editor)

	first, err := s.Create(&models.PageRevisionRequest{
		PageID: page.ID, RequestedBy: editor.ID, Status: models.RevisionPending,
	})
	if err != nil {
		t.Fatalf("Create first: %v", err)
	}
	second, err := s.Create(&models.PageRevisionRequest{
		PageID: page.ID, RequestedBy: editor.ID, Status: models.RevisionPending,
	})
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}

	if _, err := s.Complete(first.ID, models.RevisionRejected, reviewer.ID, ""); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	pending, err := s.ListPending()
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	for _, r := range pending {
		if r.ID == first.ID {
			t.Error("completed request still listed as pending")
		}
	}
	found := false
	for _, r := range pending {
		if r.ID == second.ID {
			found = true
		}
	}
	if !found {
		t.Error("open request missing from pending list")
	}
}
