package store

import (
	"testing"
	"time"

	"pagewright/internal/models"
)

func TestNotificationMarkReadIdempotent(t *testing.T) {
	db := testDB(t)
	s := NewNotificationStore(db)
	user := testUser(t, db, false)
	tpl := testTemplate(t, db)
	page := testPage(t, db, tpl, user)

	n, err := s.Create(&models.PageNotification{
		Type:    models.NotifyPagePublished,
		UserID:  user.ID,
		PageID:  page.ID,
		Message: `Page "Test Page" was published by System`,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if n.IsRead {
		t.Error("expected new notification to be unread")
	}

	read, err := s.MarkRead(n.ID)
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if !read.IsRead || read.ReadAt == nil {
		t.Fatal("expected notification to be read with a stamp")
	}
	firstStamp := *read.ReadAt

	// Re-reading must not move the stamp.
	time.Sleep(10 * time.Millisecond)
	again, err := s.MarkRead(n.ID)
	if err != nil {
		t.Fatalf("second MarkRead: %v", err)
	}
	if !again.ReadAt.Equal(firstStamp) {
		t.Errorf("read_at moved on second MarkRead: %v -> %v", firstStamp, *again.ReadAt)
	}
}

func TestNotificationUnreadCount(t *testing.T) {
	db := testDB(t)
	s := NewNotificationStore(db)
	user := testUser(t, db, false)
	tpl := testTemplate(t, db)
	page := testPage(t, db, tpl, user)

	for i := 0; i < 3; i++ {
		_, err := s.Create(&models.PageNotification{
			Type:    models.NotifyPageUpdated,
			UserID:  user.ID,
			PageID:  page.ID,
			Message: "msg",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	count, err := s.UnreadCount(user.ID)
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 3 {
		t.Errorf("unread: got %d, want 3", count)
	}

	list, err := s.ListByUser(user.ID, 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("list: got %d, want 3", len(list))
	}

	if _, err := s.MarkRead(list[0].ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	count, _ = s.UnreadCount(user.ID)
	if count != 2 {
		t.Errorf("unread after MarkRead: got %d, want 2", count)
	}
}

func TestNotificationExtraData(t *testing.T) {
	db := testDB(t)
	s := NewNotificationStore(db)
	user := testUser(t, db, false)
	tpl := testTemplate(t, db)
	page := testPage(t, db, tpl, user)

	n, err := s.Create(&models.PageNotification{
		Type:      models.NotifyRevisionRequested,
		UserID:    user.ID,
		PageID:    page.ID,
		Message:   "msg",
		ExtraData: map[string]any{"review_id": "abc-123"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := s.FindByID(n.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.ExtraData["review_id"] != "abc-123" {
		t.Errorf("extra data: got %v", found.ExtraData)
	}
}
