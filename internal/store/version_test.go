package store

import (
	"testing"

	"pagewright/internal/models"
)

func TestVersionStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewVersionStore(db)
	author := testUser(t, db, false)
	tpl := testTemplate(t, db)
	page := testPage(t, db, tpl, author)

	created, err := s.Create(&models.PageVersion{
		PageID:        page.ID,
		VersionNumber: 1,
		Title:         page.Title,
		Status:        models.PageStatusDraft,
		CustomFields:  map[string]string{"hero.headline": "Welcome"},
		Comment:       "initial",
		CreatedBy:     &author.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.VersionNumber != 1 {
		t.Errorf("version number: got %d, want 1", created.VersionNumber)
	}

	found, err := s.FindByNumber(page.ID, 1)
	if err != nil {
		t.Fatalf("FindByNumber: %v", err)
	}
	if found == nil {
		t.Fatal("expected version, got nil")
	}
	if found.CustomFields["hero.headline"] != "Welcome" {
		t.Errorf("custom fields: got %v", found.CustomFields)
	}

	missing, err := s.FindByNumber(page.ID, 99)
	if err != nil {
		t.Fatalf("FindByNumber missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown version number")
	}
}

func TestVersionStoreMaxVersionNumber(t *testing.T) {
	db := testDB(t)
	s := NewVersionStore(db)
	author := testUser(t, db, false)
	tpl := testTemplate(t, db)
	page := testPage(t, db, tpl, author)

	max, err := s.MaxVersionNumber(page.ID)
	if err != nil {
		t.Fatalf("MaxVersionNumber empty: %v", err)
	}
	if max != 0 {
		t.Errorf("max for unversioned page: got %d, want 0", max)
	}

	for n := 1; n <= 3; n++ {
		_, err := s.Create(&models.PageVersion{
			PageID: page.ID, VersionNumber: n,
			Title: page.Title, Status: models.PageStatusDraft,
		})
		if err != nil {
			t.Fatalf("Create v%d: %v", n, err)
		}
	}

	max, err = s.MaxVersionNumber(page.ID)
	if err != nil {
		t.Fatalf("MaxVersionNumber: %v", err)
	}
	if max != 3 {
		t.Errorf("max: got %d, want 3", max)
	}
}

func TestVersionStoreDuplicateNumberRejected(t *testing.T) {
	db := testDB(t)
	s := NewVersionStore(db)
	author := testUser(t, db, false)
	tpl := testTemplate(t, db)
	page := testPage(t, db, tpl, author)

	v := &models.PageVersion{
		PageID: page.ID, VersionNumber: 1,
		Title: page.Title, Status: models.PageStatusDraft,
	}
	if _, err := s.Create(v); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create(v); err == nil {
		t.Error("expected unique constraint violation for duplicate version number")
	}
}

func TestVersionStoreListNewestFirst(t *testing.T) {
	db := testDB(t)
	s := NewVersionStore(db)
	author := testUser(t, db, false)
	tpl := testTemplate(t, db)
	page := testPage(t, db, tpl, author)

	for n := 1; n <= 3; n++ {
		_, err := s.Create(&models.PageVersion{
			PageID: page.ID, VersionNumber: n,
			Title: page.Title, Status: models.PageStatusDraft,
		})
		if err != nil {
			t.Fatalf("Create v%d: %v", n, err)
		}
	}

	versions, err := s.ListByPage(page.ID)
	if err != nil {
		t.Fatalf("ListByPage: %v", err)
	}
	if len(versions) != 3 {
		t.Fatalf("got %d versions, want 3", len(versions))
	}
	for i, want := range []int{3, 2, 1} {
		if versions[i].VersionNumber != want {
			t.Errorf("position %d: got v%d, want v%d", i, versions[i].VersionNumber, want)
		}
	}
}
