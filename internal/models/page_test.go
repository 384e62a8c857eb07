package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestIsPublished(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		page Page
		want bool
	}{
		{
			name: "published status",
			page: Page{Status: PageStatusPublished},
			want: true,
		},
		{
			name: "draft status",
			page: Page{Status: PageStatusDraft},
			want: false,
		},
		{
			name: "scheduled with past time counts as published",
			page: Page{Status: PageStatusScheduled, ScheduledAt: &past},
			want: true,
		},
		{
			name: "scheduled with future time is not yet published",
			page: Page{Status: PageStatusScheduled, ScheduledAt: &future},
			want: false,
		},
		{
			name: "scheduled without a time is not published",
			page: Page{Status: PageStatusScheduled},
			want: false,
		},
		{
			name: "archived is not published",
			page: Page{Status: PageStatusArchived},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.IsPublished(now))
		})
	}
}

func TestPageStatusValid(t *testing.T) {
	for _, s := range []PageStatus{PageStatusDraft, PageStatusReview, PageStatusScheduled, PageStatusPublished, PageStatusArchived} {
		assert.True(t, s.Valid(), "status %q", s)
	}
	assert.False(t, PageStatus("live").Valid())
	assert.False(t, PageStatus("").Valid())
}

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	h := string(hash)

	page := Page{Visibility: VisibilityPassword, PasswordHash: &h}
	assert.True(t, page.NeedsPassword())
	assert.True(t, page.CheckPassword("hunter2"))
	assert.False(t, page.CheckPassword("wrong"))

	open := Page{Visibility: VisibilityPublic}
	assert.False(t, open.NeedsPassword())
	assert.False(t, open.CheckPassword("anything"))
}

func TestEffectiveMetaTitle(t *testing.T) {
	page := Page{Title: "About Us"}
	assert.Equal(t, "About Us", page.EffectiveMetaTitle())

	page.MetaTitle = "About Us | Pagewright"
	assert.Equal(t, "About Us | Pagewright", page.EffectiveMetaTitle())
}
