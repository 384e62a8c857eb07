package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	tests := []struct {
		name  string
		typ   NotificationType
		title string
		actor string
		want  string
	}{
		{
			name:  "page published",
			typ:   NotifyPagePublished,
			title: "About Us",
			actor: "Alex",
			want:  `Page "About Us" was published by Alex`,
		},
		{
			name:  "revision requested",
			typ:   NotifyRevisionRequested,
			title: "Pricing",
			actor: "Sam",
			want:  `Review requested for page "Pricing" by Sam`,
		},
		{
			name:  "revision rejected",
			typ:   NotifyRevisionRejected,
			title: "Pricing",
			actor: "Sam",
			want:  `Review of page "Pricing" was rejected by Sam`,
		},
		{
			name:  "empty actor falls back to System",
			typ:   NotifyPageArchived,
			title: "Old News",
			actor: "",
			want:  `Page "Old News" was archived by System`,
		},
		{
			name:  "unknown type yields empty message",
			typ:   NotificationType("smoke_signal"),
			title: "About",
			actor: "Alex",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildMessage(tt.typ, tt.title, tt.actor))
		})
	}
}

// Every declared notification type must have a message template; a
// missing entry would silently produce empty notifications.
func TestAllTypesHaveTemplates(t *testing.T) {
	types := []NotificationType{
		NotifyPageCreated, NotifyPageUpdated, NotifyPagePublished,
		NotifyPageArchived, NotifyPageDeleted, NotifyRevisionRequested,
		NotifyRevisionApproved, NotifyRevisionRejected, NotifyCommentAdded,
	}
	for _, typ := range types {
		assert.NotEmpty(t, BuildMessage(typ, "T", "A"), "type %q", typ)
	}
}
