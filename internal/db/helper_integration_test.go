package db

import (
	"context"
	"testing"

	"github.com/go-pg/pg/v10"
)

func withTx(t *testing.T) (*pg.Tx, context.Context, *Repository) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	repo := New(tx)
	return tx, ctx, repo
}

func intPtr(v int) *int {
	return &v
}

func hasTagID(tagIDs []int, want int) bool {
	for _, id := range tagIDs {
		if id == want {
			return true
		}
	}
	return false
}

func assertPostRowBasic(t *testing.T, post *Post) {
	t.Helper()
	if post.ID == 0 {
		t.Error("expected post ID to be set")
	}
	if post.Title == "" {
		t.Error("expected post title to be set")
	}
	if post.Slug == "" {
		t.Error("expected post slug to be set")
	}
	if post.StatusID != StatusPublished {
		t.Errorf("expected only published posts, got statusId %d for post %d", post.StatusID, post.ID)
	}
	if post.PublishedAt.IsZero() {
		t.Errorf("expected publishedAt to be set for post %d", post.ID)
	}
}

func assertPostsSortedByPublishedAt(t *testing.T, posts []Post) {
	t.Helper()
	for i := 1; i < len(posts); i++ {
		if posts[i].PublishedAt.After(posts[i-1].PublishedAt) {
			t.Errorf("posts not sorted by publishedAt DESC: %q before %q",
				posts[i-1].Slug, posts[i].Slug)
		}
	}
}
