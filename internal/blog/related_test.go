package blog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/blog-backend/internal/db"
)

func postWithTags(id int, tagIDs ...int) Post {
	return Post{Post: db.Post{
		ID:          id,
		Title:       "post",
		Slug:        "post",
		PublishedAt: time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC),
		TagIDs:      tagIDs,
		StatusID:    db.StatusPublished,
	}}
}

func postIDs(posts PostList) []int {
	ids := make([]int, 0, len(posts))
	for i := range posts {
		ids = append(ids, posts[i].ID)
	}
	return ids
}

func TestRankBySharedTags(t *testing.T) {
	tests := []struct {
		name       string
		tagIDs     []int
		candidates PostList
		limit      int
		wantIDs    []int
	}{
		{
			name:   "MoreSharedTagsRankHigher",
			tagIDs: []int{1, 2, 3},
			candidates: PostList{
				postWithTags(10, 1),
				postWithTags(11, 1, 2, 3),
				postWithTags(12, 2, 3),
			},
			limit:   4,
			wantIDs: []int{11, 12, 10},
		},
		{
			name:   "NoOverlapIsDropped",
			tagIDs: []int{1},
			candidates: PostList{
				postWithTags(10, 1),
				postWithTags(11, 7, 8),
			},
			limit:   4,
			wantIDs: []int{10},
		},
		{
			name:   "TiesKeepIncomingOrder",
			tagIDs: []int{1, 2},
			candidates: PostList{
				postWithTags(10, 1),
				postWithTags(11, 2),
				postWithTags(12, 1),
			},
			limit:   4,
			wantIDs: []int{10, 11, 12},
		},
		{
			name:   "LimitTruncatesTail",
			tagIDs: []int{1, 2, 3},
			candidates: PostList{
				postWithTags(10, 1),
				postWithTags(11, 1, 2),
				postWithTags(12, 1, 2, 3),
				postWithTags(13, 2),
			},
			limit:   2,
			wantIDs: []int{12, 11},
		},
		{
			name:       "NoCandidates",
			tagIDs:     []int{1},
			candidates: PostList{},
			limit:      4,
			wantIDs:    []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := rankBySharedTags(tt.tagIDs, tt.candidates, tt.limit)
			assert.Equal(t, tt.wantIDs, postIDs(ranked))
		})
	}
}

func TestManagerSimilarPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("PostWithoutTagsHasNoSuggestions", func(t *testing.T) {
		store := &mockStore{
			publishedPostsByTagIDs: func(ctx context.Context, tagIDs []int, excludeID int) ([]db.Post, error) {
				t.Fatal("store must not be queried for a post without tags")
				return nil, nil
			},
		}
		manager := NewManager(store, &mockDispatcher{}, testBaseURL)

		source := postWithTags(1)
		posts, err := manager.SimilarPosts(ctx, &source, 0)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("OnlyPostsSharingTagsComeBack", func(t *testing.T) {
		var gotTagIDs []int
		var gotExcludeID int
		store := &mockStore{
			publishedPostsByTagIDs: func(ctx context.Context, tagIDs []int, excludeID int) ([]db.Post, error) {
				gotTagIDs, gotExcludeID = tagIDs, excludeID
				return []db.Post{
					postWithTags(11, 1, 2).Post,
					postWithTags(12, 2).Post,
				}, nil
			},
			tagsByIDs: func(ctx context.Context, tagIDs []int) ([]db.Tag, error) {
				return []db.Tag{
					{ID: 1, Title: "go", Slug: "go"},
					{ID: 2, Title: "databases", Slug: "databases"},
				}, nil
			},
		}
		manager := NewManager(store, &mockDispatcher{}, testBaseURL)

		source := postWithTags(10, 1, 2)
		posts, err := manager.SimilarPosts(ctx, &source, 0)
		require.NoError(t, err)

		assert.Equal(t, []int{1, 2}, gotTagIDs)
		assert.Equal(t, 10, gotExcludeID)
		assert.Equal(t, []int{11, 12}, postIDs(posts))
		require.Len(t, posts[0].Tags, 2)
		assert.Equal(t, "go", posts[0].Tags[0].Title)
	})
}
