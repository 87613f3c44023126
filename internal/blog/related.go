package blog

import (
	"context"
	"fmt"
	"sort"
)

// SimilarPosts returns up to limit published posts ranked by how many tags
// they share with post, most shared first. Ties keep store order
// (publishedAt DESC). A post without tags has no similar posts; there is
// no popularity fallback.
func (m *Manager) SimilarPosts(ctx context.Context, post *Post, limit int) (PostList, error) {
	if limit <= 0 {
		limit = SimilarPostLimit
	}
	if len(post.TagIDs) == 0 {
		return PostList{}, nil
	}

	dbPosts, err := m.db.PublishedPostsByTagIDs(ctx, post.TagIDs, post.ID)
	if err != nil {
		return nil, fmt.Errorf("db get similar posts: %w", err)
	}

	ranked := rankBySharedTags(post.TagIDs, NewPostList(dbPosts), limit)

	return m.fillTags(ctx, ranked)
}

// rankBySharedTags orders candidates by the size of their tag overlap with
// tagIDs, descending. Candidates without overlap are dropped. The sort is
// stable, so equal scores keep the incoming order.
func rankBySharedTags(tagIDs []int, candidates PostList, limit int) PostList {
	want := make(map[int]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		want[id] = struct{}{}
	}

	scores := make(map[int]int, len(candidates))
	ranked := make(PostList, 0, len(candidates))
	for i := range candidates {
		shared := 0
		for _, id := range candidates[i].TagIDs {
			if _, ok := want[id]; ok {
				shared++
			}
		}
		if shared == 0 {
			continue
		}
		scores[candidates[i].ID] = shared
		ranked = append(ranked, candidates[i])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ID] > scores[ranked[j].ID]
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
