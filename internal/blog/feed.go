package blog

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/blog-backend/internal/markdown"
)

// FeedItems projects the newest published posts for the RSS feed. The
// summary is the rendered body truncated to SummaryWordLimit words.
func (m *Manager) FeedItems(ctx context.Context) ([]FeedItem, error) {
	dbPosts, err := m.db.PublishedPosts(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}
	if len(dbPosts) > FeedItemLimit {
		dbPosts = dbPosts[:FeedItemLimit]
	}

	items := make([]FeedItem, 0, len(dbPosts))
	for i := range dbPosts {
		post := NewPost(&dbPosts[i])
		rendered, err := markdown.Render(post.Body)
		if err != nil {
			return nil, fmt.Errorf("render post %d: %w", post.ID, err)
		}
		items = append(items, FeedItem{
			Title:       post.Title,
			URL:         m.PostURL(&post),
			Summary:     markdown.TruncateWords(rendered, SummaryWordLimit),
			PublishedAt: post.PublishedAt,
		})
	}

	return items, nil
}

// SitemapEntries projects every published post, newest first, with its
// last modification instant.
func (m *Manager) SitemapEntries(ctx context.Context) ([]SitemapEntry, error) {
	dbPosts, err := m.db.PublishedPosts(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	entries := make([]SitemapEntry, 0, len(dbPosts))
	for i := range dbPosts {
		post := NewPost(&dbPosts[i])
		lastMod := post.PublishedAt
		if post.UpdatedAt != nil {
			lastMod = *post.UpdatedAt
		}
		entries = append(entries, SitemapEntry{
			URL:     m.PostURL(&post),
			LastMod: lastMod,
		})
	}

	return entries, nil
}
