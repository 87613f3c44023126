package blog

import (
	"time"

	"github.com/daniilsolovey/blog-backend/internal/db"
)

type Tag struct {
	db.Tag
}

type Post struct {
	db.Post
	Tags []Tag
}

type Comment struct {
	db.Comment
}

// PostPage is one slice of the published listing, optionally narrowed to a
// tag.
type PostPage struct {
	Posts Page[Post]
	Tag   *Tag
}

// FeedItem is a syndication entry: the most recent published posts with a
// rendered, truncated summary.
type FeedItem struct {
	Title       string
	URL         string
	Summary     string
	PublishedAt time.Time
}

// SitemapEntry points a crawler at a published post with its last
// modification instant.
type SitemapEntry struct {
	URL     string
	LastMod time.Time
}
