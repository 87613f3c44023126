package blog

import (
	"context"
	"fmt"
	"strings"

	"github.com/daniilsolovey/blog-backend/internal/db"
	"github.com/daniilsolovey/blog-backend/internal/mail"
)

const (
	// ListPageSize is the number of posts per listing page.
	ListPageSize = 3
	// FeedItemLimit is the number of posts exposed through the RSS feed.
	FeedItemLimit = 5
	// SimilarPostLimit is the default number of related-post suggestions.
	SimilarPostLimit = 4
	// SummaryWordLimit caps the rendered summary in feed items.
	SummaryWordLimit = 30
)

// Store is the persistence contract the manager works against. It is
// satisfied by *db.Repository; tests provide stubs.
type Store interface {
	PublishedPosts(ctx context.Context, tagID *int) ([]db.Post, error)
	PublishedPostBySlugDate(ctx context.Context, slug string, year, month, day int) (*db.Post, error)
	PublishedPostByID(ctx context.Context, postID int) (*db.Post, error)
	PublishedPostsByTagIDs(ctx context.Context, tagIDs []int, excludeID int) ([]db.Post, error)
	SearchPublished(ctx context.Context, query string) ([]db.Post, error)
	TagBySlug(ctx context.Context, slug string) (*db.Tag, error)
	Tags(ctx context.Context) ([]db.Tag, error)
	TagsByIDs(ctx context.Context, tagIDs []int) ([]db.Tag, error)
	CreateComment(ctx context.Context, comment *db.Comment) error
	ActiveCommentsByPost(ctx context.Context, postID int) ([]db.Comment, error)
}

type Manager struct {
	db      Store
	mailer  mail.Dispatcher
	baseURL string
}

func NewManager(store Store, mailer mail.Dispatcher, baseURL string) *Manager {
	return &Manager{
		db:      store,
		mailer:  mailer,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// PostPage retrieves one page of the published listing, optionally
// narrowed to a tag. An unknown tag slug is ErrTagNotFound, not an empty
// page. pageToken is the raw, untrusted page query parameter.
func (m *Manager) PostPage(ctx context.Context, tagSlug, pageToken string) (*PostPage, error) {
	var tagID *int
	var pageTag *Tag

	if tagSlug != "" {
		dbTag, err := m.db.TagBySlug(ctx, tagSlug)
		if err != nil {
			return nil, fmt.Errorf("db get tag: %w", err)
		}
		if dbTag == nil {
			return nil, ErrTagNotFound
		}
		tag := NewTag(dbTag)
		pageTag = &tag
		tagID = &dbTag.ID
	}

	dbPosts, err := m.db.PublishedPosts(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	posts, err := m.fillTags(ctx, NewPostList(dbPosts))
	if err != nil {
		return nil, err
	}

	return &PostPage{
		Posts: Paginate([]Post(posts), ListPageSize, pageToken),
		Tag:   pageTag,
	}, nil
}

// PostBySlugDate retrieves a published post addressed by its publication
// day and slug. Drafts are ErrPostNotFound like missing posts.
func (m *Manager) PostBySlugDate(ctx context.Context, year, month, day int, slug string) (*Post, error) {
	dbPost, err := m.db.PublishedPostBySlugDate(ctx, slug, year, month, day)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	}
	if dbPost == nil {
		return nil, ErrPostNotFound
	}

	posts, err := m.fillTags(ctx, NewPostList([]db.Post{*dbPost}))
	if err != nil {
		return nil, err
	}

	return &posts[0], nil
}

// PostByID retrieves a published post by its numeric id. Drafts are
// ErrPostNotFound like missing posts.
func (m *Manager) PostByID(ctx context.Context, postID int) (*Post, error) {
	dbPost, err := m.db.PublishedPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	}
	if dbPost == nil {
		return nil, ErrPostNotFound
	}

	posts, err := m.fillTags(ctx, NewPostList([]db.Post{*dbPost}))
	if err != nil {
		return nil, err
	}

	return &posts[0], nil
}

// SearchPosts retrieves published posts whose title or body contains the
// query substring.
func (m *Manager) SearchPosts(ctx context.Context, query string) (PostList, error) {
	if strings.TrimSpace(query) == "" {
		return PostList{}, nil
	}

	dbPosts, err := m.db.SearchPublished(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db search posts: %w", err)
	}

	return m.fillTags(ctx, NewPostList(dbPosts))
}

func (m *Manager) Tags(ctx context.Context) (Tags, error) {
	list, err := m.db.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get tags: %w", err)
	}

	return NewTags(list), nil
}

// SiteURL is the externally visible base URL of the blog.
func (m *Manager) SiteURL() string {
	return m.baseURL
}

// PostURL builds the absolute detail URL of a post.
func (m *Manager) PostURL(post *Post) string {
	return fmt.Sprintf("%s/%04d/%02d/%02d/%s",
		m.baseURL,
		post.PublishedAt.Year(),
		int(post.PublishedAt.Month()),
		post.PublishedAt.Day(),
		post.Slug,
	)
}

func (m *Manager) fillTags(ctx context.Context, posts PostList) (PostList, error) {
	tagIDs := posts.UniqueTagIDs()
	if len(tagIDs) == 0 {
		return posts, nil
	}

	dbTags, err := m.db.TagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to attach tags to posts: %w", err)
	}

	posts.SetTags(NewTags(dbTags))

	return posts, nil
}
