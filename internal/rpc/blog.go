package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blog-backend/internal/blog"
)

//go:generate zenrpc

// BlogService provides read-only RPC access to the published blog content.
type BlogService struct {
	zenrpc.Service
	manager *blog.Manager
}

func NewBlogService(manager *blog.Manager) *BlogService {
	return &BlogService{manager: manager}
}

// List retrieves one page of published posts sorted by publishedAt DESC,
// optionally narrowed to a tag.
//
//zenrpc:tagSlug optional tag slug filter
//zenrpc:page raw page token, clamped like the HTTP listing
//zenrpc:return page of post summaries
//zenrpc:404 tag not found
//zenrpc:500 internal server error
func (s *BlogService) List(ctx context.Context, tagSlug, page *string) (*PostPage, error) {
	var slug, token string
	if tagSlug != nil {
		slug = *tagSlug
	}
	if page != nil {
		token = *page
	}

	postPage, err := s.manager.PostPage(ctx, slug, token)
	if err != nil {
		if errors.Is(err, blog.ErrTagNotFound) {
			return nil, zenrpc.NewStringError(404, "tag not found")
		}
		return nil, err
	}

	return &PostPage{
		Posts:     Map(postPage.Posts.Items, NewPost),
		Page:      postPage.Posts.Number,
		PageCount: postPage.Posts.PageCount,
	}, nil
}

// BySlug retrieves a published post by its publication day and slug.
//
//zenrpc:year publication year
//zenrpc:month publication month
//zenrpc:day publication day
//zenrpc:slug post slug
//zenrpc:return post with full body
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) BySlug(ctx context.Context, year, month, day int, slug string) (*Post, error) {
	post, err := s.manager.PostBySlugDate(ctx, year, month, day, slug)
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			return nil, zenrpc.NewStringError(404, "post not found")
		}
		return nil, err
	}

	result := NewPost(*post)
	return &result, nil
}

// Comments retrieves the active comments of a published post in display
// order.
//
//zenrpc:postId post numeric ID
//zenrpc:return list of active comments
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) Comments(ctx context.Context, postID int) ([]Comment, error) {
	if _, err := s.manager.PostByID(ctx, postID); err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			return nil, zenrpc.NewStringError(404, "post not found")
		}
		return nil, err
	}

	comments, err := s.manager.ActiveComments(ctx, postID)
	if err != nil {
		return nil, err
	}

	return Map(comments, NewComment), nil
}

// Tags retrieves all tags ordered by title.
//
//zenrpc:return list of tags
//zenrpc:500 internal server error
func (s *BlogService) Tags(ctx context.Context) ([]Tag, error) {
	tags, err := s.manager.Tags(ctx)
	if err != nil {
		return nil, err
	}

	return Map(tags, NewTag), nil
}
