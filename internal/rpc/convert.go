package rpc

import "github.com/daniilsolovey/blog-backend/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewTag(t blog.Tag) Tag {
	return Tag{
		TagID: t.ID,
		Title: t.Title,
		Slug:  t.Slug,
	}
}

func NewPost(p blog.Post) Post {
	return Post{
		PostID:      p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Body:        p.Body,
		Author:      p.Author,
		PublishedAt: p.PublishedAt,
		Tags:        Map(p.Tags, NewTag),
	}
}

func NewComment(c blog.Comment) Comment {
	return Comment{
		CommentID: c.ID,
		Name:      c.Name,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}
