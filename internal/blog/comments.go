package blog

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/blog-backend/internal/db"
)

// SubmitComment validates and persists a reader comment against a
// published post. Validation failure persists nothing; drafts cannot be
// commented on.
func (m *Manager) SubmitComment(ctx context.Context, postID int, form CommentForm) (*Comment, error) {
	dbPost, err := m.db.PublishedPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	}
	if dbPost == nil {
		return nil, ErrPostNotFound
	}

	if err := form.Validate(); err != nil {
		return nil, err
	}

	dbComment := &db.Comment{
		PostID:    dbPost.ID,
		Name:      form.Name,
		Email:     form.Email,
		Body:      form.Body,
		CreatedAt: time.Now(),
		IsActive:  true,
	}
	if err := m.db.CreateComment(ctx, dbComment); err != nil {
		return nil, fmt.Errorf("db create comment: %w", err)
	}

	comment := NewComment(dbComment)
	return &comment, nil
}

// ActiveComments lists a post's visible comments in display order
// (createdAt ASC). Moderated comments stay persisted but are not
// returned.
func (m *Manager) ActiveComments(ctx context.Context, postID int) (Comments, error) {
	list, err := m.db.ActiveCommentsByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get comments: %w", err)
	}

	return NewComments(list), nil
}
