package blog

import (
	"context"
	"fmt"
)

// SharePost validates a forward-by-email request for a published post and
// hands the message to the mail dispatcher. Dispatch failures surface to
// the caller unretried. Resubmitting sends again; sharing is not
// idempotent.
func (m *Manager) SharePost(ctx context.Context, postID int, form ShareForm) error {
	dbPost, err := m.db.PublishedPostByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("db get post: %w", err)
	}
	if dbPost == nil {
		return ErrPostNotFound
	}

	if err := form.Validate(); err != nil {
		return err
	}

	post := NewPost(dbPost)
	subject := fmt.Sprintf("%s recommends you to read %s", form.Name, post.Title)
	body := fmt.Sprintf("Read %s at %s\n\n%s's comments: %s",
		post.Title, m.PostURL(&post), form.Name, form.Comments)

	if err := m.mailer.Send(subject, body, form.Email, []string{form.To}); err != nil {
		return fmt.Errorf("dispatch share mail: %w", err)
	}

	return nil
}
