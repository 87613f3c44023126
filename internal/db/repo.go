package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

const (
	StatusDraft     = 1
	StatusPublished = 2
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// published is the single definition of the public visibility predicate.
// Every public read path (listing, detail, related, feed, sitemap, search)
// must go through it.
func published(query *orm.Query) *orm.Query {
	return query.Where(`"t"."statusId" = ?`, StatusPublished)
}

// PublishedPosts retrieves published posts sorted by publishedAt DESC,
// optionally filtered by tagID.
func (r *Repository) PublishedPosts(ctx context.Context, tagID *int) ([]Post, error) {
	var posts []Post
	query := published(r.db.ModelContext(ctx, &posts))

	if tagID != nil {
		query = query.Where(`? = ANY("t"."tagIds")`, *tagID)
	}

	err := query.
		OrderExpr(`"t"."publishedAt" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

// PublishedPostBySlugDate retrieves a published post by its slug and the
// calendar day of its publication. Drafts and unknown slugs yield nil.
func (r *Repository) PublishedPostBySlugDate(ctx context.Context, slug string, year, month, day int) (*Post, error) {
	post := &Post{}
	err := published(r.db.ModelContext(ctx, post)).
		Where(`"t"."slug" = ?`, slug).
		Where(`date("t"."publishedAt") = ?`, fmt.Sprintf("%04d-%02d-%02d", year, month, day)).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by slug and date: %w", err)
	}

	return post, nil
}

func (r *Repository) PublishedPostByID(ctx context.Context, postID int) (*Post, error) {
	post := &Post{}
	err := published(r.db.ModelContext(ctx, post)).
		Where(`"t"."postId" = ?`, postID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// PublishedPostsByTagIDs retrieves published posts whose tag set overlaps
// tagIDs, excluding excludeID, sorted by publishedAt DESC.
func (r *Repository) PublishedPostsByTagIDs(ctx context.Context, tagIDs []int, excludeID int) ([]Post, error) {
	if len(tagIDs) == 0 {
		return []Post{}, nil
	}

	var posts []Post
	err := published(r.db.ModelContext(ctx, &posts)).
		Where(`"t"."tagIds" && ?`, pg.Array(tagIDs)).
		Where(`"t"."postId" != ?`, excludeID).
		OrderExpr(`"t"."publishedAt" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts by tag ids: %w", err)
	}

	return posts, nil
}

// SearchPublished retrieves published posts whose title or body contains
// the query substring, sorted by publishedAt DESC.
func (r *Repository) SearchPublished(ctx context.Context, query string) ([]Post, error) {
	pattern := "%" + query + "%"

	var posts []Post
	err := published(r.db.ModelContext(ctx, &posts)).
		WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			q = q.WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."body" ILIKE ?`, pattern)
			return q, nil
		}).
		OrderExpr(`"t"."publishedAt" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) TagBySlug(ctx context.Context, slug string) (*Tag, error) {
	tag := &Tag{}
	err := r.db.ModelContext(ctx, tag).
		Where(`"slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get tag by slug: %w", err)
	}

	return tag, nil
}

func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"title" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

func (r *Repository) TagsByIDs(ctx context.Context, tagIDs []int) ([]Tag, error) {
	if len(tagIDs) == 0 {
		return []Tag{}, nil
	}

	tags := []Tag{}
	err := r.db.ModelContext(ctx, &tags).
		Where(`"tagId" IN (?)`, pg.In(tagIDs)).
		OrderExpr(`"title" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags by ids: %w", err)
	}

	return tags, nil
}

// CreateComment persists a comment in a single insert. The caller is
// responsible for setting CreatedAt and IsActive.
func (r *Repository) CreateComment(ctx context.Context, comment *Comment) error {
	_, err := r.db.ModelContext(ctx, comment).Insert()
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// ActiveCommentsByPost retrieves non-moderated comments for a post in
// display order (createdAt ASC).
func (r *Repository) ActiveCommentsByPost(ctx context.Context, postID int) ([]Comment, error) {
	var comments []Comment
	err := r.db.ModelContext(ctx, &comments).
		Where(`"t"."postId" = ?`, postID).
		Where(`"t"."isActive" = ?`, true).
		OrderExpr(`"t"."createdAt" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}
