package rest

import "time"

type Tag struct {
	TagID int    `json:"tagId"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type PostSummary struct {
	PostID      int       `json:"postId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	Tags        []Tag     `json:"tags"`
}

type Post struct {
	PostID      int       `json:"postId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Body        string    `json:"body"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	Tags        []Tag     `json:"tags"`
}

type Comment struct {
	CommentID int       `json:"commentId"`
	Name      string    `json:"name"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

type PostListResponse struct {
	Posts         []PostSummary `json:"posts"`
	Page          int           `json:"page"`
	PageCount     int           `json:"pageCount"`
	HasOtherPages bool          `json:"hasOtherPages"`
	Tag           *Tag          `json:"tag,omitempty"`
}

type PostDetailResponse struct {
	Post         Post          `json:"post"`
	Comments     []Comment     `json:"comments"`
	SimilarPosts []PostSummary `json:"similarPosts"`
}

// CommentResponse mirrors the comment form roundtrip: either the created
// comment or the per-field validation errors for redisplay.
type CommentResponse struct {
	Comment *Comment          `json:"comment"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ShareResponse distinguishes "message dispatched" from "form
// redisplayed".
type ShareResponse struct {
	Sent   bool              `json:"sent"`
	Errors map[string]string `json:"errors,omitempty"`
}

type SearchResponse struct {
	Query string        `json:"query"`
	Posts []PostSummary `json:"posts"`
}
