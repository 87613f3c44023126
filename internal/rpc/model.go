package rpc

import "time"

type Tag struct {
	TagID int    `json:"tagId"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
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

type PostPage struct {
	Posts     []Post `json:"posts"`
	Page      int    `json:"page"`
	PageCount int    `json:"pageCount"`
}
