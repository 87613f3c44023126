package blog

import "github.com/daniilsolovey/blog-backend/internal/db"

func NewTag(t *db.Tag) Tag {
	return Tag{Tag: *t}
}

func NewPost(p *db.Post) Post {
	return Post{Post: *p}
}

func NewComment(c *db.Comment) Comment {
	return Comment{Comment: *c}
}

func NewTags(list []db.Tag) Tags {
	tags := make(Tags, len(list))
	for i := range list {
		tags[i] = NewTag(&list[i])
	}
	return tags
}

func NewPostList(list []db.Post) PostList {
	posts := make(PostList, len(list))
	for i := range list {
		posts[i] = NewPost(&list[i])
	}
	return posts
}

func NewComments(list []db.Comment) Comments {
	comments := make(Comments, len(list))
	for i := range list {
		comments[i] = NewComment(&list[i])
	}
	return comments
}
