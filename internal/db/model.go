// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Comment struct {
		ID, PostID, Name, Email, Body, CreatedAt, IsActive string

		Post string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Post struct {
		ID, Title, Slug, Body, Author, PublishedAt, UpdatedAt, TagIDs, StatusID string
	}
	Tag struct {
		ID, Title, Slug string
	}
}{
	Comment: struct {
		ID, PostID, Name, Email, Body, CreatedAt, IsActive string

		Post string
	}{
		ID:        "commentId",
		PostID:    "postId",
		Name:      "name",
		Email:     "email",
		Body:      "body",
		CreatedAt: "createdAt",
		IsActive:  "isActive",

		Post: "Post",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Post: struct {
		ID, Title, Slug, Body, Author, PublishedAt, UpdatedAt, TagIDs, StatusID string
	}{
		ID:          "postId",
		Title:       "title",
		Slug:        "slug",
		Body:        "body",
		Author:      "author",
		PublishedAt: "publishedAt",
		UpdatedAt:   "updatedAt",
		TagIDs:      "tagIds",
		StatusID:    "statusId",
	},
	Tag: struct {
		ID, Title, Slug string
	}{
		ID:    "tagId",
		Title: "title",
		Slug:  "slug",
	},
}

var Tables = struct {
	Comment struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
}{
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID        int       `pg:"commentId,pk"`
	PostID    int       `pg:"postId,use_zero"`
	Name      string    `pg:"name,use_zero"`
	Email     string    `pg:"email,use_zero"`
	Body      string    `pg:"body,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
	IsActive  bool      `pg:"isActive,use_zero"`

	Post *Post `pg:"fk:postId,rel:has-one"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID          int        `pg:"postId,pk"`
	Title       string     `pg:"title,use_zero"`
	Slug        string     `pg:"slug,use_zero"`
	Body        string     `pg:"body,use_zero"`
	Author      string     `pg:"author,use_zero"`
	PublishedAt time.Time  `pg:"publishedAt,use_zero"`
	UpdatedAt   *time.Time `pg:"updatedAt"`
	TagIDs      []int      `pg:"tagIds,array,use_zero"`
	StatusID    int        `pg:"statusId,use_zero"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID    int    `pg:"tagId,pk"`
	Title string `pg:"title,use_zero"`
	Slug  string `pg:"slug,use_zero"`
}
