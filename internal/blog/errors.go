package blog

import "errors"

var (
	// ErrPostNotFound is returned when a post does not exist or is not
	// published. Drafts are indistinguishable from missing posts on
	// public paths.
	ErrPostNotFound = errors.New("post not found")

	// ErrTagNotFound is returned when a tag slug resolves to nothing.
	// An unknown tag is a lookup failure, not an empty listing.
	ErrTagNotFound = errors.New("tag not found")
)
