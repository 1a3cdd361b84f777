package post

import "errors"

var (
	// ErrPostNotFound is returned when no post exists for the given id.
	ErrPostNotFound = errors.New("post not found")

	// ErrPostInUse blocks deletion while a publication still references the
	// post.
	ErrPostInUse = errors.New("post is referenced by a publication")
)
