package media

import "errors"

var (
	// ErrMediaNotFound is returned when no media exists for the given id.
	ErrMediaNotFound = errors.New("media not found")

	// ErrMediaTaken is returned when another media already holds the same
	// (title, username) pair.
	ErrMediaTaken = errors.New("media with this title and username already exists")

	// ErrMediaInUse blocks deletion while a publication still references the
	// media.
	ErrMediaInUse = errors.New("media is referenced by a publication")
)
