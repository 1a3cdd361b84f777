package publication

import "errors"

var (
	// ErrPublicationNotFound is returned when no publication exists for the
	// given id.
	ErrPublicationNotFound = errors.New("publication not found")

	// ErrPublicationPublished blocks updates once the scheduled date has
	// passed. The record stays deletable.
	ErrPublicationPublished = errors.New("publication date has already passed")
)
