package bunker

import "errors"

var (
	// ErrEmptyDepot is returned when a depot is built without weapons.
	ErrEmptyDepot = errors.New("bunker: weapon depot needs at least one weapon")
	// ErrNotBunkerMarker is returned for tags that are not bunker markers.
	ErrNotBunkerMarker = errors.New("bunker: tag is not a bunker marker")
	// ErrDuplicateTag is returned when a roster already holds a bunker with the tag.
	ErrDuplicateTag = errors.New("bunker: duplicate tag")
	// ErrUnknownTag is returned when no bunker owns the requested tag.
	ErrUnknownTag = errors.New("bunker: unknown tag")
)
