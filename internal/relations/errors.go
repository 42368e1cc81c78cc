package relations

import "errors"

// Edge operation failures, mapped to HTTP statuses at the handler boundary.
var (
	// ErrConflict is returned when an edge that must be unique already
	// exists, e.g. liking a post twice or re-saving a saved post.
	ErrConflict = errors.New("conflict")

	// ErrForbidden is returned on ownership violations and on removing an
	// edge that was never created, e.g. unliking a never-liked post.
	ErrForbidden = errors.New("forbidden")
)
