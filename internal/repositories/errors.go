package repositories

import "errors"

// ErrNotFound is returned when a document does not exist in its collection.
var ErrNotFound = errors.New("not found")
