package author

import "errors"

// ErrNotFound is returned when an author is not found.
var ErrNotFound = errors.New("author not found")

// ErrDeleteBlocked is returned when the author still owns books; they
// must be deleted before the author can be.
var ErrDeleteBlocked = errors.New("author still has books")

// ErrValidation is returned when an author payload violates a domain rule.
var ErrValidation = errors.New("invalid author")

// Author represents an author entity.
type Author struct {
	ID       int64
	FullName string
}
