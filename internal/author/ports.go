package author

import (
	"context"
)

// Repository defines the contract for author data storage.
type Repository interface {
	List(ctx context.Context) ([]Author, error)
	// SearchByName returns authors whose full name contains text
	// (case-sensitive substring match).
	SearchByName(ctx context.Context, text string) ([]Author, error)
	Get(ctx context.Context, id int64) (Author, error)
	// Save persists a new author and assigns its identifier.
	Save(ctx context.Context, a *Author) error
	Update(ctx context.Context, a Author) error
	// Delete removes the author. The guard check and the removal run as
	// one transaction: ErrDeleteBlocked comes back while the author
	// still owns any book, and nothing is modified.
	Delete(ctx context.Context, id int64) error
}
