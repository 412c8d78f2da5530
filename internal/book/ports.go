package book

import (
	"context"

	"catalogapi/internal/author"
)

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	// SearchByTitle returns books whose title contains text
	// (case-sensitive substring match).
	SearchByTitle(ctx context.Context, text string) ([]Book, error)
	Get(ctx context.Context, id int64) (Book, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]Book, error)
	// Save persists a new book with its author associations and assigns
	// its identifier.
	Save(ctx context.Context, b *Book) error
	// Update replaces the book's scalar fields; associations are untouched.
	Update(ctx context.Context, b Book) error
	// Delete removes the book and both sides of its associations.
	Delete(ctx context.Context, id int64) error
	AttachAuthor(ctx context.Context, bookID, authorID int64) error
}

// AuthorDirectory resolves author ids before books attach to them.
type AuthorDirectory interface {
	Get(ctx context.Context, id int64) (author.Author, error)
}
