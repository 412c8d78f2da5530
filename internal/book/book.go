package book

import "errors"

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrValidation is returned when a book payload violates a domain rule.
var ErrValidation = errors.New("invalid book")

// Book represents a book entity. AuthorIDs holds the book's side of the
// author↔book association.
type Book struct {
	ID        int64
	Title     string
	ISBN      int64
	Publisher string
	Year      int
	Language  Language
	AuthorIDs []int64
}

// AddAuthor records the association with an author. Adding the same
// author twice is a no-op.
func (b *Book) AddAuthor(authorID int64) {
	for _, id := range b.AuthorIDs {
		if id == authorID {
			return
		}
	}
	b.AuthorIDs = append(b.AuthorIDs, authorID)
}

// HasAuthor reports whether the book is associated with the author.
func (b *Book) HasAuthor(authorID int64) bool {
	for _, id := range b.AuthorIDs {
		if id == authorID {
			return true
		}
	}
	return false
}
