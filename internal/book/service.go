package book

import (
	"context"
	"fmt"
	"strings"
)

// Service provides book-related business logic.
type Service struct {
	repo     Repository
	authors  AuthorDirectory
	isbnRule ISBNRule
}

// NewService creates a new book service.
func NewService(repo Repository, authors AuthorDirectory, isbnRule ISBNRule) *Service {
	return &Service{repo: repo, authors: authors, isbnRule: isbnRule}
}

// List returns all books.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// SearchByTitle returns books whose title contains text.
func (s *Service) SearchByTitle(ctx context.Context, text string) ([]Book, error) {
	if text == "" {
		return s.repo.List(ctx)
	}
	return s.repo.SearchByTitle(ctx, text)
}

// Get returns a single book by id.
func (s *Service) Get(ctx context.Context, id int64) (Book, error) {
	return s.repo.Get(ctx, id)
}

// ListByAuthor returns the books associated with an author, optionally
// filtered by title substring. The author must exist; author.ErrNotFound
// propagates when it does not.
func (s *Service) ListByAuthor(ctx context.Context, authorID int64, titleFilter string) ([]Book, error) {
	if _, err := s.authors.Get(ctx, authorID); err != nil {
		return nil, err
	}
	books, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if titleFilter == "" {
		return books, nil
	}
	filtered := books[:0]
	for _, b := range books {
		if strings.Contains(b.Title, titleFilter) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// Create validates the book, resolves the author, persists the book with
// the association in place and returns it with its assigned id. A
// missing author surfaces as author.ErrNotFound, distinct from
// ErrValidation.
func (s *Service) Create(ctx context.Context, authorID int64, b Book) (Book, error) {
	if err := s.validate(b); err != nil {
		return Book{}, err
	}
	a, err := s.authors.Get(ctx, authorID)
	if err != nil {
		return Book{}, err
	}
	b.ID = 0
	b.AuthorIDs = nil
	b.AddAuthor(a.ID)
	if err := s.repo.Save(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Update replaces the patchable fields (title, isbn, publisher, year,
// language) of an existing book. Validation rules are the same as on
// create; the author associations are not touched.
func (s *Service) Update(ctx context.Context, b Book) (Book, error) {
	if err := s.validate(b); err != nil {
		return Book{}, err
	}
	current, err := s.repo.Get(ctx, b.ID)
	if err != nil {
		return Book{}, err
	}
	current.Title = b.Title
	current.ISBN = b.ISBN
	current.Publisher = b.Publisher
	current.Year = b.Year
	current.Language = b.Language
	if err := s.repo.Update(ctx, current); err != nil {
		return Book{}, err
	}
	return current, nil
}

// Delete removes a book and its associations on both sides.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// AddAuthor attaches an existing author to an existing book and returns
// the updated book.
func (s *Service) AddAuthor(ctx context.Context, bookID, authorID int64) (Book, error) {
	a, err := s.authors.Get(ctx, authorID)
	if err != nil {
		return Book{}, err
	}
	b, err := s.repo.Get(ctx, bookID)
	if err != nil {
		return Book{}, err
	}
	if err := s.repo.AttachAuthor(ctx, b.ID, a.ID); err != nil {
		return Book{}, err
	}
	b.AddAuthor(a.ID)
	return b, nil
}

func (s *Service) validate(b Book) error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if !b.Language.Valid() {
		return fmt.Errorf("%w: language must be english or french", ErrValidation)
	}
	if err := s.isbnRule.Validate(b.ISBN); err != nil {
		return err
	}
	if b.Year < 1000 || b.Year > 9999 {
		return fmt.Errorf("%w: year must have exactly 4 digits", ErrValidation)
	}
	return nil
}
