package author

import (
	"context"
	"fmt"
	"strings"
)

// Service provides author-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new author service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all authors.
func (s *Service) List(ctx context.Context) ([]Author, error) {
	return s.repo.List(ctx)
}

// SearchByName returns authors whose full name contains text.
func (s *Service) SearchByName(ctx context.Context, text string) ([]Author, error) {
	if text == "" {
		return s.repo.List(ctx)
	}
	return s.repo.SearchByName(ctx, text)
}

// Get returns a single author by id.
func (s *Service) Get(ctx context.Context, id int64) (Author, error) {
	return s.repo.Get(ctx, id)
}

// Create persists a new author and returns it with its assigned id.
func (s *Service) Create(ctx context.Context, a Author) (Author, error) {
	a.FullName = strings.TrimSpace(a.FullName)
	if a.FullName == "" {
		return Author{}, fmt.Errorf("%w: fullName must not be empty", ErrValidation)
	}
	a.ID = 0
	if err := s.repo.Save(ctx, &a); err != nil {
		return Author{}, err
	}
	return a, nil
}

// Rename replaces the full name of an existing author. The full name is
// the only patchable field.
func (s *Service) Rename(ctx context.Context, id int64, fullName string) (Author, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return Author{}, fmt.Errorf("%w: fullName must not be empty", ErrValidation)
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Author{}, err
	}
	current.FullName = fullName
	if err := s.repo.Update(ctx, current); err != nil {
		return Author{}, err
	}
	return current, nil
}

// Delete removes an author. While the author still owns any book the
// repository reports ErrDeleteBlocked and nothing is removed; the books
// must be deleted first.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
