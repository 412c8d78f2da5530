// Package memory provides an in-process catalog store implementing both
// repository ports. It backs tests and local development; the single
// mutex gives author deletion the same check-then-act atomicity the
// Postgres repositories get from a transaction.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"catalogapi/internal/author"
	"catalogapi/internal/book"
)

type Store struct {
	mu           sync.RWMutex
	authors      map[int64]author.Author
	books        map[int64]book.Book
	nextAuthorID int64
	nextBookID   int64
}

func NewStore() *Store {
	return &Store{
		authors:      make(map[int64]author.Author),
		books:        make(map[int64]book.Book),
		nextAuthorID: 1,
		nextBookID:   1,
	}
}

// Authors returns the author.Repository view of the store.
func (s *Store) Authors() *AuthorRepo {
	return &AuthorRepo{store: s}
}

// Books returns the book.Repository view of the store.
func (s *Store) Books() *BookRepo {
	return &BookRepo{store: s}
}

type AuthorRepo struct {
	store *Store
}

func (r *AuthorRepo) List(_ context.Context) ([]author.Author, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]author.Author, 0, len(s.authors))
	for _, a := range s.authors {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AuthorRepo) SearchByName(_ context.Context, text string) ([]author.Author, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]author.Author, 0)
	for _, a := range s.authors {
		if strings.Contains(a.FullName, text) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AuthorRepo) Get(_ context.Context, id int64) (author.Author, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.authors[id]
	if !ok {
		return author.Author{}, author.ErrNotFound
	}
	return a, nil
}

func (r *AuthorRepo) Save(_ context.Context, a *author.Author) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextAuthorID
	s.nextAuthorID++
	s.authors[a.ID] = *a
	return nil
}

func (r *AuthorRepo) Update(_ context.Context, a author.Author) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[a.ID]; !ok {
		return author.ErrNotFound
	}
	s.authors[a.ID] = a
	return nil
}

// Delete applies the ownership guard and the removal under one lock
// hold, mirroring the transactional Postgres path.
func (r *AuthorRepo) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[id]; !ok {
		return author.ErrNotFound
	}
	for _, b := range s.books {
		if b.HasAuthor(id) {
			return author.ErrDeleteBlocked
		}
	}
	delete(s.authors, id)
	return nil
}

type BookRepo struct {
	store *Store
}

func (r *BookRepo) List(_ context.Context) ([]book.Book, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectBooks(func(book.Book) bool { return true }), nil
}

func (r *BookRepo) SearchByTitle(_ context.Context, text string) ([]book.Book, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectBooks(func(b book.Book) bool {
		return strings.Contains(b.Title, text)
	}), nil
}

func (r *BookRepo) Get(_ context.Context, id int64) (book.Book, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[id]
	if !ok {
		return book.Book{}, book.ErrNotFound
	}
	return cloneBook(b), nil
}

func (r *BookRepo) ListByAuthor(_ context.Context, authorID int64) ([]book.Book, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectBooks(func(b book.Book) bool {
		return b.HasAuthor(authorID)
	}), nil
}

func (r *BookRepo) Save(_ context.Context, b *book.Book) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = s.nextBookID
	s.nextBookID++
	s.books[b.ID] = cloneBook(*b)
	return nil
}

func (r *BookRepo) Update(_ context.Context, b book.Book) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.books[b.ID]
	if !ok {
		return book.ErrNotFound
	}
	current.Title = b.Title
	current.ISBN = b.ISBN
	current.Publisher = b.Publisher
	current.Year = b.Year
	current.Language = b.Language
	s.books[b.ID] = current
	return nil
}

func (r *BookRepo) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return book.ErrNotFound
	}
	delete(s.books, id)
	return nil
}

func (r *BookRepo) AttachAuthor(_ context.Context, bookID, authorID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.books[bookID]
	if !ok {
		return book.ErrNotFound
	}
	if _, ok := s.authors[authorID]; !ok {
		return author.ErrNotFound
	}
	b.AddAuthor(authorID)
	s.books[bookID] = b
	return nil
}

// collectBooks must be called with at least a read lock held.
func (s *Store) collectBooks(match func(book.Book) bool) []book.Book {
	out := make([]book.Book, 0)
	for _, b := range s.books {
		if match(b) {
			out = append(out, cloneBook(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func cloneBook(b book.Book) book.Book {
	ids := make([]int64, len(b.AuthorIDs))
	copy(ids, b.AuthorIDs)
	b.AuthorIDs = ids
	return b
}
