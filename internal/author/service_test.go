package author_test

import (
	"context"
	"testing"

	"catalogapi/internal/author"
	"catalogapi/internal/book"
	"catalogapi/internal/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := author.NewService(store.Authors())

	created, err := svc.Create(ctx, author.Author{FullName: "Jane Austen"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Jane Austen", created.FullName)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestService_CreateRejectsEmptyName(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := author.NewService(store.Authors())

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(ctx, author.Author{FullName: name})
		assert.ErrorIs(t, err, author.ErrValidation)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestService_UnknownIDFailsWithNotFound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := author.NewService(store.Authors())

	_, err := svc.Get(ctx, 42)
	assert.ErrorIs(t, err, author.ErrNotFound)

	_, err = svc.Rename(ctx, 42, "Someone Else")
	assert.ErrorIs(t, err, author.ErrNotFound)

	err = svc.Delete(ctx, 42)
	assert.ErrorIs(t, err, author.ErrNotFound)
}

func TestService_RenameReplacesFullNameOnly(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := author.NewService(store.Authors())

	created, err := svc.Create(ctx, author.Author{FullName: "Jane Austen"})
	require.NoError(t, err)

	renamed, err := svc.Rename(ctx, created.ID, "Jane Austen-Knight")
	require.NoError(t, err)
	assert.Equal(t, created.ID, renamed.ID)
	assert.Equal(t, "Jane Austen-Knight", renamed.FullName)

	_, err = svc.Rename(ctx, created.ID, "  ")
	assert.ErrorIs(t, err, author.ErrValidation)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Austen-Knight", got.FullName)
}

func TestService_SearchByName(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := author.NewService(store.Authors())

	jane, err := svc.Create(ctx, author.Author{FullName: "Jane Austen"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, author.Author{FullName: "Victor Hugo"})
	require.NoError(t, err)

	matches, err := svc.SearchByName(ctx, "Aust")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, jane.ID, matches[0].ID)

	// Empty text means the unfiltered list.
	all, err := svc.SearchByName(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := svc.SearchByName(ctx, "Tolstoy")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestService_DeleteBooklessAuthor(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := author.NewService(store.Authors())

	created, err := svc.Create(ctx, author.Author{FullName: "Jane Austen"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, author.ErrNotFound)
}

func TestService_DeleteBlockedWhileAuthorOwnsBooks(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := author.NewService(store.Authors())

	jane, err := svc.Create(ctx, author.Author{FullName: "Jane Austen"})
	require.NoError(t, err)

	emma := book.Book{
		Title:     "Emma",
		ISBN:      1234567890123,
		Publisher: "Penguin",
		Year:      1815,
		Language:  book.LanguageEnglish,
		AuthorIDs: []int64{jane.ID},
	}
	require.NoError(t, store.Books().Save(ctx, &emma))

	// Deterministic under repeated attempts, nothing is removed.
	for i := 0; i < 3; i++ {
		err := svc.Delete(ctx, jane.ID)
		assert.ErrorIs(t, err, author.ErrDeleteBlocked)
	}

	_, err = svc.Get(ctx, jane.ID)
	require.NoError(t, err)
	_, err = store.Books().Get(ctx, emma.ID)
	require.NoError(t, err)

	// Once the book is gone the author can be deleted.
	require.NoError(t, store.Books().Delete(ctx, emma.ID))
	require.NoError(t, svc.Delete(ctx, jane.ID))
}

func TestService_DeleteBlockedForCoAuthoredBook(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := author.NewService(store.Authors())

	jane, err := svc.Create(ctx, author.Author{FullName: "Jane Austen"})
	require.NoError(t, err)
	cassandra, err := svc.Create(ctx, author.Author{FullName: "Cassandra Austen"})
	require.NoError(t, err)

	shared := book.Book{
		Title:     "Letters",
		ISBN:      9780000000001,
		Year:      1817,
		Language:  book.LanguageEnglish,
		AuthorIDs: []int64{jane.ID, cassandra.ID},
	}
	require.NoError(t, store.Books().Save(ctx, &shared))

	err = svc.Delete(ctx, jane.ID)
	assert.ErrorIs(t, err, author.ErrDeleteBlocked)

	// Both authors and the shared book are intact.
	_, err = svc.Get(ctx, jane.ID)
	require.NoError(t, err)
	_, err = svc.Get(ctx, cassandra.ID)
	require.NoError(t, err)
	_, err = store.Books().Get(ctx, shared.ID)
	require.NoError(t, err)
}
