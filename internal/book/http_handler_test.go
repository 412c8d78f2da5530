package book

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalogapi/internal/author"
	"catalogapi/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

var testBook = Book{
	ID:        1,
	Title:     "Emma",
	ISBN:      1234567890123,
	Publisher: "Penguin",
	Year:      1815,
	Language:  LanguageEnglish,
	AuthorIDs: []int64{1},
}

func newHandler(t *testing.T) (*HTTPHandler, *MockRepository, *MockAuthorDirectory) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := NewMockRepository(ctrl)
	mockAuthors := NewMockAuthorDirectory(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo, mockAuthors, ISBNRuleISBN13))
	return handler, mockRepo, mockAuthors
}

func TestHTTPHandler_List(t *testing.T) {
	handler, mockRepo, _ := newHandler(t)

	t.Run("no query lists all", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return([]Book{testBook}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var got []DTO
		testutil.DecodeJSON(t, w.Body, &got)
		assert.Equal(t, []DTO{ToDTO(testBook)}, got)
	})

	t.Run("query filters by title", func(t *testing.T) {
		mockRepo.EXPECT().SearchByTitle(gomock.Any(), "Emm").Return([]Book{}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/books?query=Emm", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})
}

func TestHTTPHandler_Get(t *testing.T) {
	handler, mockRepo, _ := newHandler(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), int64(1)).Return(testBook, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/books/1", nil)
		r.SetPathValue("id", "1")

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), int64(99)).Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/books/99", nil)
		r.SetPathValue("id", "99")

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_ListByAuthor(t *testing.T) {
	handler, mockRepo, mockAuthors := newHandler(t)

	t.Run("author missing", func(t *testing.T) {
		mockAuthors.EXPECT().Get(gomock.Any(), int64(99)).Return(author.Author{}, author.ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/authors/99/books", nil)
		r.SetPathValue("id", "99")

		handler.ListByAuthor(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success with filter", func(t *testing.T) {
		mockAuthors.EXPECT().Get(gomock.Any(), int64(1)).Return(author.Author{ID: 1, FullName: "Jane Austen"}, nil)
		mockRepo.EXPECT().ListByAuthor(gomock.Any(), int64(1)).Return([]Book{testBook}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/authors/1/books?q=Emm", nil)
		r.SetPathValue("id", "1")

		handler.ListByAuthor(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var got []DTO
		testutil.DecodeJSON(t, w.Body, &got)
		assert.Len(t, got, 1)
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	handler, mockRepo, mockAuthors := newHandler(t)

	payload := DTO{
		Title:     "Emma",
		ISBN:      1234567890123,
		Publisher: "Penguin",
		Year:      1815,
		Language:  "english",
	}

	t.Run("created", func(t *testing.T) {
		mockAuthors.EXPECT().Get(gomock.Any(), int64(1)).Return(author.Author{ID: 1, FullName: "Jane Austen"}, nil)
		mockRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *Book) error {
				b.ID = 1
				return nil
			})

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/api/v1/authors/1/books", payload)
		r.SetPathValue("id", "1")

		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got DTO
		testutil.DecodeJSON(t, w.Body, &got)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "ENGLISH", got.Language)
		assert.Equal(t, []int64{1}, got.AuthorIDs)
	})

	t.Run("author missing is 404 not 400", func(t *testing.T) {
		mockAuthors.EXPECT().Get(gomock.Any(), int64(99)).Return(author.Author{}, author.ErrNotFound)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/api/v1/authors/99/books", payload)
		r.SetPathValue("id", "99")

		handler.Create(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	invalids := []struct {
		name   string
		mutate func(*DTO)
	}{
		{name: "missing title", mutate: func(d *DTO) { d.Title = "" }},
		{name: "bad language", mutate: func(d *DTO) { d.Language = "german" }},
		{name: "bad isbn", mutate: func(d *DTO) { d.ISBN = 123 }},
		{name: "bad year", mutate: func(d *DTO) { d.Year = 42 }},
	}

	for _, tt := range invalids {
		t.Run(tt.name, func(t *testing.T) {
			d := payload
			tt.mutate(&d)

			w := httptest.NewRecorder()
			r := testutil.NewRequest(http.MethodPost, "/api/v1/authors/1/books", d)
			r.SetPathValue("id", "1")

			handler.Create(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHTTPHandler_Update(t *testing.T) {
	handler, mockRepo, _ := newHandler(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), int64(1)).Return(testBook, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPut, "/api/v1/books/1", DTO{
			ID: 1, Title: "Emma (Revised)", ISBN: 9780141439587, Year: 1816, Language: "french",
		})
		r.SetPathValue("id", "1")

		handler.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("id mismatch", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPut, "/api/v1/books/1", DTO{
			ID: 2, Title: "Emma", ISBN: 1234567890123, Year: 1815,
		})
		r.SetPathValue("id", "1")

		handler.Update(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), int64(99)).Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPut, "/api/v1/books/99", DTO{
			ID: 99, Title: "Ghost", ISBN: 1234567890123, Year: 1815,
		})
		r.SetPathValue("id", "99")

		handler.Update(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	handler, mockRepo, _ := newHandler(t)

	t.Run("deleted", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/books/1", nil)
		r.SetPathValue("id", "1")

		handler.Delete(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), int64(99)).Return(ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/books/99", nil)
		r.SetPathValue("id", "99")

		handler.Delete(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_AddAuthor(t *testing.T) {
	handler, mockRepo, mockAuthors := newHandler(t)

	t.Run("success", func(t *testing.T) {
		mockAuthors.EXPECT().Get(gomock.Any(), int64(2)).Return(author.Author{ID: 2, FullName: "Cassandra Austen"}, nil)
		mockRepo.EXPECT().Get(gomock.Any(), int64(1)).Return(testBook, nil)
		mockRepo.EXPECT().AttachAuthor(gomock.Any(), int64(1), int64(2)).Return(nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPut, "/api/v1/books/1/authors", author.DTO{ID: 2, FullName: "Cassandra Austen"})
		r.SetPathValue("id", "1")

		handler.AddAuthor(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var got DTO
		testutil.DecodeJSON(t, w.Body, &got)
		assert.Contains(t, got.AuthorIDs, int64(2))
	})

	t.Run("every lookup failure reads as 404", func(t *testing.T) {
		mockAuthors.EXPECT().Get(gomock.Any(), int64(99)).Return(author.Author{}, author.ErrNotFound)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPut, "/api/v1/books/1/authors", author.DTO{ID: 99})
		r.SetPathValue("id", "1")

		handler.AddAuthor(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
