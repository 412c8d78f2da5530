package book

import (
	"encoding/json"
	"errors"
	"net/http"

	"catalogapi/internal/author"
	"catalogapi/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// List handles GET /api/v1/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	books, err := h.svc.SearchByTitle(r.Context(), query)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, ToDTOs(books))
}

// Get handles GET /api/v1/books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Book id must be numeric", nil)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, ToDTO(b))
}

// ListByAuthor handles GET /api/v1/authors/{id}/books
func (h *HTTPHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Author id must be numeric", nil)
		return
	}

	books, err := h.svc.ListByAuthor(r.Context(), authorID, r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, author.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Author not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, ToDTOs(books))
}

// Create handles POST /api/v1/authors/{id}/books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Author id must be numeric", nil)
		return
	}

	var d DTO
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON", nil)
		return
	}
	if details := httpx.ValidateStruct(d); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book payload", details)
		return
	}

	b, err := FromDTO(d)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	created, err := h.svc.Create(r.Context(), authorID, b)
	if err != nil {
		switch {
		case errors.Is(err, author.ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Author not found", nil)
		case errors.Is(err, ErrValidation):
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSON(w, http.StatusCreated, ToDTO(created))
}

// Update handles PUT /api/v1/books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Book id must be numeric", nil)
		return
	}

	var d DTO
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON", nil)
		return
	}
	if d.ID != id {
		httpx.JSONError(w, r, http.StatusBadRequest, "ID_MISMATCH", "Payload id does not match path id", nil)
		return
	}

	b, err := FromDTO(d)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	updated, err := h.svc.Update(r.Context(), b)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, ErrValidation):
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSON(w, http.StatusOK, ToDTO(updated))
}

// Delete handles DELETE /api/v1/books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Book id must be numeric", nil)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.NoContent(w)
}

// AddAuthor handles PUT /api/v1/books/{id}/authors. Per the original
// contract every failure on this route, payload problems included,
// reads as 404.
func (h *HTTPHandler) AddAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}

	var d author.DTO
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Author not found", nil)
		return
	}

	updated, err := h.svc.AddAuthor(r.Context(), id, d.ID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Author or book not found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, ToDTO(updated))
}
