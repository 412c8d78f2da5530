package author

import (
	"encoding/json"
	"errors"
	"net/http"

	"catalogapi/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// List handles GET /api/v1/authors
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	authors, err := h.svc.SearchByName(r.Context(), q)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, ToDTOs(authors))
}

// Get handles GET /api/v1/authors/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Author id must be numeric", nil)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Author not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, ToDTO(a))
}

// Create handles POST /api/v1/authors
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var d DTO
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON", nil)
		return
	}
	if details := httpx.ValidateStruct(d); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid author payload", details)
		return
	}

	created, err := h.svc.Create(r.Context(), FromDTO(d))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, ToDTO(created))
}

// Update handles PUT /api/v1/authors/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Author id must be numeric", nil)
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

	updated, err := h.svc.Rename(r.Context(), id, d.FullName)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Author not found", nil)
		case errors.Is(err, ErrValidation):
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSON(w, http.StatusOK, ToDTO(updated))
}

// Delete handles DELETE /api/v1/authors/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "Author id must be numeric", nil)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Author not found", nil)
		case errors.Is(err, ErrDeleteBlocked):
			httpx.JSONError(w, r, http.StatusBadRequest, "DELETE_BLOCKED", "The author's books must be deleted first", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.NoContent(w)
}
