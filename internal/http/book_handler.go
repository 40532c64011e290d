package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"bookstore/internal/book"
	"bookstore/internal/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// BookService is the set of collection operations the handlers need.
type BookService interface {
	List(ctx context.Context) ([]book.Book, error)
	Get(ctx context.Context, id string) (book.Book, error)
	Create(ctx context.Context, in book.CreateInput) (book.Book, error)
	Update(ctx context.Context, id string, in book.UpdateInput) (book.Book, error)
	Delete(ctx context.Context, id string) (book.Book, error)
}

type BookHandler struct {
	service BookService
}

func NewBookHandler(service BookService) *BookHandler {
	return &BookHandler{service: service}
}

type bookIDParam struct {
	ID string `path:"id" description:"The unique identifier of the book"`
}

type createBookRequest struct {
	Title         *string `json:"title" required:"true" nullable:"false" validate:"required" description:"The title of the book"`
	Author        *string `json:"author" required:"true" nullable:"false" validate:"required" description:"The author of the book"`
	PublishedDate *string `json:"publishedDate" required:"true" nullable:"false" validate:"required" description:"The publication date of the book"`
	ISBN          *string `json:"isbn" required:"true" nullable:"false" validate:"required" description:"The ISBN number of the book"`
}

// updateBookRequest never carries the id in its body; an "id" key is ignored.
type updateBookRequest struct {
	ID            string  `path:"id" json:"-" description:"The unique identifier of the book"`
	Title         *string `json:"title,omitempty" description:"The title of the book"`
	Author        *string `json:"author,omitempty" description:"The author of the book"`
	PublishedDate *string `json:"publishedDate,omitempty" description:"The publication date of the book"`
	ISBN          *string `json:"isbn,omitempty" description:"The ISBN number of the book"`
}

// List handles GET /books
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Get handles GET /books/{id}
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Create handles POST /books
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input createBookRequest
	if !decodeBody(w, r, &input) {
		return
	}

	if validationErrors := ValidateStruct(input); len(validationErrors) > 0 {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	b, err := h.service.Create(r.Context(), book.CreateInput{
		Title:         *input.Title,
		Author:        *input.Author,
		PublishedDate: *input.PublishedDate,
		ISBN:          *input.ISBN,
	})
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, b)
}

// Update handles PUT /books/{id}
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input updateBookRequest
	if !decodeBody(w, r, &input) {
		return
	}

	b, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), book.UpdateInput{
		Title:         input.Title,
		Author:        input.Author,
		PublishedDate: input.PublishedDate,
		ISBN:          input.ISBN,
	})
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Delete handles DELETE /books/{id}
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

func (h *BookHandler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, book.ErrNotFound) {
		httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}
	h.internalError(w, r, err)
}

func (h *BookHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Error().
		Err(err).
		Str("request_id", httpx.RequestIDFrom(r)).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("book handler failed")
	httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}

// decodeBody reads a JSON object into dst and writes the error response
// itself when it cannot. An empty body decodes as an empty object.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !httpx.IsJSONContentType(r) {
		httpx.JSONErrorWithRequest(r, w, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Content-Type must be application/json", nil)
		return false
	}

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if err == nil {
		// The body must hold exactly one JSON value.
		if err = dec.Decode(&struct{}{}); errors.Is(err, io.EOF) {
			return true
		}
		if err == nil {
			err = errors.New("unexpected data after JSON object")
		}
	} else if errors.Is(err, io.EOF) {
		return true
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		httpx.JSONErrorWithRequest(r, w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
		return false
	}

	var details []httpx.ErrorDetail
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		details = append(details, httpx.ErrorDetail{
			Field:   typeErr.Field,
			Message: typeErr.Field + " must be a " + typeErr.Type.String(),
		})
	}
	httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", details)
	return false
}
