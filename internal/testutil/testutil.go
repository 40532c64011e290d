package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"bookstore/internal/book"
)

// TestBook is a fixture book that is not part of the seed.
var TestBook = book.Book{
	ID:            "test-book-id-789",
	Title:         "Test Book Title",
	Author:        "Test Author",
	PublishedDate: "2001-01-01",
	ISBN:          "978-0-123456-78-9",
}

// NewRequest builds a request whose body is body marshalled as JSON.
// A string body is sent verbatim so tests can post malformed payloads.
func NewRequest(method, path string, body any) *http.Request {
	var r *http.Request
	switch b := body.(type) {
	case nil:
		return httptest.NewRequest(method, path, nil)
	case string:
		r = httptest.NewRequest(method, path, strings.NewReader(b))
	default:
		raw, _ := json.Marshal(b)
		r = httptest.NewRequest(method, path, bytes.NewReader(raw))
	}
	r.Header.Set("Content-Type", "application/json")
	return r
}

// Serve runs r through h and returns the recorded response.
func Serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

// ErrorBody is the client view of the error envelope.
type ErrorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
	Meta map[string]any `json:"meta"`
}

// DecodeJSON decodes the recorded body into a T.
func DecodeJSON[T any](w *httptest.ResponseRecorder) (T, error) {
	var v T
	err := json.NewDecoder(w.Body).Decode(&v)
	return v, err
}
