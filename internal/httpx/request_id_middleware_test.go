package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
	}))

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		req.Header.Set(requestIDHeader, "abc-123")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
	})

	t.Run("generates when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get(requestIDHeader))
	})

	t.Run("replaces unusable id", func(t *testing.T) {
		for _, bad := range []string{strings.Repeat("a", maxRequestIDLength+1), "has space", "tab\there"} {
			req := httptest.NewRequest(http.MethodGet, "/books", nil)
			req.Header.Set(requestIDHeader, bad)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.NotEqual(t, bad, seen)
			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
		}
	})
}

func TestRequestIDFrom_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	assert.Empty(t, RequestIDFrom(req))
}
