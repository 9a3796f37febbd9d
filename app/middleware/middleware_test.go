package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLogger(t *testing.T) {
	handler := Logger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/posts", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestRecoverer(t *testing.T) {
	handler := Recoverer(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/posts", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestContentTypeJSON(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	t.Run("sets header for api paths", func(t *testing.T) {
		w := httptest.NewRecorder()
		ContentTypeJSON(next).ServeHTTP(w, httptest.NewRequest("GET", "/api/posts", nil))
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("leaves other paths alone", func(t *testing.T) {
		w := httptest.NewRecorder()
		ContentTypeJSON(next).ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
		assert.Empty(t, w.Header().Get("Content-Type"))
	})
}
