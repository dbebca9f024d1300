package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JuliusMoehring/shrinkify.app/internal/middleware"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("attaches allow-all headers to every response", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/abc123", nil)

		middleware.CORS(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusTeapot, recorder.Code)
		assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "POST, GET, OPTIONS", recorder.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Headers"))
		assert.Equal(t, "true", recorder.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("answers preflight without calling the next handler", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodOptions, "/api/shrink", nil)

		middleware.CORS(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
	})
}
