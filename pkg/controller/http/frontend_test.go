package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	controller "github.com/m-mizutani/statusboard/pkg/controller/http"
)

func TestFrontend(t *testing.T) {
	server := newTestServer(t)

	t.Run("page holds the status element", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusOK)
		gt.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
		gt.True(t, strings.Contains(w.Body.String(), `id="backend-status"`))
		gt.True(t, strings.Contains(w.Body.String(), `src="script.js"`))
	})

	t.Run("index.html serves the page without redirect", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/index.html", nil)
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusOK)
		gt.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
		gt.True(t, strings.Contains(w.Body.String(), `id="backend-status"`))
	})

	t.Run("script fetches the health route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/script.js", nil)
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, req)

		gt.Equal(t, w.Code, http.StatusOK)
		body := w.Body.String()
		gt.True(t, strings.Contains(body, "DOMContentLoaded"))
		gt.True(t, strings.Contains(body, "fetch('/api/health')"))
		gt.True(t, strings.Contains(body, "'Error'"))
	})
}

func TestFrontend_Disabled(t *testing.T) {
	server := newTestServer(t, controller.WithFrontend(false))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	gt.Equal(t, w.Code, http.StatusNotFound)
}
