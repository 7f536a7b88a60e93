package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	controller "github.com/m-mizutani/statusboard/pkg/controller/http"
)

func TestCORS_AllowAnyOrigin(t *testing.T) {
	server := newTestServer(t)

	origins := []string{
		"http://localhost:8080",
		"https://example.com",
		"null",
	}

	for _, origin := range origins {
		t.Run(origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			req.Header.Set("Origin", origin)
			w := httptest.NewRecorder()

			server.Handler.ServeHTTP(w, req)

			gt.Equal(t, w.Code, http.StatusOK)
			gt.Equal(t, w.Header().Get("Access-Control-Allow-Origin"), "*")
			gt.Equal(t, w.Body.String(), `{"status":"ok"}`)
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	gt.True(t, w.Code == http.StatusOK || w.Code == http.StatusNoContent)
	gt.Equal(t, w.Header().Get("Access-Control-Allow-Origin"), "*")
	gt.V(t, w.Header().Get("Access-Control-Allow-Methods")).NotEqual("")
}

func TestCORS_AllowList(t *testing.T) {
	server := newTestServer(t, controller.WithCORS(controller.AllowOrigins("https://status.example.com")))

	tests := []struct {
		name       string
		origin     string
		wantHeader string
	}{
		{
			name:       "Listed origin",
			origin:     "https://status.example.com",
			wantHeader: "https://status.example.com",
		},
		{
			name:       "Unlisted origin",
			origin:     "https://evil.example.com",
			wantHeader: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()

			server.Handler.ServeHTTP(w, req)

			// The route still answers; only the browser is denied the read.
			gt.Equal(t, w.Code, http.StatusOK)
			gt.Equal(t, w.Header().Get("Access-Control-Allow-Origin"), tt.wantHeader)
		})
	}
}

func TestCORS_EmptyAllowListDeniesAll(t *testing.T) {
	server := newTestServer(t, controller.WithCORS(controller.CORSPolicy{}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	gt.Equal(t, w.Code, http.StatusOK)
	gt.Equal(t, w.Header().Get("Access-Control-Allow-Origin"), "")
}
