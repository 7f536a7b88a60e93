package http

import (
	"bytes"
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

//go:embed web
var webAssets embed.FS

const indexFile = "index.html"

type frontendHandler struct {
	files http.Handler
	index []byte
}

// newFrontendHandler serves the status page and its script
func newFrontendHandler() (*frontendHandler, error) {
	root, err := fs.Sub(webAssets, "web")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open embedded web assets")
	}

	index, err := fs.ReadFile(root, indexFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read embedded page", goerr.V("file", indexFile))
	}

	return &frontendHandler{
		files: http.FileServerFS(root),
		index: index,
	}, nil
}

// ServeHTTP writes the page for / and /index.html. FileServer would answer
// /index.html with a redirect to /.
func (h *frontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/", "/" + indexFile:
		http.ServeContent(w, r, indexFile, time.Time{}, bytes.NewReader(h.index))
	default:
		h.files.ServeHTTP(w, r)
	}
}
