package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
)

// maxUploadSize bounds the multipart form held in memory.
const maxUploadSize = 10 << 20 // 10 MiB

// imageStore defines the minimal interface needed by ImageHandler.
type imageStore interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// ImageHandler serves image uploads.
type ImageHandler struct {
	store imageStore
	log   *slog.Logger
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(store imageStore, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{store: store, log: logger.With("handler", "images")}
}

// Upload handles POST /images. The image comes as a multipart form
// field named "file"; the response carries the public URL to attach
// to an entry.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	url, err := h.store.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
