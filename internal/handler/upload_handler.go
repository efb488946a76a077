package handler

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"rice-shop/internal/storage"

	"github.com/rs/zerolog"
)

// allowedImageExtensions lists the accepted upload file types.
var allowedImageExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadResponse describes a stored product image.
type UploadResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
	Filename string `json:"filename"`
}

// UploadHandler accepts product image uploads.
type UploadHandler struct {
	store    storage.ImageStore
	maxBytes int64
	logger   zerolog.Logger
}

// NewUploadHandler creates a new upload handler. maxBytes caps the
// accepted request body size.
func NewUploadHandler(store storage.ImageStore, maxBytes int64, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		store:    store,
		maxBytes: maxBytes,
		logger:   logger.With().Str("handler", "upload").Logger(),
	}
}

// Upload handles POST /api/upload requests with a multipart "image" field.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		writeError(w, http.StatusBadRequest, "image too large or malformed upload", h.logger)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required", h.logger)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		writeError(w, http.StatusBadRequest, "only image files are allowed", h.logger)
		return
	}

	filename := fmt.Sprintf("product-%d-%d%s", time.Now().UnixMilli(), rand.IntN(1_000_000_000), ext)

	url, err := h.store.Save(r.Context(), filename, file)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", filename).Msg("failed to store image")
		writeError(w, http.StatusInternalServerError, "failed to store image", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Message:  "Image uploaded successfully",
		ImageURL: url,
		Filename: filename,
	})
}
