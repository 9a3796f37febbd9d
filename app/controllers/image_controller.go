package controllers

import (
	"net/http"

	"github.com/arypfer/Proty-Content-Calendar/app/images"
)

const maxUploadBytes = 64 << 20

// ImageController turns uploaded files into carousel payloads.
type ImageController struct{}

// NewImageController creates a new ImageController
func NewImageController() *ImageController {
	return &ImageController{}
}

// Upload handles POST /api/images. Files arrive as the multipart field
// "images"; payloads come back in the order the files were sent.
func (ic *ImageController) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		sendError(w, "Failed to parse upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["images"]
	if len(headers) == 0 {
		sendError(w, "At least one file is required", http.StatusUnprocessableEntity)
		return
	}

	files := make([]images.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			sendError(w, "Failed to open "+fh.Filename+": "+err.Error(), http.StatusBadRequest)
			return
		}
		defer f.Close()
		files = append(files, images.File{Name: fh.Filename, Reader: f})
	}

	payloads, err := images.IngestFiles(r.Context(), files)
	if err != nil {
		sendError(w, "Failed to ingest files: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	sendJSON(w, map[string]interface{}{
		"images": payloads,
	})
}
