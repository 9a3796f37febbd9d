package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/arypfer/Proty-Content-Calendar/app/captions"
	"github.com/arypfer/Proty-Content-Calendar/app/models"
)

// CaptionController proxies caption suggestion requests to the generative
// model collaborator.
type CaptionController struct {
	suggester captions.Suggester
}

// NewCaptionController creates a new CaptionController
func NewCaptionController(suggester captions.Suggester) *CaptionController {
	return &CaptionController{
		suggester: suggester,
	}
}

type suggestRequest struct {
	Images []models.Image `json:"images"`
}

// Suggest handles POST /api/captions/suggest. Collaborator failures
// surface as a fallback message inside a 200 response, never as an HTTP
// error: an abandoned or failed suggestion must not break the editor.
func (cc *CaptionController) Suggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Images) == 0 {
		sendError(w, "At least one image is required", http.StatusUnprocessableEntity)
		return
	}

	suggestion := cc.suggester.Suggest(r.Context(), req.Images)

	sendJSON(w, map[string]string{
		"suggestion": suggestion,
	})
}
