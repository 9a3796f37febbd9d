package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/arypfer/Proty-Content-Calendar/app/models"
	"github.com/arypfer/Proty-Content-Calendar/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for scheduled posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// Index handles listing all posts in insertion order
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.List()
	if err != nil {
		sendError(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	sendJSON(w, map[string]interface{}{
		"posts": posts,
	})
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	post, err := pc.postService.Get(vars["id"])
	if err != nil {
		sendError(w, "Post not found", statusFromError(err))
		return
	}

	sendJSON(w, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var input models.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	// POST always creates; the store assigns the id.
	input.ID = ""

	post, err := pc.postService.Save(&input)
	if err != nil {
		sendError(w, "Failed to create post: "+err.Error(), statusFromError(err))
		return
	}

	sendJSON(w, post)
}

// Edit handles replacing the mutable fields of an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var input models.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	input.ID = vars["id"]

	post, err := pc.postService.Save(&input)
	if err != nil {
		sendError(w, "Failed to update post: "+err.Error(), statusFromError(err))
		return
	}

	sendJSON(w, post)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := pc.postService.Delete(vars["id"]); err != nil {
		sendError(w, "Failed to delete post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type commentRequest struct {
	Author models.AuthorRole `json:"author"`
	Text   string            `json:"text"`
}

// CreateComment appends one comment to a post's thread. The comment is
// staged through an edit buffer so the blank-text rule applies before
// anything is saved.
func (pc *PostController) CreateComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.Get(vars["id"])
	if err != nil {
		sendError(w, "Post not found", statusFromError(err))
		return
	}

	buf := services.EditBufferFromPost(post)
	if _, err := buf.AddComment(req.Author, req.Text); err != nil {
		sendError(w, "Failed to add comment: "+err.Error(), statusFromError(err))
		return
	}

	saved, err := pc.postService.Save(buf.Input())
	if err != nil {
		sendError(w, "Failed to save comment: "+err.Error(), statusFromError(err))
		return
	}

	sendJSON(w, saved)
}
