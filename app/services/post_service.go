package services

import (
	"errors"
	"strings"
	"time"

	"github.com/arypfer/Proty-Content-Calendar/app/models"
	"github.com/arypfer/Proty-Content-Calendar/app/repositories"
)

// PostService is the single source of truth for scheduled posts.
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
	}
}

// Save applies a PostInput to the store. An input without an id creates a
// new post; an input with an id replaces the mutable fields of the post it
// names, the id itself never changes. Saving against an id the store does
// not know fails with repositories.ErrNotFound.
func (s *PostService) Save(input *models.PostInput) (*models.Post, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if input.ID == "" {
		post := &models.Post{
			Date:     input.Date,
			Images:   cloneImages(input.Images),
			Caption:  input.Caption,
			Status:   input.Status,
			Comments: cloneComments(input.Comments),
		}
		post.BeforeCreate()
		if err := post.Validate(); err != nil {
			return nil, &ValidationError{Reason: err.Error()}
		}
		if err := s.postRepo.Create(post); err != nil {
			return nil, err
		}
		return post, nil
	}

	existing, err := s.postRepo.GetByID(input.ID)
	if err != nil {
		return nil, err
	}

	existing.Date = input.Date
	existing.Images = cloneImages(input.Images)
	existing.Caption = input.Caption
	existing.Status = input.Status
	existing.Comments = cloneComments(input.Comments)
	existing.UpdatedAt = time.Now()

	if err := existing.Validate(); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	if err := s.postRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Get retrieves a post by id.
func (s *PostService) Get(id string) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// List returns every post in insertion order.
func (s *PostService) List() ([]*models.Post, error) {
	return s.postRepo.List()
}

// Delete removes a post. Deleting an id that is not present is a no-op and
// leaves every other entry untouched.
func (s *PostService) Delete(id string) error {
	err := s.postRepo.Delete(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil
	}
	return err
}

// validateInput checks the save contract before anything is written. It
// also normalizes the input: an empty status defaults to draft and
// comments missing ids or timestamps are stamped.
func validateInput(input *models.PostInput) error {
	if input == nil {
		return validationErrorf("", "input is required")
	}
	if input.Date.IsZero() {
		return validationErrorf("date", "a calendar date is required")
	}
	if input.Status == "" {
		input.Status = models.StatusDraft
	}
	if !input.Status.Valid() {
		return validationErrorf("status", "unknown status %q", input.Status)
	}
	for i, comment := range input.Comments {
		if comment == nil {
			return validationErrorf("comments", "comment %d is missing", i)
		}
		if !comment.Author.Valid() {
			return validationErrorf("comments", "comment %d: author must be designer or reviewer", i)
		}
		if strings.TrimSpace(comment.Text) == "" {
			return validationErrorf("comments", "comment %d: text cannot be blank", i)
		}
		comment.BeforeCreate()
	}
	return nil
}

func cloneImages(images []models.Image) []models.Image {
	if images == nil {
		return nil
	}
	return append([]models.Image(nil), images...)
}

func cloneComments(comments []*models.Comment) []*models.Comment {
	if comments == nil {
		return nil
	}
	cloned := make([]*models.Comment, 0, len(comments))
	for _, c := range comments {
		cc := *c
		cloned = append(cloned, &cc)
	}
	return cloned
}
