package services

import (
	"time"

	"github.com/arypfer/Proty-Content-Calendar/app/models"
)

// EditBuffer is the transient working copy of one post's mutable fields
// while it is open in the editor. It never aliases stored state; the store
// sees its contents only when the caller commits a snapshot via Save.
type EditBuffer struct {
	PostID   string
	Date     time.Time
	Images   []models.Image
	Caption  string
	Status   models.Status
	Comments []*models.Comment
}

// NewEditBuffer opens an empty buffer for a new post on the given day.
func NewEditBuffer(date time.Time) *EditBuffer {
	return &EditBuffer{
		Date:   date,
		Status: models.StatusDraft,
	}
}

// EditBufferFromPost opens a buffer seeded with a copy of an existing
// post. Comments are copied entry by entry so staged edits cannot reach
// the stored thread.
func EditBufferFromPost(post *models.Post) *EditBuffer {
	buf := &EditBuffer{
		PostID:  post.ID,
		Date:    post.Date,
		Images:  cloneImages(post.Images),
		Caption: post.Caption,
		Status:  post.Status,
	}
	buf.Comments = cloneComments(post.Comments)
	return buf
}

// AddComment stages a new comment at the end of the thread. Blank or
// whitespace-only text is rejected and the buffer is left unchanged.
func (b *EditBuffer) AddComment(author models.AuthorRole, text string) (*models.Comment, error) {
	comment, err := models.NewComment(author, text)
	if err != nil {
		return nil, &ValidationError{Field: "comment", Reason: err.Error()}
	}
	b.Comments = append(b.Comments, comment)
	return comment, nil
}

// SetCaption replaces the staged caption.
func (b *EditBuffer) SetCaption(caption string) {
	b.Caption = caption
}

// SetStatus replaces the staged review status.
func (b *EditBuffer) SetStatus(status models.Status) error {
	if !status.Valid() {
		return validationErrorf("status", "unknown status %q", status)
	}
	b.Status = status
	return nil
}

// SetDate moves the staged post to another calendar day.
func (b *EditBuffer) SetDate(date time.Time) error {
	if date.IsZero() {
		return validationErrorf("date", "a calendar date is required")
	}
	b.Date = date
	return nil
}

// AddImages appends payloads to the staged carousel, keeping their order.
func (b *EditBuffer) AddImages(images ...models.Image) {
	b.Images = append(b.Images, images...)
}

// ReplaceImages swaps the staged carousel wholesale.
func (b *EditBuffer) ReplaceImages(images []models.Image) {
	b.Images = cloneImages(images)
}

// Input snapshots the buffer into the save contract. The buffer stays
// usable and disposable afterwards.
func (b *EditBuffer) Input() *models.PostInput {
	return &models.PostInput{
		ID:       b.PostID,
		Date:     b.Date,
		Images:   cloneImages(b.Images),
		Caption:  b.Caption,
		Status:   b.Status,
		Comments: cloneComments(b.Comments),
	}
}
