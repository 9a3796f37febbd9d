package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewComment(t *testing.T) {
	t.Run("trims text and stamps fields", func(t *testing.T) {
		comment, err := NewComment(RoleDesigner, "  looks good to me  ")
		assert.NoError(t, err)
		assert.Equal(t, "looks good to me", comment.Text)
		assert.Equal(t, RoleDesigner, comment.Author)
		assert.NotEmpty(t, comment.ID)
		assert.False(t, comment.CreatedAt.IsZero())
	})

	t.Run("rejects blank text", func(t *testing.T) {
		_, err := NewComment(RoleReviewer, "   \t\n ")
		assert.Error(t, err)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		_, err := NewComment(RoleReviewer, "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown author", func(t *testing.T) {
		_, err := NewComment(AuthorRole("editor"), "hello")
		assert.Error(t, err)
	})
}

func TestCommentValidate(t *testing.T) {
	comment := &Comment{
		ID:        "c-1",
		Author:    RoleReviewer,
		Text:      "swap image two and three",
		CreatedAt: time.Now(),
	}
	assert.NoError(t, comment.Validate())

	t.Run("whitespace-only text fails", func(t *testing.T) {
		bad := *comment
		bad.Text = "   "
		assert.Error(t, bad.Validate())
	})

	t.Run("zero created_at fails", func(t *testing.T) {
		bad := *comment
		bad.CreatedAt = time.Time{}
		assert.Error(t, bad.Validate())
	})
}

func TestCommentBeforeCreate(t *testing.T) {
	comment := &Comment{Author: RoleDesigner, Text: "hi"}
	comment.BeforeCreate()
	assert.NotEmpty(t, comment.ID)
	assert.False(t, comment.CreatedAt.IsZero())

	id := comment.ID
	comment.BeforeCreate()
	assert.Equal(t, id, comment.ID)
}
