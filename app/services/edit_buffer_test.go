package services

import (
	"testing"
	"time"

	"github.com/arypfer/Proty-Content-Calendar/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEditBuffer(t *testing.T) {
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	buf := NewEditBuffer(date)

	assert.Empty(t, buf.PostID)
	assert.True(t, date.Equal(buf.Date))
	assert.Equal(t, models.StatusDraft, buf.Status)
	assert.Empty(t, buf.Images)
	assert.Empty(t, buf.Comments)
}

func TestEditBufferFromPostDoesNotAlias(t *testing.T) {
	comment, err := models.NewComment(models.RoleDesigner, "original note")
	require.NoError(t, err)

	post := &models.Post{
		ID:       "p-1",
		Date:     time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Caption:  "original",
		Status:   models.StatusPendingReview,
		Comments: []*models.Comment{comment},
		Images: []models.Image{
			{MIMEType: "image/png", Data: []byte{1, 2, 3}},
		},
	}

	buf := EditBufferFromPost(post)
	assert.Equal(t, post.ID, buf.PostID)
	assert.Equal(t, post.Caption, buf.Caption)
	assert.Equal(t, post.Status, buf.Status)
	require.Len(t, buf.Comments, 1)

	// Staged edits stay in the buffer until an explicit save.
	buf.SetCaption("edited")
	require.NoError(t, buf.SetStatus(models.StatusApproved))
	_, err = buf.AddComment(models.RoleReviewer, "buffered note")
	require.NoError(t, err)
	buf.Comments[0].Text = "tampered"

	assert.Equal(t, "original", post.Caption)
	assert.Equal(t, models.StatusPendingReview, post.Status)
	assert.Len(t, post.Comments, 1)
	assert.Equal(t, "original note", post.Comments[0].Text)
}

func TestEditBufferAddComment(t *testing.T) {
	buf := NewEditBuffer(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))

	t.Run("appends trimmed comment with id and timestamp", func(t *testing.T) {
		comment, err := buf.AddComment(models.RoleReviewer, "  please brighten  ")
		require.NoError(t, err)
		assert.Equal(t, "please brighten", comment.Text)
		assert.NotEmpty(t, comment.ID)
		assert.False(t, comment.CreatedAt.IsZero())
		assert.Len(t, buf.Comments, 1)
	})

	t.Run("blank text is rejected, buffer unchanged", func(t *testing.T) {
		before := len(buf.Comments)
		_, err := buf.AddComment(models.RoleDesigner, "   \n\t ")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Len(t, buf.Comments, before)
	})

	t.Run("unknown author is rejected", func(t *testing.T) {
		before := len(buf.Comments)
		_, err := buf.AddComment("editor", "valid text")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Len(t, buf.Comments, before)
	})

	t.Run("comments keep insertion order", func(t *testing.T) {
		first, err := buf.AddComment(models.RoleDesigner, "first")
		require.NoError(t, err)
		second, err := buf.AddComment(models.RoleReviewer, "second")
		require.NoError(t, err)

		n := len(buf.Comments)
		assert.Equal(t, first.ID, buf.Comments[n-2].ID)
		assert.Equal(t, second.ID, buf.Comments[n-1].ID)
	})
}

func TestEditBufferSetters(t *testing.T) {
	buf := NewEditBuffer(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))

	t.Run("rejects unknown status", func(t *testing.T) {
		err := buf.SetStatus("published")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, models.StatusDraft, buf.Status)
	})

	t.Run("rejects zero date", func(t *testing.T) {
		err := buf.SetDate(time.Time{})
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.False(t, buf.Date.IsZero())
	})

	t.Run("images keep carousel order", func(t *testing.T) {
		buf.AddImages(models.Image{MIMEType: "image/png", Data: []byte{1}})
		buf.AddImages(
			models.Image{MIMEType: "image/jpeg", Data: []byte{2}},
			models.Image{MIMEType: "image/png", Data: []byte{3}},
		)
		require.Len(t, buf.Images, 3)
		assert.Equal(t, []byte{1}, buf.Images[0].Data)
		assert.Equal(t, []byte{2}, buf.Images[1].Data)
		assert.Equal(t, []byte{3}, buf.Images[2].Data)
	})
}

func TestEditBufferCommitThroughService(t *testing.T) {
	repo := newMockPostRepo()
	service := NewPostService(repo)

	// Create flow: buffer for a pre-selected day, then save.
	buf := NewEditBuffer(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	buf.SetCaption("spring teaser")
	_, err := buf.AddComment(models.RoleDesigner, "v1 attached")
	require.NoError(t, err)

	created, err := service.Save(buf.Input())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "spring teaser", created.Caption)
	require.Len(t, created.Comments, 1)

	// Edit flow: reopen, stage, save again. The id must be preserved.
	reopened := EditBufferFromPost(created)
	require.NoError(t, reopened.SetStatus(models.StatusApproved))
	updated, err := service.Save(reopened.Input())
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, models.StatusApproved, updated.Status)

	posts, err := service.List()
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}
