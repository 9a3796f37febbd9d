package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewComment builds a comment from user input. Text is trimmed; blank or
// whitespace-only text is rejected.
func NewComment(author AuthorRole, text string) (*Comment, error) {
	if !author.Valid() {
		return nil, errors.New("author must be designer or reviewer")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("comment text cannot be blank")
	}

	return &Comment{
		ID:        uuid.NewString(),
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
	}, nil
}

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if strings.TrimSpace(c.Text) == "" {
		return errors.New("comment text cannot be blank")
	}
	if c.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
}
