package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.Date.IsZero() {
		return errors.New("date cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
}

// Day returns the post's date truncated to its calendar day.
func (p *Post) Day() time.Time {
	y, m, d := p.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, p.Date.Location())
}

// AddComment appends a comment to the post's thread
func (p *Post) AddComment(comment *Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}
	if err := comment.Validate(); err != nil {
		return err
	}

	p.Comments = append(p.Comments, comment)
	return nil
}
