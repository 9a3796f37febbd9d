package models

import "time"

// Status is the review state of a post. There is no enforced transition
// order; any value may be set at any time.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusPendingReview Status = "pending_review"
	StatusNeedsRevision Status = "needs_revision"
	StatusApproved      Status = "approved"
)

// Valid reports whether s is one of the known review states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingReview, StatusNeedsRevision, StatusApproved:
		return true
	}
	return false
}

// AuthorRole identifies which of the two fixed roles wrote a comment.
type AuthorRole string

const (
	RoleDesigner AuthorRole = "designer"
	RoleReviewer AuthorRole = "reviewer"
)

// Valid reports whether r is one of the two known roles.
func (r AuthorRole) Valid() bool {
	return r == RoleDesigner || r == RoleReviewer
}

// Image is one payload in a post's carousel. Slice order is display order.
type Image struct {
	MIMEType string `json:"mimeType" validate:"required"`
	Data     []byte `json:"data" validate:"required"`
}

// Post represents a schedulable content item anchored to one calendar day.
type Post struct {
	ID        string     `json:"id" validate:"required"`
	Seq       uint64     `json:"seq"`
	Date      time.Time  `json:"date" validate:"required"`
	Images    []Image    `json:"images" validate:"dive"`
	Caption   string     `json:"caption"`
	Status    Status     `json:"status" validate:"required,oneof=draft pending_review needs_revision approved"`
	Comments  []*Comment `json:"comments" validate:"dive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Comment is one feedback entry in a post's thread. Once appended it is
// never mutated or reordered.
type Comment struct {
	ID        string     `json:"id" validate:"required"`
	Author    AuthorRole `json:"author" validate:"required,oneof=designer reviewer"`
	Text      string     `json:"text" validate:"required"`
	CreatedAt time.Time  `json:"createdAt"`
}

// PostInput carries every mutable post field plus an optional id. An empty
// ID means "create a new post"; a set ID means "replace the mutable fields
// of the post with that id".
type PostInput struct {
	ID       string     `json:"id"`
	Date     time.Time  `json:"date"`
	Images   []Image    `json:"images"`
	Caption  string     `json:"caption"`
	Status   Status     `json:"status"`
	Comments []*Comment `json:"comments"`
}
