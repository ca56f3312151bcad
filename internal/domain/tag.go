package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReviewStatus is the lifecycle state of a tag suggestion.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

// ParseReviewStatus converts a wire string into a ReviewStatus. Only the two
// terminal states are valid review verdicts; anything else (including
// "pending") is rejected with ErrValidation.
func ParseReviewStatus(s string) (ReviewStatus, error) {
	switch ReviewStatus(s) {
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", fmt.Errorf("%w: unknown review status %q", ErrValidation, s)
	}
}

// TagSuggestion is a proposed descriptive tag for an image, awaiting review.
// ReviewedBy and ReviewedAt are unset until the suggestion is reviewed.
// swagger:model TagSuggestion
type TagSuggestion struct {
	ID          string       `json:"id"`
	ImageID     string       `json:"image_id"`
	Tag         string       `json:"tag"`
	SuggestedBy string       `json:"suggested_by"`
	SuggestedAt time.Time    `json:"suggested_at"`
	Status      ReviewStatus `json:"status"`
	ReviewedBy  string       `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time   `json:"reviewed_at,omitempty"`
}

// Clone returns a copy sharing no memory with the receiver.
func (t TagSuggestion) Clone() TagSuggestion {
	out := t
	if t.ReviewedAt != nil {
		at := *t.ReviewedAt
		out.ReviewedAt = &at
	}
	return out
}

// NewTagSuggestion returns a pending TagSuggestion with a fresh id.
func NewTagSuggestion(imageID, tag, suggestedBy string) TagSuggestion {
	return TagSuggestion{
		ID:          uuid.NewString(),
		ImageID:     imageID,
		Tag:         tag,
		SuggestedBy: suggestedBy,
		SuggestedAt: time.Now().UTC(),
		Status:      StatusPending,
	}
}

// ApprovedTag is the durable tag created when a suggestion is approved. It is
// a distinct entity from its originating suggestion. Upvotes never goes below
// zero.
// swagger:model ApprovedTag
type ApprovedTag struct {
	ID         string    `json:"id"`
	ImageID    string    `json:"image_id"`
	Tag        string    `json:"tag"`
	ApprovedBy string    `json:"approved_by"`
	ApprovedAt time.Time `json:"approved_at"`
	Upvotes    int       `json:"upvotes"`
}

// NewApprovedTag returns an ApprovedTag with a fresh id and zero upvotes.
func NewApprovedTag(imageID, tag, approvedBy string) ApprovedTag {
	return ApprovedTag{
		ID:         uuid.NewString(),
		ImageID:    imageID,
		Tag:        tag,
		ApprovedBy: approvedBy,
		ApprovedAt: time.Now().UTC(),
	}
}

// TagUpvote records that a user has upvoted an approved tag. At most one
// exists per (tag id, user id) pair; a second toggle removes it.
// swagger:model TagUpvote
type TagUpvote struct {
	ID        string    `json:"id"`
	TagID     string    `json:"tag_id"`
	UserID    string    `json:"user_id"`
	UpvotedAt time.Time `json:"upvoted_at"`
}

// NewTagUpvote returns a TagUpvote with a fresh id.
func NewTagUpvote(tagID, userID string) TagUpvote {
	return TagUpvote{
		ID:        uuid.NewString(),
		TagID:     tagID,
		UserID:    userID,
		UpvotedAt: time.Now().UTC(),
	}
}
