package domain

import (
	"fmt"
	"time"
)

// Like is a one-directional, immutable expression of interest: LikingUserID
// offers SourceItemID (their own item) in exchange for TargetItemID.
type Like struct {
	ID           string
	LikingUserID string
	SourceItemID string
	TargetItemID string
	CreatedAt    time.Time
}

// NewLike builds a Like from the two resolved items. It returns
// ErrInvalidLike when the liker owns the target or does not own the source.
func NewLike(id, likingUserID string, source, target *Item, now time.Time) (*Like, error) {
	if likingUserID == "" {
		return nil, NewValidationError("liking_user_id", "required")
	}
	if source == nil || target == nil {
		return nil, NewValidationError("item", "source and target required")
	}
	if target.OwnedBy(likingUserID) {
		return nil, fmt.Errorf("user %s likes own item %s: %w", likingUserID, target.ID, ErrInvalidLike)
	}
	if !source.OwnedBy(likingUserID) {
		return nil, fmt.Errorf("user %s offers foreign item %s: %w", likingUserID, source.ID, ErrInvalidLike)
	}

	return &Like{
		ID:           id,
		LikingUserID: likingUserID,
		SourceItemID: source.ID,
		TargetItemID: target.ID,
		CreatedAt:    now.UTC(),
	}, nil
}

// Before orders likes oldest first; ties on CreatedAt fall back to the lower ID.
func (l *Like) Before(other *Like) bool {
	if !l.CreatedAt.Equal(other.CreatedAt) {
		return l.CreatedAt.Before(other.CreatedAt)
	}
	return l.ID < other.ID
}
