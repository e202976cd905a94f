package domain

import (
	"fmt"
	"time"
)

const pairKeySeparator = "|"

// PairKey returns the canonical key of an unordered item pair.
func PairKey(itemX, itemY string) string {
	if itemY < itemX {
		itemX, itemY = itemY, itemX
	}
	return itemX + pairKeySeparator + itemY
}

// Match is a confirmed reciprocal interest between two users over two items.
// Side A always holds the item with the lexicographically smaller ID, so the
// record does not depend on which like closed the pair.
type Match struct {
	ID        string
	PairKey   string
	UserAID   string
	ItemAID   string
	UserBID   string
	ItemBID   string
	Status    MatchStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMatch builds a pending match between two items. Both user IDs come from
// the item owners.
func NewMatch(id string, itemX, itemY *Item, now time.Time) (*Match, error) {
	if itemX == nil || itemY == nil {
		return nil, NewValidationError("item", "both items required")
	}
	if itemX.ID == itemY.ID {
		return nil, fmt.Errorf("item %s matched with itself: %w", itemX.ID, ErrInvalidLike)
	}
	if itemX.OwnerID == itemY.OwnerID {
		return nil, fmt.Errorf("items %s and %s share owner %s: %w", itemX.ID, itemY.ID, itemX.OwnerID, ErrInvalidLike)
	}

	a, b := itemX, itemY
	if b.ID < a.ID {
		a, b = b, a
	}

	now = now.UTC()
	return &Match{
		ID:        id,
		PairKey:   PairKey(a.ID, b.ID),
		UserAID:   a.OwnerID,
		ItemAID:   a.ID,
		UserBID:   b.OwnerID,
		ItemBID:   b.ID,
		Status:    MatchStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Involves reports whether userID is one of the two participants.
func (m *Match) Involves(userID string) bool {
	return m.UserAID == userID || m.UserBID == userID
}

// Counterpart returns the other participant's user and item IDs.
func (m *Match) Counterpart(userID string) (otherUserID, otherItemID string) {
	if m.UserAID == userID {
		return m.UserBID, m.ItemBID
	}
	return m.UserAID, m.ItemAID
}

// NewerThan orders matches newest first; ties fall back to the higher ID.
func (m *Match) NewerThan(other *Match) bool {
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return m.CreatedAt.After(other.CreatedAt)
	}
	return m.ID > other.ID
}

// ReciprocalPair is the outcome of reciprocity detection: the like that was
// just recorded and the earliest like closing the pair from the other side.
type ReciprocalPair struct {
	Like       *Like
	Reciprocal *Like
}
