package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

// LikeLedger is the append-only record of likes.
type LikeLedger struct {
	repo  likeRepo
	now   func() time.Time
	newID func() string
}

// NewLikeLedger creates a LikeLedger over repo.
func NewLikeLedger(repo likeRepo) *LikeLedger {
	return &LikeLedger{repo: repo, now: time.Now, newID: newID}
}

// RecordLike validates and appends a like. A self-like or a foreign source
// item fails with domain.ErrInvalidLike before anything is written. Repeated
// identical likes are appended, not rejected.
func (l *LikeLedger) RecordLike(ctx context.Context, likingUserID string, source, target *domain.Item) (*domain.Like, error) {
	like, err := domain.NewLike(l.newID(), likingUserID, source, target, l.now())
	if err != nil {
		return nil, err
	}
	if err := l.repo.Append(ctx, like); err != nil {
		return nil, fmt.Errorf("append like: %w", err)
	}
	return like, nil
}

// LikesTargeting returns every like whose target is itemID, oldest first.
func (l *LikeLedger) LikesTargeting(ctx context.Context, itemID string) ([]*domain.Like, error) {
	likes, err := l.repo.ListByTarget(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list likes targeting %s: %w", itemID, err)
	}
	return likes, nil
}

// LikesBy returns every like placed by userID, oldest first.
func (l *LikeLedger) LikesBy(ctx context.Context, userID string) ([]*domain.Like, error) {
	likes, err := l.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list likes by %s: %w", userID, err)
	}
	return likes, nil
}

// MatchLedger holds committed matches, at most one per unordered item pair.
type MatchLedger struct {
	repo  matchRepo
	now   func() time.Time
	newID func() string
}

// NewMatchLedger creates a MatchLedger over repo.
func NewMatchLedger(repo matchRepo) *MatchLedger {
	return &MatchLedger{repo: repo, now: time.Now, newID: newID}
}

// HasMatch reports whether the two items are matched, in either order. The
// engine calls Find instead, since committing a match needs the stored record
// and not just its existence.
func (m *MatchLedger) HasMatch(ctx context.Context, itemA, itemB string) (bool, error) {
	_, err := m.Find(ctx, itemA, itemB)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Find returns the match for the item pair, or domain.ErrNotFound.
func (m *MatchLedger) Find(ctx context.Context, itemA, itemB string) (*domain.Match, error) {
	match, err := m.repo.GetByPairKey(ctx, domain.PairKey(itemA, itemB))
	if err != nil {
		return nil, fmt.Errorf("find match: %w", err)
	}
	return match, nil
}

// CreateMatch commits a pending match between the two items. It returns
// domain.ErrDuplicateMatch when the pair is already matched; the check and
// the insert are one atomic storage operation.
func (m *MatchLedger) CreateMatch(ctx context.Context, itemX, itemY *domain.Item) (*domain.Match, error) {
	match, err := domain.NewMatch(m.newID(), itemX, itemY, m.now())
	if err != nil {
		return nil, err
	}
	if err := m.repo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}
	return match, nil
}

// MatchesFor returns the matches userID participates in, newest first.
func (m *MatchLedger) MatchesFor(ctx context.Context, userID string) ([]*domain.Match, error) {
	matches, err := m.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list matches for %s: %w", userID, err)
	}
	return matches, nil
}

// Get returns a match by ID, or domain.ErrNotFound.
func (m *MatchLedger) Get(ctx context.Context, matchID string) (*domain.Match, error) {
	match, err := m.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	return match, nil
}

// Transition moves a match from one status to another. It fails with
// domain.ErrConflict when the match is no longer in from.
func (m *MatchLedger) Transition(ctx context.Context, matchID string, from, to domain.MatchStatus) (*domain.Match, error) {
	match, err := m.repo.UpdateStatus(ctx, matchID, from, to, m.now())
	if err != nil {
		return nil, fmt.Errorf("update match status: %w", err)
	}
	return match, nil
}
