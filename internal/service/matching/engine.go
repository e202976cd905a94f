package matching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

// InterestResult is the outcome of a swipe. Match is set whenever Matched is
// true; Created tells whether this call committed it.
type InterestResult struct {
	Like    *domain.Like
	Matched bool
	Match   *domain.Match
	Created bool
}

// RecordInterest records that likingUserID offers sourceItemID in exchange
// for targetItemID, and commits a match when the target's owner has already
// expressed the reciprocal interest.
//
// The like is persisted before reciprocity is checked, so of two concurrent
// reciprocal swipes the later one always observes the earlier like. A lost
// race on match creation is absorbed by returning the winner's match.
func (e *Engine) RecordInterest(ctx context.Context, likingUserID, sourceItemID, targetItemID string) (*InterestResult, error) {
	if err := validateInterest(likingUserID, sourceItemID, targetItemID); err != nil {
		return nil, err
	}

	target, err := e.loadItem(ctx, targetItemID)
	if err != nil {
		return nil, err
	}
	source, err := e.loadItem(ctx, sourceItemID)
	if err != nil {
		return nil, err
	}

	like, err := e.likes.RecordLike(ctx, likingUserID, source, target)
	if err != nil {
		return nil, err
	}

	e.log.InfoContext(ctx, "like recorded",
		slog.String("user_id", likingUserID),
		slog.String("like_id", like.ID),
		slog.String("source_item_id", source.ID),
		slog.String("target_item_id", target.ID),
	)

	candidates, err := e.likes.LikesTargeting(ctx, source.ID)
	if err != nil {
		return nil, err
	}

	pair, ok := DetectReciprocity(like, target.OwnerID, candidates)
	if !ok {
		return &InterestResult{Like: like}, nil
	}

	match, created, err := e.commitMatch(ctx, source, target)
	if err != nil {
		return nil, err
	}

	if created {
		e.log.InfoContext(ctx, "match created",
			slog.String("match_id", match.ID),
			slog.String("pair_key", match.PairKey),
			slog.String("like_id", pair.Like.ID),
			slog.String("reciprocal_like_id", pair.Reciprocal.ID),
		)
		e.notify(ctx, match)
	}

	return &InterestResult{
		Like:    like,
		Matched: true,
		Match:   match,
		Created: created,
	}, nil
}

// MatchesFor returns the matches userID participates in, newest first.
func (e *Engine) MatchesFor(ctx context.Context, userID string) ([]*domain.Match, error) {
	return e.matches.MatchesFor(ctx, userID)
}

// LikesBy returns the likes userID has placed, oldest first.
func (e *Engine) LikesBy(ctx context.Context, userID string) ([]*domain.Like, error) {
	return e.likes.LikesBy(ctx, userID)
}

// commitMatch returns the pair's match, creating it when absent.
func (e *Engine) commitMatch(ctx context.Context, source, target *domain.Item) (*domain.Match, bool, error) {
	existing, err := e.matches.Find(ctx, source.ID, target.ID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	match, err := e.matches.CreateMatch(ctx, source, target)
	if err == nil {
		return match, true, nil
	}
	if !errors.Is(err, domain.ErrDuplicateMatch) {
		return nil, false, err
	}

	e.log.DebugContext(ctx, "lost match creation race",
		slog.String("pair_key", domain.PairKey(source.ID, target.ID)),
	)

	existing, err = e.matches.Find(ctx, source.ID, target.ID)
	if err != nil {
		return nil, false, fmt.Errorf("re-read match after conflict: %w", err)
	}
	return existing, false, nil
}

func (e *Engine) loadItem(ctx context.Context, id string) (*domain.Item, error) {
	item, err := e.catalog.GetItem(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("item %s: %w", id, domain.ErrItemNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load item %s: %w", id, err)
	}
	return item, nil
}

func (e *Engine) notify(ctx context.Context, m *domain.Match) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.MatchCreated(ctx, m); err != nil {
		e.log.WarnContext(ctx, "match notification failed",
			slog.String("match_id", m.ID),
			slog.String("error", err.Error()),
		)
	}
}

func validateInterest(likingUserID, sourceItemID, targetItemID string) error {
	var errs []domain.FieldError
	if strings.TrimSpace(likingUserID) == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if strings.TrimSpace(sourceItemID) == "" {
		errs = append(errs, domain.FieldError{Field: "source_item_id", Message: "required"})
	}
	if strings.TrimSpace(targetItemID) == "" {
		errs = append(errs, domain.FieldError{Field: "target_item_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
