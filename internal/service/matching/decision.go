package matching

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

// AcceptMatch marks a pending match as accepted by one of its participants.
func (e *Engine) AcceptMatch(ctx context.Context, userID, matchID string) (*domain.Match, error) {
	return e.decide(ctx, userID, matchID, domain.MatchStatusAccepted)
}

// RejectMatch marks a pending match as rejected by one of its participants.
func (e *Engine) RejectMatch(ctx context.Context, userID, matchID string) (*domain.Match, error) {
	return e.decide(ctx, userID, matchID, domain.MatchStatusRejected)
}

func (e *Engine) decide(ctx context.Context, userID, matchID string, to domain.MatchStatus) (*domain.Match, error) {
	if matchID == "" {
		return nil, domain.NewValidationError("match_id", "required")
	}

	m, err := e.matches.Get(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.Involves(userID) {
		return nil, fmt.Errorf("user %s is not part of match %s: %w", userID, matchID, domain.ErrForbidden)
	}
	if m.Status != domain.MatchStatusPending {
		return nil, fmt.Errorf("match %s already %s: %w", matchID, m.Status, domain.ErrConflict)
	}

	updated, err := e.matches.Transition(ctx, matchID, domain.MatchStatusPending, to)
	if err != nil {
		return nil, err
	}

	e.log.InfoContext(ctx, "match decided",
		slog.String("user_id", userID),
		slog.String("match_id", matchID),
		slog.String("status", to.String()),
	)

	return updated, nil
}
