package feed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

// Candidates returns up to filter.Limit eligible items, oldest first.
func (s *Service) Candidates(ctx context.Context, userID string, filter Filter) ([]*domain.Item, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.collect(ctx, userID, filter.Categories, s.limit(filter.Limit))
}

// NextCandidate returns the first eligible item, or nil when the user has
// swiped through everything.
func (s *Service) NextCandidate(ctx context.Context, userID string, filter Filter) (*domain.Item, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrUnauthorized
	}
	items, err := s.collect(ctx, userID, filter.Categories, 1)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

func (s *Service) collect(ctx context.Context, userID string, categories []string, limit int) ([]*domain.Item, error) {
	var (
		items []*domain.Item
		likes []*domain.Like
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		items, err = s.items.ListOthers(gctx, userID, categories)
		if err != nil {
			return fmt.Errorf("list items: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		likes, err = s.likes.LikesBy(gctx, userID)
		if err != nil {
			return fmt.Errorf("list likes: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	swiped := make(map[string]struct{}, len(likes))
	for _, l := range likes {
		swiped[l.TargetItemID] = struct{}{}
	}

	out := make([]*domain.Item, 0, min(limit, len(items)))
	for _, it := range items {
		if len(out) == limit {
			break
		}
		if it.OwnedBy(userID) {
			continue
		}
		if _, ok := swiped[it.ID]; ok {
			continue
		}
		out = append(out, it)
	}

	s.log.DebugContext(ctx, "feed built",
		slog.String("user_id", userID),
		slog.Int("listed", len(items)),
		slog.Int("swiped", len(swiped)),
		slog.Int("returned", len(out)),
	)

	return out, nil
}
