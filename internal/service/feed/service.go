// Package feed surfaces swipeable items to a user: items owned by someone
// else that the user has not liked yet.
package feed

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/reuse-backend/internal/config"
	"github.com/heartmarshall/reuse-backend/internal/domain"
)

type itemLister interface {
	ListOthers(ctx context.Context, userID string, categories []string) ([]*domain.Item, error)
}

type likeLister interface {
	LikesBy(ctx context.Context, userID string) ([]*domain.Like, error)
}

// Service builds discovery feeds. It holds no cursor state: every call
// recomputes the feed from the catalog and the like ledger.
type Service struct {
	items itemLister
	likes likeLister
	log   *slog.Logger
	cfg   config.FeedConfig
}

// NewService creates a new feed Service.
func NewService(
	log *slog.Logger,
	items itemLister,
	likes likeLister,
	cfg config.FeedConfig,
) *Service {
	return &Service{
		items: items,
		likes: likes,
		log:   log.With("service", "feed"),
		cfg:   cfg,
	}
}

// Filter narrows a feed. Zero Limit means the configured default.
type Filter struct {
	Categories []string
	Limit      int
}

func (s *Service) limit(requested int) int {
	switch {
	case requested <= 0:
		return s.cfg.DefaultLimit
	case requested > s.cfg.MaxLimit:
		return s.cfg.MaxLimit
	default:
		return requested
	}
}
