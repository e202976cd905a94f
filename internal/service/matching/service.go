// Package matching is the mutual-interest matching engine. It records likes
// in an append-only ledger, detects reciprocal interest between two items and
// commits at most one match per unordered item pair.
package matching

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

type likeRepo interface {
	Append(ctx context.Context, like *domain.Like) error
	ListByTarget(ctx context.Context, itemID string) ([]*domain.Like, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Like, error)
}

type matchRepo interface {
	Create(ctx context.Context, m *domain.Match) error
	GetByPairKey(ctx context.Context, pairKey string) (*domain.Match, error)
	GetByID(ctx context.Context, id string) (*domain.Match, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Match, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.MatchStatus, at time.Time) (*domain.Match, error)
}

type itemCatalog interface {
	GetItem(ctx context.Context, id string) (*domain.Item, error)
}

type matchNotifier interface {
	MatchCreated(ctx context.Context, m *domain.Match) error
}

// Engine orchestrates a single user action (a swipe) through the like
// ledger, reciprocity detection and the match ledger.
type Engine struct {
	catalog  itemCatalog
	likes    *LikeLedger
	matches  *MatchLedger
	notifier matchNotifier
	log      *slog.Logger
	now      func() time.Time
}

// NewEngine creates a new matching Engine.
func NewEngine(
	log *slog.Logger,
	catalog itemCatalog,
	likes likeRepo,
	matches matchRepo,
	notifier matchNotifier,
) *Engine {
	return &Engine{
		catalog:  catalog,
		likes:    NewLikeLedger(likes),
		matches:  NewMatchLedger(matches),
		notifier: notifier,
		log:      log.With("service", "matching"),
		now:      time.Now,
	}
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
