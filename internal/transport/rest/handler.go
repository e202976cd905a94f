package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/reuse-backend/internal/auth"
	"github.com/heartmarshall/reuse-backend/internal/domain"
	"github.com/heartmarshall/reuse-backend/internal/service/catalog"
	"github.com/heartmarshall/reuse-backend/internal/service/feed"
	"github.com/heartmarshall/reuse-backend/internal/service/matching"
)

const maxBodyBytes = 64 << 10

type itemService interface {
	CreateItem(ctx context.Context, ownerID string, input catalog.CreateItemInput) (*domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	GetItemsByOwner(ctx context.Context, ownerID string) ([]*domain.Item, error)
	DeleteItem(ctx context.Context, requesterID, itemID string) error
}

type feedService interface {
	Candidates(ctx context.Context, userID string, filter feed.Filter) ([]*domain.Item, error)
	NextCandidate(ctx context.Context, userID string, filter feed.Filter) (*domain.Item, error)
}

type matchingService interface {
	RecordInterest(ctx context.Context, likingUserID, sourceItemID, targetItemID string) (*matching.InterestResult, error)
	MatchesFor(ctx context.Context, userID string) ([]*domain.Match, error)
	LikesBy(ctx context.Context, userID string) ([]*domain.Like, error)
	AcceptMatch(ctx context.Context, userID, matchID string) (*domain.Match, error)
	RejectMatch(ctx context.Context, userID, matchID string) (*domain.Match, error)
}

// Handler serves the /api endpoints.
type Handler struct {
	items    itemService
	feed     feedService
	matching matchingService
	log      *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(items itemService, feed feedService, matching matchingService, logger *slog.Logger) *Handler {
	return &Handler{
		items:    items,
		feed:     feed,
		matching: matching,
		log:      logger.With("handler", "api"),
	}
}

// currentUser returns the authenticated user or writes a 401.
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
		return "", false
	}
	return userID, true
}
