package rest

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/reuse-backend/internal/domain"
	"github.com/heartmarshall/reuse-backend/internal/transport/dataloader"
)

// matchView is a match as seen by one participant, with both items resolved.
type matchView struct {
	matchResponse
	CounterpartID string       `json:"counterpartId"`
	MyItem        itemSnapshot `json:"myItem"`
	TheirItem     itemSnapshot `json:"theirItem"`
}

// itemSnapshot renders an item that may have been deleted since the match.
type itemSnapshot struct {
	ID          string   `json:"id"`
	Available   bool     `json:"available"`
	Description string   `json:"description,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

type matchListResponse struct {
	Matches []matchView `json:"matches"`
}

// Matches handles GET /api/matches.
func (h *Handler) Matches(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	matches, err := h.matching.MatchesFor(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	views, err := resolveMatchViews(r.Context(), userID, matches)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, matchListResponse{Matches: views})
}

// AcceptMatch handles POST /api/matches/{id}/accept.
func (h *Handler) AcceptMatch(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.matching.AcceptMatch)
}

// RejectMatch handles POST /api/matches/{id}/reject.
func (h *Handler) RejectMatch(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.matching.RejectMatch)
}

type decisionFunc func(ctx context.Context, userID, matchID string) (*domain.Match, error)

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, fn decisionFunc) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	m, err := fn(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchResponse(m))
}

// resolveMatchViews loads every referenced item through the request's
// loader. All loads are issued before any is awaited so they share a batch.
func resolveMatchViews(ctx context.Context, userID string, matches []*domain.Match) ([]matchView, error) {
	loader := dataloader.FromContext(ctx).ItemByID
	views := make([]matchView, len(matches))

	g, gctx := errgroup.WithContext(ctx)
	for i, m := range matches {
		counterpartID, theirItemID := m.Counterpart(userID)
		myItemID := m.ItemAID
		if theirItemID == m.ItemAID {
			myItemID = m.ItemBID
		}

		mine := loader.Load(gctx, myItemID)
		theirs := loader.Load(gctx, theirItemID)

		g.Go(func() error {
			my, err := mine()
			if err != nil {
				return err
			}
			their, err := theirs()
			if err != nil {
				return err
			}
			views[i] = matchView{
				matchResponse: toMatchResponse(m),
				CounterpartID: counterpartID,
				MyItem:        toSnapshot(myItemID, my),
				TheirItem:     toSnapshot(theirItemID, their),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

func toSnapshot(id string, item *domain.Item) itemSnapshot {
	if item == nil {
		return itemSnapshot{ID: id}
	}
	return itemSnapshot{
		ID:          item.ID,
		Available:   true,
		Description: item.Description,
		Categories:  item.Categories,
	}
}
