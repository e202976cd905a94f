package rest

import (
	"net/http"
	"time"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

type swipeRequest struct {
	SourceItemID string `json:"sourceItemId"`
	TargetItemID string `json:"targetItemId"`
}

type swipeResponse struct {
	Matched bool           `json:"matched"`
	Created bool           `json:"created"`
	Like    likeResponse   `json:"like"`
	Match   *matchResponse `json:"match,omitempty"`
}

type likeResponse struct {
	ID           string    `json:"id"`
	LikingUserID string    `json:"likingUserId"`
	SourceItemID string    `json:"sourceItemId"`
	TargetItemID string    `json:"targetItemId"`
	CreatedAt    time.Time `json:"createdAt"`
}

type likeListResponse struct {
	Likes []likeResponse `json:"likes"`
}

type matchResponse struct {
	ID        string    `json:"id"`
	ThreadKey string    `json:"threadKey"`
	UserAID   string    `json:"userAId"`
	ItemAID   string    `json:"itemAId"`
	UserBID   string    `json:"userBId"`
	ItemBID   string    `json:"itemBId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Swipe handles POST /api/swipes: the current user offers sourceItemId in
// exchange for targetItemId.
func (h *Handler) Swipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req swipeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	result, err := h.matching.RecordInterest(r.Context(), userID, req.SourceItemID, req.TargetItemID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := swipeResponse{
		Matched: result.Matched,
		Created: result.Created,
		Like:    toLikeResponse(result.Like),
	}
	if result.Match != nil {
		m := toMatchResponse(result.Match)
		resp.Match = &m
	}

	writeJSON(w, http.StatusCreated, resp)
}

// MyLikes handles GET /api/likes/mine.
func (h *Handler) MyLikes(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	likes, err := h.matching.LikesBy(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]likeResponse, len(likes))
	for i, l := range likes {
		out[i] = toLikeResponse(l)
	}
	writeJSON(w, http.StatusOK, likeListResponse{Likes: out})
}

func toLikeResponse(l *domain.Like) likeResponse {
	return likeResponse{
		ID:           l.ID,
		LikingUserID: l.LikingUserID,
		SourceItemID: l.SourceItemID,
		TargetItemID: l.TargetItemID,
		CreatedAt:    l.CreatedAt,
	}
}

func toMatchResponse(m *domain.Match) matchResponse {
	return matchResponse{
		ID:        m.ID,
		ThreadKey: m.PairKey,
		UserAID:   m.UserAID,
		ItemAID:   m.ItemAID,
		UserBID:   m.UserBID,
		ItemBID:   m.ItemBID,
		Status:    m.Status.String(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
