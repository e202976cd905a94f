package rest

import (
	"net/http"
	"strconv"

	"github.com/heartmarshall/reuse-backend/internal/domain"
	"github.com/heartmarshall/reuse-backend/internal/service/feed"
)

// Feed handles GET /api/feed?category=a&category=b&limit=n.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items, err := h.feed.Candidates(r.Context(), userID, filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemList(items))
}

// NextCandidate handles GET /api/feed/next. Responds 204 when the feed is
// exhausted.
func (h *Handler) NextCandidate(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	item, err := h.feed.NextCandidate(r.Context(), userID, filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if item == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

func parseFilter(r *http.Request) (feed.Filter, error) {
	q := r.URL.Query()
	filter := feed.Filter{Categories: q["category"]}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return feed.Filter{}, domain.NewValidationError("limit", "must be a non-negative integer")
		}
		filter.Limit = limit
	}
	return filter, nil
}
