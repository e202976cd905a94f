package rest

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/reuse-backend/internal/domain"
	"github.com/heartmarshall/reuse-backend/internal/service/catalog"
)

type createItemRequest struct {
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

type itemResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Description string    `json:"description"`
	Categories  []string  `json:"categories"`
	CreatedAt   time.Time `json:"createdAt"`
}

type itemListResponse struct {
	Items []itemResponse `json:"items"`
}

// CreateItem handles POST /api/items.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req createItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	item, err := h.items.CreateItem(r.Context(), userID, catalog.CreateItemInput{
		Description: req.Description,
		Categories:  req.Categories,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// MyItems handles GET /api/items/mine.
func (h *Handler) MyItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	items, err := h.items.GetItemsByOwner(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemList(items))
}

// GetItem handles GET /api/items/{id}.
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.items.GetItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// DeleteItem handles DELETE /api/items/{id}.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.items.DeleteItem(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toItemResponse(item *domain.Item) itemResponse {
	categories := item.Categories
	if categories == nil {
		categories = []string{}
	}
	return itemResponse{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Description: item.Description,
		Categories:  categories,
		CreatedAt:   item.CreatedAt,
	}
}

func toItemList(items []*domain.Item) itemListResponse {
	out := make([]itemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return itemListResponse{Items: out}
}
