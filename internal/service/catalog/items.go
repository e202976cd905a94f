package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

// CreateItem registers a new item owned by ownerID.
func (s *Service) CreateItem(ctx context.Context, ownerID string, input CreateItemInput) (*domain.Item, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := domain.NewItem(s.newID(), ownerID, input.Description, input.Categories, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.log.InfoContext(ctx, "item created",
		slog.String("user_id", ownerID),
		slog.String("item_id", item.ID),
		slog.Any("categories", item.Categories),
	)

	return item, nil
}

// GetItem resolves an item by ID. Returns domain.ErrNotFound if it does not
// exist (anymore).
func (s *Service) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("item_id", "required")
	}
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// GetItemsByOwner lists the owner's items, newest first.
func (s *Service) GetItemsByOwner(ctx context.Context, ownerID string) ([]*domain.Item, error) {
	items, err := s.items.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items by owner: %w", err)
	}
	return items, nil
}

// GetItems resolves a batch of item IDs. Missing items are omitted.
func (s *Service) GetItems(ctx context.Context, ids []string) ([]*domain.Item, error) {
	items, err := s.items.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	return items, nil
}

// ListOthers lists items not owned by userID, oldest first, optionally
// restricted to items sharing at least one of categories.
func (s *Service) ListOthers(ctx context.Context, userID string, categories []string) ([]*domain.Item, error) {
	items, err := s.items.ListExcludingOwner(ctx, userID, domain.NormalizeCategories(categories))
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// DeleteItem removes an item. Only the owner may delete it. Likes and
// matches referencing the item are retained.
func (s *Service) DeleteItem(ctx context.Context, requesterID, itemID string) error {
	if strings.TrimSpace(itemID) == "" {
		return domain.NewValidationError("item_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		item, err := s.items.GetByID(ctx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if !item.OwnedBy(requesterID) {
			return fmt.Errorf("item %s owned by another user: %w", itemID, domain.ErrForbidden)
		}
		if err := s.items.Delete(ctx, itemID); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			s.log.WarnContext(ctx, "item delete denied",
				slog.String("user_id", requesterID),
				slog.String("item_id", itemID),
			)
		}
		return err
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("user_id", requesterID),
		slog.String("item_id", itemID),
	)
	return nil
}
