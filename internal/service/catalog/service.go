package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

type itemRepo interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Item, error)
	ListExcludingOwner(ctx context.Context, ownerID string, categories []string) ([]*domain.Item, error)
	Delete(ctx context.Context, id string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the item catalog: it registers, resolves and removes items.
// It never touches likes or matches.
type Service struct {
	items itemRepo
	tx    txManager
	log   *slog.Logger
	now   func() time.Time
	newID func() string
}

// NewService creates a new Catalog service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	tx txManager,
) *Service {
	return &Service{
		items: items,
		tx:    tx,
		log:   log.With("service", "catalog"),
		now:   time.Now,
		newID: func() string { return uuid.Must(uuid.NewV7()).String() },
	}
}
