package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewUserID returns a fresh opaque user ID.
func NewUserID() string {
	return "user-" + uniqueSuffix()
}

// SeedItem inserts an item owned by ownerID and returns it.
func SeedItem(t *testing.T, pool *pgxpool.Pool, ownerID string, categories ...string) *domain.Item {
	t.Helper()

	if len(categories) == 0 {
		categories = []string{"misc"}
	}

	item, err := domain.NewItem(uuid.Must(uuid.NewV7()).String(), ownerID, "item "+uniqueSuffix(), categories,
		time.Now().Truncate(time.Microsecond))
	if err != nil {
		t.Fatalf("testhelper: SeedItem build: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO items (id, owner_id, description, categories, created_at) VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.OwnerID, item.Description, item.Categories, item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return item
}
