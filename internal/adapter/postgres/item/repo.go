// Package item implements the Item repository using PostgreSQL.
package item

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/reuse-backend/internal/adapter/postgres"
	"github.com/heartmarshall/reuse-backend/internal/domain"
)

const table = "items"

var columns = []string{"id", "owner_id", "description", "categories", "created_at"}

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new item.
func (r *Repo) Create(ctx context.Context, item *domain.Item) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(item.ID, item.OwnerID, item.Description, item.Categories, item.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert item: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "item", item.ID)
	}
	return nil
}

// GetByID returns an item by primary key or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select item: %w", err)
	}

	item, err := scanItem(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}
	return item, nil
}

// GetByIDs returns the items that still exist among ids, in no particular
// order. Missing IDs are simply absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []string) ([]*domain.Item, error) {
	if len(ids) == 0 {
		return []*domain.Item{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select items: %w", err)
	}

	return r.list(ctx, "get items by ids", query, args)
}

// ListByOwner returns the owner's items, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Item, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items by owner: %w", err)
	}

	return r.list(ctx, "list items by owner", query, args)
}

// ListExcludingOwner returns items not owned by ownerID, oldest first. When
// categories is non-empty only items sharing at least one category are
// returned.
func (r *Repo) ListExcludingOwner(ctx context.Context, ownerID string, categories []string) ([]*domain.Item, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.NotEq{"owner_id": ownerID}).
		OrderBy("created_at ASC", "id ASC")

	if len(categories) > 0 {
		b = b.Where(sq.Expr("categories && ?::text[]", categories))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items excluding owner: %w", err)
	}

	return r.list(ctx, "list items excluding owner", query, args)
}

// Delete removes an item. Returns domain.ErrNotFound if nothing was deleted.
// Likes and matches referencing the item are kept.
func (r *Repo) Delete(ctx context.Context, id string) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete item: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) list(ctx context.Context, op, query string, args []any) ([]*domain.Item, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	if err := row.Scan(&item.ID, &item.OwnerID, &item.Description, &item.Categories, &item.CreatedAt); err != nil {
		return nil, err
	}
	item.CreatedAt = item.CreatedAt.UTC()
	if item.Categories == nil {
		item.Categories = []string{}
	}
	return &item, nil
}
