// Package like implements the append-only like ledger using PostgreSQL.
package like

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/reuse-backend/internal/adapter/postgres"
	"github.com/heartmarshall/reuse-backend/internal/domain"
)

const table = "likes"

var columns = []string{"id", "liking_user_id", "source_item_id", "target_item_id", "created_at"}

// Repo provides like persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new like repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append inserts a like as a single statement. Identical likes with distinct
// IDs are both kept.
func (r *Repo) Append(ctx context.Context, like *domain.Like) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(like.ID, like.LikingUserID, like.SourceItemID, like.TargetItemID, like.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert like: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "like", like.ID)
	}
	return nil
}

// ListByTarget returns every like targeting itemID, oldest first.
func (r *Repo) ListByTarget(ctx context.Context, itemID string) ([]*domain.Like, error) {
	return r.listWhere(ctx, "list likes by target", sq.Eq{"target_item_id": itemID})
}

// ListByUser returns every like placed by userID, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]*domain.Like, error) {
	return r.listWhere(ctx, "list likes by user", sq.Eq{"liking_user_id": userID})
}

func (r *Repo) listWhere(ctx context.Context, op string, pred sq.Sqlizer) ([]*domain.Like, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(pred).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	likes := make([]*domain.Like, 0)
	for rows.Next() {
		l, err := scanLike(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		likes = append(likes, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return likes, nil
}

func scanLike(row pgx.Row) (*domain.Like, error) {
	var l domain.Like
	if err := row.Scan(&l.ID, &l.LikingUserID, &l.SourceItemID, &l.TargetItemID, &l.CreatedAt); err != nil {
		return nil, err
	}
	l.CreatedAt = l.CreatedAt.UTC()
	return &l, nil
}
