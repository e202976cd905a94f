// Package match implements the Match ledger using PostgreSQL. The unique
// index on pair_key makes match creation exclusive per item pair.
package match

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/reuse-backend/internal/adapter/postgres"
	"github.com/heartmarshall/reuse-backend/internal/domain"
)

const table = "matches"

var columns = []string{
	"id", "pair_key", "user_a_id", "item_a_id", "user_b_id", "item_b_id",
	"status", "created_at", "updated_at",
}

// Repo provides match persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new match repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts m unless a match for the same pair already exists, in which
// case it returns domain.ErrDuplicateMatch and writes nothing.
func (r *Repo) Create(ctx context.Context, m *domain.Match) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(m.ID, m.PairKey, m.UserAID, m.ItemAID, m.UserBID, m.ItemBID,
			string(m.Status), m.CreatedAt, m.UpdatedAt).
		Suffix("ON CONFLICT (pair_key) DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert match: %w", err)
	}

	var id string
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("match %s: %w", m.PairKey, domain.ErrDuplicateMatch)
	}
	if err != nil {
		return postgres.MapError(err, "match", m.PairKey)
	}
	return nil
}

// GetByPairKey returns the match for a canonical pair key or domain.ErrNotFound.
func (r *Repo) GetByPairKey(ctx context.Context, pairKey string) (*domain.Match, error) {
	return r.getWhere(ctx, sq.Eq{"pair_key": pairKey}, pairKey)
}

// GetByID returns a match by primary key or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	return r.getWhere(ctx, sq.Eq{"id": id}, id)
}

// ListByUser returns matches where userID is either participant, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]*domain.Match, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Or{sq.Eq{"user_a_id": userID}, sq.Eq{"user_b_id": userID}}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list matches: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list matches by user: %w", err)
	}
	defer rows.Close()

	matches := make([]*domain.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("list matches by user: scan: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list matches by user: %w", err)
	}

	return matches, nil
}

// UpdateStatus moves a match from one status to another. The update is
// conditional on the current status; when the match is not in from it
// returns domain.ErrConflict.
func (r *Repo) UpdateStatus(ctx context.Context, id string, from, to domain.MatchStatus, at time.Time) (*domain.Match, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(to)).
		Set("updated_at", at.UTC()).
		Where(sq.Eq{"id": id, "status": string(from)}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update match status: %w", err)
	}

	m, err := scanMatch(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("match %s not %s: %w", id, from, domain.ErrConflict)
	}
	if err != nil {
		return nil, postgres.MapError(err, "match", id)
	}
	return m, nil
}

func (r *Repo) getWhere(ctx context.Context, pred sq.Sqlizer, key string) (*domain.Match, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select match: %w", err)
	}

	m, err := scanMatch(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "match", key)
	}
	return m, nil
}

func scanMatch(row pgx.Row) (*domain.Match, error) {
	var (
		m      domain.Match
		status string
	)
	if err := row.Scan(&m.ID, &m.PairKey, &m.UserAID, &m.ItemAID, &m.UserBID, &m.ItemBID,
		&status, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Status = domain.MatchStatus(status)
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return &m, nil
}
