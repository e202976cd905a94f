package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/reuse-backend/internal/adapter/dynamo"
	"github.com/heartmarshall/reuse-backend/internal/adapter/memory"
	"github.com/heartmarshall/reuse-backend/internal/adapter/postgres"
	"github.com/heartmarshall/reuse-backend/internal/adapter/postgres/item"
	"github.com/heartmarshall/reuse-backend/internal/adapter/postgres/like"
	"github.com/heartmarshall/reuse-backend/internal/adapter/postgres/match"
	"github.com/heartmarshall/reuse-backend/internal/config"
	"github.com/heartmarshall/reuse-backend/internal/domain"
	"github.com/heartmarshall/reuse-backend/internal/transport/rest"
)

type itemStore interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Item, error)
	ListExcludingOwner(ctx context.Context, ownerID string, categories []string) ([]*domain.Item, error)
	Delete(ctx context.Context, id string) error
}

type likeStore interface {
	Append(ctx context.Context, like *domain.Like) error
	ListByTarget(ctx context.Context, itemID string) ([]*domain.Like, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Like, error)
}

type matchStore interface {
	Create(ctx context.Context, m *domain.Match) error
	GetByPairKey(ctx context.Context, pairKey string) (*domain.Match, error)
	GetByID(ctx context.Context, id string) (*domain.Match, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Match, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.MatchStatus, at time.Time) (*domain.Match, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store is the persistence backend selected by store.backend.
type Store struct {
	Backend string
	Items   itemStore
	Likes   likeStore
	Matches matchStore
	Tx      txRunner
	Ping    rest.PingFunc
	Close   func()
}

// OpenStore connects the configured backend. The caller must call Close.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		return openPostgres(ctx, cfg.Database, logger)
	case config.BackendDynamoDB:
		return openDynamo(ctx, cfg.DynamoDB)
	case config.BackendMemory:
		logger.Warn("using in-memory store, data is lost on restart")
		return MemoryStore(memory.NewStore()), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// MemoryStore wraps an in-process store.
func MemoryStore(s *memory.Store) *Store {
	return &Store{
		Backend: config.BackendMemory,
		Items:   s.Items,
		Likes:   s.Likes,
		Matches: s.Matches,
		Tx:      memory.TxManager{},
		Ping:    func(context.Context) error { return nil },
		Close:   func() {},
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	if cfg.MigrateOnStart {
		results, err := postgres.MigrateUp(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", len(results)))
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Store{
		Backend: config.BackendPostgres,
		Items:   item.New(pool),
		Likes:   like.New(pool),
		Matches: match.New(pool),
		Tx:      postgres.NewTxManager(pool),
		Ping:    pool.Ping,
		Close:   pool.Close,
	}, nil
}

func openDynamo(ctx context.Context, cfg config.DynamoDBConfig) (*Store, error) {
	client, err := dynamo.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s := dynamo.NewStore(client, cfg)
	return &Store{
		Backend: config.BackendDynamoDB,
		Items:   s.Items,
		Likes:   s.Likes,
		Matches: s.Matches,
		// Every DynamoDB repository call is a single conditional request or
		// transaction.
		Tx:    memory.TxManager{},
		Ping:  s.Ping,
		Close: func() {},
	}, nil
}
