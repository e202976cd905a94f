// Package memory implements the item, like and match repositories in process
// memory. It backs local development and the matching property tests; every
// write is a single critical section so it honours the same atomicity
// guarantees as the database backends.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

// Store groups the three repositories.
type Store struct {
	Items   *ItemRepo
	Likes   *LikeRepo
	Matches *MatchRepo
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		Items:   &ItemRepo{items: make(map[string]*domain.Item)},
		Likes:   &LikeRepo{byTarget: make(map[string][]*domain.Like), byUser: make(map[string][]*domain.Like)},
		Matches: &MatchRepo{byPair: make(map[string]*domain.Match), byID: make(map[string]string)},
	}
}

// TxManager runs fn directly. Each repository call is already atomic.
type TxManager struct{}

func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ---------------------------------------------------------------------------
// Items
// ---------------------------------------------------------------------------

// ItemRepo stores items keyed by ID.
type ItemRepo struct {
	mu    sync.RWMutex
	items map[string]*domain.Item
}

func (r *ItemRepo) Create(_ context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return fmt.Errorf("item %s: %w", item.ID, domain.ErrAlreadyExists)
	}
	r.items[item.ID] = cloneItem(item)
	return nil
}

func (r *ItemRepo) GetByID(_ context.Context, id string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return cloneItem(item), nil
}

func (r *ItemRepo) GetByIDs(_ context.Context, ids []string) ([]*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			out = append(out, cloneItem(item))
		}
	}
	return out, nil
}

func (r *ItemRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Item, error) {
	out := r.filter(func(i *domain.Item) bool { return i.OwnedBy(ownerID) })
	slices.Reverse(out)
	return out, nil
}

func (r *ItemRepo) ListExcludingOwner(_ context.Context, ownerID string, categories []string) ([]*domain.Item, error) {
	return r.filter(func(i *domain.Item) bool {
		return !i.OwnedBy(ownerID) && i.HasAnyCategory(categories)
	}), nil
}

func (r *ItemRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	delete(r.items, id)
	return nil
}

// filter returns matching items oldest first.
func (r *ItemRepo) filter(keep func(*domain.Item) bool) []*domain.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Item, 0)
	for _, item := range r.items {
		if keep(item) {
			out = append(out, cloneItem(item))
		}
	}
	slices.SortFunc(out, func(a, b *domain.Item) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// ---------------------------------------------------------------------------
// Likes
// ---------------------------------------------------------------------------

// LikeRepo is an append-only like ledger indexed by target item and by user.
type LikeRepo struct {
	mu       sync.RWMutex
	byTarget map[string][]*domain.Like
	byUser   map[string][]*domain.Like
}

func (r *LikeRepo) Append(_ context.Context, like *domain.Like) error {
	l := *like

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byTarget[l.TargetItemID] = insertSorted(r.byTarget[l.TargetItemID], &l)
	r.byUser[l.LikingUserID] = insertSorted(r.byUser[l.LikingUserID], &l)
	return nil
}

func (r *LikeRepo) ListByTarget(_ context.Context, itemID string) ([]*domain.Like, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneLikes(r.byTarget[itemID]), nil
}

func (r *LikeRepo) ListByUser(_ context.Context, userID string) ([]*domain.Like, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneLikes(r.byUser[userID]), nil
}

func insertSorted(likes []*domain.Like, l *domain.Like) []*domain.Like {
	i, _ := slices.BinarySearchFunc(likes, l, func(a, b *domain.Like) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		}
		return 0
	})
	return slices.Insert(likes, i, l)
}

func cloneLikes(likes []*domain.Like) []*domain.Like {
	out := make([]*domain.Like, len(likes))
	for i, l := range likes {
		c := *l
		out[i] = &c
	}
	return out
}

// ---------------------------------------------------------------------------
// Matches
// ---------------------------------------------------------------------------

// MatchRepo stores matches keyed by pair key.
type MatchRepo struct {
	mu     sync.RWMutex
	byPair map[string]*domain.Match
	byID   map[string]string
}

// Create inserts m unless its pair is already matched.
func (r *MatchRepo) Create(_ context.Context, m *domain.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byPair[m.PairKey]; ok {
		return fmt.Errorf("match %s: %w", m.PairKey, domain.ErrDuplicateMatch)
	}
	c := *m
	r.byPair[m.PairKey] = &c
	r.byID[m.ID] = m.PairKey
	return nil
}

func (r *MatchRepo) GetByPairKey(_ context.Context, pairKey string) (*domain.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byPair[pairKey]
	if !ok {
		return nil, fmt.Errorf("match %s: %w", pairKey, domain.ErrNotFound)
	}
	c := *m
	return &c, nil
}

func (r *MatchRepo) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	r.mu.RLock()
	key, ok := r.byID[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("match %s: %w", id, domain.ErrNotFound)
	}
	return r.GetByPairKey(ctx, key)
}

func (r *MatchRepo) ListByUser(_ context.Context, userID string) ([]*domain.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Match, 0)
	for _, m := range r.byPair {
		if m.Involves(userID) {
			c := *m
			out = append(out, &c)
		}
	}
	slices.SortFunc(out, func(a, b *domain.Match) int {
		if a.NewerThan(b) {
			return -1
		}
		if b.NewerThan(a) {
			return 1
		}
		return 0
	})
	return out, nil
}

func (r *MatchRepo) UpdateStatus(_ context.Context, id string, from, to domain.MatchStatus, at time.Time) (*domain.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("match %s: %w", id, domain.ErrNotFound)
	}
	m := r.byPair[key]
	if m.Status != from {
		return nil, fmt.Errorf("match %s not %s: %w", id, from, domain.ErrConflict)
	}
	m.Status = to
	m.UpdatedAt = at.UTC()

	c := *m
	return &c, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func cloneItem(i *domain.Item) *domain.Item {
	c := *i
	c.Categories = slices.Clone(i.Categories)
	return &c
}
