// Package dataloader provides per-request DataLoaders that batch item
// lookups made while rendering match listings into single catalog calls.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type itemBatchGetter interface {
	GetItems(ctx context.Context, ids []string) ([]*domain.Item, error)
}

// Loaders contains the per-request DataLoaders.
type Loaders struct {
	// ItemByID resolves to nil for items that no longer exist.
	ItemByID *dataloader.Loader[string, *domain.Item]
}

// NewLoaders creates a new set of DataLoaders backed by the catalog.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(items itemBatchGetter) *Loaders {
	return &Loaders{
		ItemByID: dataloader.NewBatchedLoader(
			newItemBatchFn(items),
			dataloader.WithWait[string, *domain.Item](wait),
			dataloader.WithBatchCapacity[string, *domain.Item](maxBatch),
		),
	}
}

func newItemBatchFn(items itemBatchGetter) dataloader.BatchFunc[string, *domain.Item] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.Item] {
		found, err := items.GetItems(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.Item], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.Item]{Error: err}
			}
			return results
		}

		byID := make(map[string]*domain.Item, len(found))
		for _, it := range found {
			byID[it.ID] = it
		}

		results := make([]*dataloader.Result[*domain.Item], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Item]{Data: byID[key]}
		}
		return results
	}
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}

// Middleware creates an HTTP middleware that instantiates per-request
// DataLoaders and stores them in the request context.
func Middleware(items itemBatchGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(items))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
