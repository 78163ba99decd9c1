// Package dataloader provides per-request DataLoaders that batch the pad
// lookups a notes listing needs into a single SQL call. Loaders call the
// repository directly; ownership is enforced by the repository's user_id
// filter, with the owner taken from the request context.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/notejam/internal/domain"
	"github.com/heartmarshall/notejam/pkg/ctxutil"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type padRepo interface {
	GetOwnedByIDs(ctx context.Context, ownerID int64, ids []int64) ([]domain.Pad, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	// PadByID resolves a pad id to the owner's pad, or nil when the pad no
	// longer exists. Notes may reference deleted pads.
	PadByID *dataloader.Loader[int64, *domain.Pad]
}

// NewLoaders creates a new set of DataLoaders backed by pads.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(pads padRepo) *Loaders {
	return &Loaders{
		PadByID: newLoader(newPadBatchFn(pads)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

func newPadBatchFn(repo padRepo) dataloader.BatchFunc[int64, *domain.Pad] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Pad] {
		ownerID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[*domain.Pad](len(keys), domain.ErrUnauthorized)
		}

		pads, err := repo.GetOwnedByIDs(ctx, ownerID, keys)
		if err != nil {
			return errorResults[*domain.Pad](len(keys), err)
		}

		byID := make(map[int64]*domain.Pad, len(pads))
		for i := range pads {
			byID[pads[i].ID] = &pads[i]
		}

		results := make([]*dataloader.Result[*domain.Pad], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Pad]{Data: byID[key]}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

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
func Middleware(pads padRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(pads))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PadsForNotes resolves the pad of every note in one batch. The result is
// aligned with notes; entries are nil for notes without a pad or whose pad
// was deleted.
func PadsForNotes(ctx context.Context, notes []domain.Note) ([]*domain.Pad, error) {
	loader := FromContext(ctx).PadByID

	thunks := make([]dataloader.Thunk[*domain.Pad], len(notes))
	for i, n := range notes {
		if n.PadID != nil {
			thunks[i] = loader.Load(ctx, *n.PadID)
		}
	}

	pads := make([]*domain.Pad, len(notes))
	for i, thunk := range thunks {
		if thunk == nil {
			continue
		}
		p, err := thunk()
		if err != nil {
			return nil, err
		}
		pads[i] = p
	}
	return pads, nil
}
