// Package access resolves resources by id under an owner and hands out proof
// of ownership. Mutations on pads and notes accept only Owned values, so a
// resource can never be changed without first passing the owner check.
package access

import (
	"context"
	"fmt"

	"github.com/heartmarshall/notejam/internal/domain"
)

// Kind names the resource family being guarded.
type Kind string

const (
	KindPad  Kind = "pad"
	KindNote Kind = "note"
)

func (k Kind) String() string { return string(k) }

// Loader fetches a resource by id restricted to ownerID. A resource owned by
// someone else must be reported as domain.ErrNotFound.
type Loader[T any] interface {
	GetOwned(ctx context.Context, id, ownerID int64) (*T, error)
}

// Owned is a resource that was loaded under its owner's id. The zero value
// holds nothing; only LoadOwned produces a populated one.
type Owned[T any] struct {
	value   T
	id      int64
	ownerID int64
	kind    Kind
	loaded  bool
}

// Value returns a copy of the loaded resource.
func (o Owned[T]) Value() T { return o.value }

func (o Owned[T]) ID() int64      { return o.id }
func (o Owned[T]) OwnerID() int64 { return o.ownerID }
func (o Owned[T]) Kind() Kind     { return o.kind }

// IsZero reports whether o was not produced by LoadOwned.
func (o Owned[T]) IsZero() bool { return !o.loaded }

// LoadOwned loads the resource kind/id for ownerID. Not found and owned by
// another user are both domain.ErrNotFound.
func LoadOwned[T any](ctx context.Context, loader Loader[T], kind Kind, id, ownerID int64) (Owned[T], error) {
	if id <= 0 || ownerID <= 0 {
		return Owned[T]{}, fmt.Errorf("access.LoadOwned %s %d: %w", kind, id, domain.ErrNotFound)
	}

	v, err := loader.GetOwned(ctx, id, ownerID)
	if err != nil {
		return Owned[T]{}, fmt.Errorf("access.LoadOwned %s %d: %w", kind, id, err)
	}

	return Owned[T]{value: *v, id: id, ownerID: ownerID, kind: kind, loaded: true}, nil
}

// Check rejects the zero Owned. Services call it at the top of every mutation.
func Check[T any](o Owned[T]) error {
	if o.IsZero() {
		return fmt.Errorf("access: unloaded resource: %w", domain.ErrNotFound)
	}
	return nil
}
