package pad

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notejam/internal/domain"
	"github.com/heartmarshall/notejam/internal/service/access"
)

// Load resolves pad id for ownerID. A pad of another user is domain.ErrNotFound.
func (s *Service) Load(ctx context.Context, id, ownerID int64) (access.Owned[domain.Pad], error) {
	return access.LoadOwned[domain.Pad](ctx, s.pads, access.KindPad, id, ownerID)
}

// List returns the owner's pads ordered by name.
func (s *Service) List(ctx context.Context, ownerID int64) ([]domain.Pad, error) {
	pads, err := s.pads.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("pad.List: %w", err)
	}
	return pads, nil
}

// Create creates a new pad owned by ownerID.
func (s *Service) Create(ctx context.Context, ownerID int64, input PadInput) (*domain.Pad, error) {
	if ownerID <= 0 {
		return nil, domain.ErrUnauthorized
	}

	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.pads.Create(ctx, ownerID, input.Name)
	if err != nil {
		return nil, fmt.Errorf("pad.Create: %w", err)
	}

	s.log.InfoContext(ctx, "pad created",
		slog.Int64("user_id", ownerID),
		slog.Int64("pad_id", p.ID),
	)

	return p, nil
}

// Update renames an owned pad.
func (s *Service) Update(ctx context.Context, owned access.Owned[domain.Pad], input PadInput) (*domain.Pad, error) {
	if err := access.Check(owned); err != nil {
		return nil, err
	}

	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.pads.Update(ctx, owned.ID(), owned.OwnerID(), input.Name)
	if err != nil {
		return nil, fmt.Errorf("pad.Update: %w", err)
	}

	s.log.InfoContext(ctx, "pad updated",
		slog.Int64("user_id", owned.OwnerID()),
		slog.Int64("pad_id", p.ID),
	)

	return p, nil
}

// Delete removes an owned pad. Notes filed under it are left in place and
// keep the stale pad reference. A pad already deleted is domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, owned access.Owned[domain.Pad]) error {
	if err := access.Check(owned); err != nil {
		return err
	}

	if err := s.pads.Delete(ctx, owned.ID(), owned.OwnerID()); err != nil {
		return fmt.Errorf("pad.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "pad deleted",
		slog.Int64("user_id", owned.OwnerID()),
		slog.Int64("pad_id", owned.ID()),
	)

	return nil
}
