package note

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notejam/internal/domain"
	"github.com/heartmarshall/notejam/internal/service/access"
)

// Load resolves note id for ownerID. A note of another user is domain.ErrNotFound.
func (s *Service) Load(ctx context.Context, id, ownerID int64) (access.Owned[domain.Note], error) {
	return access.LoadOwned[domain.Note](ctx, s.notes, access.KindNote, id, ownerID)
}

// List returns all notes of ownerID in the given order.
func (s *Service) List(ctx context.Context, ownerID int64, order domain.NoteOrder) ([]domain.Note, error) {
	notes, err := s.notes.List(ctx, domain.NoteFilter{OwnerID: ownerID, Order: order})
	if err != nil {
		return nil, fmt.Errorf("note.List: %w", err)
	}
	return notes, nil
}

// ListByPad returns the notes filed under an owned pad.
func (s *Service) ListByPad(ctx context.Context, pad access.Owned[domain.Pad], order domain.NoteOrder) ([]domain.Note, error) {
	if err := access.Check(pad); err != nil {
		return nil, err
	}

	padID := pad.ID()
	notes, err := s.notes.List(ctx, domain.NoteFilter{OwnerID: pad.OwnerID(), PadID: &padID, Order: order})
	if err != nil {
		return nil, fmt.Errorf("note.ListByPad: %w", err)
	}
	return notes, nil
}

// Create creates a note for ownerID. When input.PadID is set the pad must
// belong to ownerID, otherwise domain.ErrForeignOwnerPad is returned. The pad
// check and the insert share one transaction.
func (s *Service) Create(ctx context.Context, ownerID int64, input NoteInput) (*domain.Note, error) {
	if ownerID <= 0 {
		return nil, domain.ErrUnauthorized
	}

	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Note
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.PadID != nil {
			_, err := access.LoadOwned[domain.Pad](txCtx, s.pads, access.KindPad, *input.PadID, ownerID)
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrForeignOwnerPad
			}
			if err != nil {
				return err
			}
		}

		n, err := s.notes.Create(txCtx, ownerID, input.PadID, input.Name, input.Text)
		if err != nil {
			return err
		}
		created = n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("note.Create: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.Int64("user_id", ownerID),
		slog.Int64("note_id", created.ID),
	)

	return created, nil
}

// Update replaces the name and text of an owned note. updated_at always moves
// forward, even when nothing changed.
func (s *Service) Update(ctx context.Context, owned access.Owned[domain.Note], input NoteInput) (*domain.Note, error) {
	if err := access.Check(owned); err != nil {
		return nil, err
	}

	input.PadID = nil
	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	n, err := s.notes.Update(ctx, owned.ID(), owned.OwnerID(), input.Name, input.Text)
	if err != nil {
		return nil, fmt.Errorf("note.Update: %w", err)
	}

	s.log.InfoContext(ctx, "note updated",
		slog.Int64("user_id", owned.OwnerID()),
		slog.Int64("note_id", n.ID),
	)

	return n, nil
}

// Delete removes an owned note.
func (s *Service) Delete(ctx context.Context, owned access.Owned[domain.Note]) error {
	if err := access.Check(owned); err != nil {
		return err
	}

	if err := s.notes.Delete(ctx, owned.ID(), owned.OwnerID()); err != nil {
		return fmt.Errorf("note.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.Int64("user_id", owned.OwnerID()),
		slog.Int64("note_id", owned.ID()),
	)

	return nil
}
