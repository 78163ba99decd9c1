package note

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/notejam/internal/domain"
)

type noteRepo interface {
	GetOwned(ctx context.Context, id, ownerID int64) (*domain.Note, error)
	List(ctx context.Context, f domain.NoteFilter) ([]domain.Note, error)
	Create(ctx context.Context, ownerID int64, padID *int64, name, text string) (*domain.Note, error)
	Update(ctx context.Context, id, ownerID int64, name, text string) (*domain.Note, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

type padRepo interface {
	GetOwned(ctx context.Context, id, ownerID int64) (*domain.Pad, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides note management operations.
type Service struct {
	notes noteRepo
	pads  padRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Note service.
func NewService(log *slog.Logger, notes noteRepo, pads padRepo, tx txManager) *Service {
	return &Service{
		notes: notes,
		pads:  pads,
		tx:    tx,
		log:   log.With("service", "note"),
	}
}
