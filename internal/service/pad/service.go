package pad

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/notejam/internal/domain"
)

type padRepo interface {
	GetOwned(ctx context.Context, id, ownerID int64) (*domain.Pad, error)
	List(ctx context.Context, ownerID int64) ([]domain.Pad, error)
	Create(ctx context.Context, ownerID int64, name string) (*domain.Pad, error)
	Update(ctx context.Context, id, ownerID int64, name string) (*domain.Pad, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

// Service provides pad management operations.
type Service struct {
	pads padRepo
	log  *slog.Logger
}

// NewService creates a new Pad service.
func NewService(log *slog.Logger, pads padRepo) *Service {
	return &Service{
		pads: pads,
		log:  log.With("service", "pad"),
	}
}
