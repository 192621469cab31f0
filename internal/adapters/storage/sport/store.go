package sport

import (
	"context"

	domain "relish/internal/domain/sport"
)

// Store persists Sport state.
type Store interface {
	Save(ctx context.Context, value domain.Sport) error
	List(ctx context.Context) ([]domain.Sport, error)
	Count(ctx context.Context) (int, error)
}
