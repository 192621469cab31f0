package coach

import (
	"context"

	domain "relish/internal/domain/coach"
)

// Store persists Coach state.
type Store interface {
	Save(ctx context.Context, value domain.Coach) error
	List(ctx context.Context) ([]domain.Coach, error)
}
