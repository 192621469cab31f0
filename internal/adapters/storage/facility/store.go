package facility

import (
	"context"

	domain "relish/internal/domain/facility"
)

// Store persists Facility state.
type Store interface {
	Save(ctx context.Context, value domain.Facility) error
	List(ctx context.Context) ([]domain.Facility, error)
}
